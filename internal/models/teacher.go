package models

import "time"

// Teacher holds identity and employment data for a teacher. No link to
// Student is kept here.
type Teacher struct {
	ID          int       `json:"id" db:"id"`
	FullName    string    `json:"full_name" db:"full_name"`
	Subject     string    `json:"subject" db:"subject"`
	HireDate    time.Time `json:"hire_date" db:"hire_date"`
	HomeAddress string    `json:"home_address" db:"home_address"`
}

func NewTeacher() *Teacher {
	return &Teacher{}
}
