package models

import "time"

// Student holds identity and enrollment data for a student. The zero value is
// a valid record: empty name, zero ID and grade, zero enrollment date.
type Student struct {
	ID             int       `json:"id" db:"id"`
	FullName       string    `json:"full_name" db:"full_name"`
	EnrollmentDate time.Time `json:"enrollment_date" db:"enrollment_date"`
	GradeLevel     int       `json:"grade_level" db:"grade_level"`
}

func NewStudent() *Student {
	return &Student{}
}
