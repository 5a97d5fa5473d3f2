package models

// Student links a person to a student identity.
type Student struct {
	StudentID string  `db:"student_id" json:"student_id"`
	PersonID  int64   `db:"person_id" json:"person_id"`
	Cohort    *string `db:"cohort" json:"cohort,omitempty"`
}

// StudentProfile joins the student with its person row.
type StudentProfile struct {
	Student
	FullName string `db:"full_name" json:"full_name"`
	Email    string `db:"email" json:"email"`
}
