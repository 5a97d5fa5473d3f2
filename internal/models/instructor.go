package models

// Instructor links a person to an instructor identity.
type Instructor struct {
	InstructorID string `db:"instructor_id" json:"instructor_id"`
	PersonID     int64  `db:"person_id" json:"person_id"`
}

// InstructorProfile joins the instructor with its person row.
type InstructorProfile struct {
	Instructor
	FullName string `db:"full_name" json:"full_name"`
	Email    string `db:"email" json:"email"`
}

// InstructorFilter narrows instructor listings.
type InstructorFilter struct {
	Search string
}
