package models

// Person is the base identity row shared by students and instructors.
type Person struct {
	PersonID int64  `db:"person_id" json:"person_id"`
	FullName string `db:"full_name" json:"full_name"`
	Email    string `db:"email" json:"email"`
}

// PersonFilter narrows person listings.
type PersonFilter struct {
	Search string
}
