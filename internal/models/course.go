package models

// Course is a catalog entry keyed by its course code.
type Course struct {
	CourseCode string `db:"course_code" json:"course_code"`
	CourseName string `db:"course_name" json:"course_name"`
}
