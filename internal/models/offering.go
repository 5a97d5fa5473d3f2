package models

// ClassOffering is one course taught in one term for one class group.
type ClassOffering struct {
	ClassOfferingID int64  `db:"class_offering_id" json:"class_offering_id"`
	CourseCode      string `db:"course_code" json:"course_code"`
	TermID          int64  `db:"term_id" json:"term_id"`
	ClassGroup      string `db:"class_group" json:"class_group"`
	ClassType       string `db:"class_type" json:"class_type"`
}

// ClassOfferingDetail enriches the offering with course and term labels.
type ClassOfferingDetail struct {
	ClassOffering
	CourseName string `db:"course_name" json:"course_name"`
	TermLabel  string `db:"term_label" json:"term_label"`
}

// ClassOfferingFilter narrows offering listings.
type ClassOfferingFilter struct {
	TermID     int64
	CourseCode string
}

// TeachingAssignment maps an instructor to a class offering.
type TeachingAssignment struct {
	AssignmentID    int64  `db:"assignment_id" json:"assignment_id"`
	ClassOfferingID int64  `db:"class_offering_id" json:"class_offering_id"`
	InstructorID    string `db:"instructor_id" json:"instructor_id"`
}

// TeachingAssignmentDetail joins instructor and offering context.
type TeachingAssignmentDetail struct {
	TeachingAssignment
	InstructorName string `db:"instructor_name" json:"instructor_name"`
	CourseCode     string `db:"course_code" json:"course_code"`
	CourseName     string `db:"course_name" json:"course_name"`
	ClassGroup     string `db:"class_group" json:"class_group"`
	TermLabel      string `db:"term_label" json:"term_label"`
}

// TeachingAssignmentFilter narrows assignment listings.
type TeachingAssignmentFilter struct {
	ClassOfferingID int64
	InstructorID    string
}
