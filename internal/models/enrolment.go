package models

// EnrolmentStatus represents the lifecycle of an enrolment.
type EnrolmentStatus string

// Possible enrolment statuses.
const (
	EnrolmentStatusActive   EnrolmentStatus = "Active"
	EnrolmentStatusInactive EnrolmentStatus = "Inactive"
)

// Valid reports whether the status is a supported value.
func (s EnrolmentStatus) Valid() bool {
	return s == EnrolmentStatusActive || s == EnrolmentStatusInactive
}

// Enrolment captures a student's participation in one class offering.
type Enrolment struct {
	EnrolmentID     int64           `db:"enrolment_id" json:"enrolment_id"`
	ClassOfferingID int64           `db:"class_offering_id" json:"class_offering_id"`
	StudentID       string          `db:"student_id" json:"student_id"`
	EnrolmentStatus EnrolmentStatus `db:"enrolment_status" json:"enrolment_status"`
}

// EnrolmentDetail enriches the enrolment with student, offering, course and
// term context for listing views.
type EnrolmentDetail struct {
	Enrolment
	Cohort     *string `db:"cohort" json:"cohort,omitempty"`
	FullName   string  `db:"full_name" json:"full_name"`
	Email      string  `db:"email" json:"email"`
	ClassGroup string  `db:"class_group" json:"class_group"`
	ClassType  string  `db:"class_type" json:"class_type"`
	CourseName string  `db:"course_name" json:"course_name"`
	TermLabel  string  `db:"term_label" json:"term_label"`
}

// EnrolmentFilter narrows enrolment listings.
type EnrolmentFilter struct {
	ClassOfferingID int64
	StudentID       string
}
