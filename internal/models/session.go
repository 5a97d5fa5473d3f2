package models

import "time"

// ClassSession is one scheduled meeting of a class offering.
type ClassSession struct {
	SessionID        int64     `db:"session_id" json:"session_id"`
	ClassOfferingID  int64     `db:"class_offering_id" json:"class_offering_id"`
	SessionNo        int       `db:"session_no" json:"session_no"`
	SessionStartDate time.Time `db:"session_start_date" json:"session_start_date"`
	SessionEndDate   time.Time `db:"session_end_date" json:"session_end_date"`
	Title            *string   `db:"title" json:"title,omitempty"`
	Room             *string   `db:"room" json:"room,omitempty"`
}

// ClassSessionDetail enriches the session with offering, course and term context.
type ClassSessionDetail struct {
	ClassSession
	CourseCode string `db:"course_code" json:"course_code"`
	CourseName string `db:"course_name" json:"course_name"`
	ClassGroup string `db:"class_group" json:"class_group"`
	ClassType  string `db:"class_type" json:"class_type"`
	TermLabel  string `db:"term_label" json:"term_label"`
}

// ClassSessionFilter narrows session listings.
type ClassSessionFilter struct {
	ClassOfferingID int64
	Search          string
}

// StudentSessionRow is one session of an offering seen from one student's
// perspective, with that student's attendance state left-joined.
type StudentSessionRow struct {
	SessionID        int64            `db:"session_id" json:"session_id"`
	SessionNo        int              `db:"session_no" json:"session_no"`
	SessionStartDate time.Time        `db:"session_start_date" json:"session_start_date"`
	SessionEndDate   time.Time        `db:"session_end_date" json:"session_end_date"`
	Title            *string          `db:"title" json:"title,omitempty"`
	Room             *string          `db:"room" json:"room,omitempty"`
	EnrolmentID      int64            `db:"enrolment_id" json:"enrolment_id"`
	AttendanceID     *int64           `db:"attendance_id" json:"attendance_id,omitempty"`
	AttendanceStatus AttendanceStatus `db:"attendance_status" json:"attendance_status"`
}
