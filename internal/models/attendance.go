package models

// AttendanceStatus is a point in the lattice that runs from "Not attended"
// through "Pending" to "Verified".
type AttendanceStatus string

const (
	AttendanceNotAttended AttendanceStatus = "Not attended"
	AttendancePending     AttendanceStatus = "Pending"
	AttendanceVerified    AttendanceStatus = "Verified"
)

// Valid reports whether the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceNotAttended, AttendancePending, AttendanceVerified:
		return true
	default:
		return false
	}
}

// Attendance records one student's presence state for one session,
// unique on (enrolment_id, session_id).
type Attendance struct {
	AttendanceID     int64            `db:"attendance_id" json:"attendance_id"`
	EnrolmentID      int64            `db:"enrolment_id" json:"enrolment_id"`
	SessionID        int64            `db:"session_id" json:"session_id"`
	AttendanceStatus AttendanceStatus `db:"attendance_status" json:"attendance_status"`
}

// AttendanceDetail enriches the row with session and student context.
type AttendanceDetail struct {
	Attendance
	ClassOfferingID int64           `db:"class_offering_id" json:"class_offering_id"`
	SessionNo       int             `db:"session_no" json:"session_no"`
	SessionTitle    *string         `db:"session_title" json:"session_title,omitempty"`
	Room            *string         `db:"room" json:"room,omitempty"`
	StudentID       string          `db:"student_id" json:"student_id"`
	EnrolmentStatus EnrolmentStatus `db:"enrolment_status" json:"enrolment_status"`
	StudentName     string          `db:"student_name" json:"student_name"`
	StudentEmail    string          `db:"student_email" json:"student_email"`
}

// AttendanceRosterRow is one enrolled student on a session roster; missing
// attendance rows surface as "Not attended" with a nil attendance_id.
type AttendanceRosterRow struct {
	EnrolmentID      int64            `db:"enrolment_id" json:"enrolment_id"`
	StudentID        string           `db:"student_id" json:"student_id"`
	StudentName      string           `db:"student_name" json:"student_name"`
	AttendanceStatus AttendanceStatus `db:"attendance_status" json:"attendance_status"`
	AttendanceID     *int64           `db:"attendance_id" json:"attendance_id,omitempty"`
}

// AttendanceFilter narrows attendance listings.
type AttendanceFilter struct {
	EnrolmentID int64
	SessionID   int64
}
