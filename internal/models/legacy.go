package models

// GradesAttendanceRecord is the deprecated denormalized row shape that
// predates the normalized attendance/grade split. It is served read-only,
// projected from the canonical tables, for clients that still consume it.
type GradesAttendanceRecord struct {
	RecordID         int64            `db:"record_id" json:"record_id"`
	EnrolmentID      int64            `db:"enrolment_id" json:"enrolment_id"`
	SessionID        int64            `db:"session_id" json:"session_id"`
	AssessmentLabel  string           `db:"assessment_type" json:"assessment_type"`
	Score            float64          `db:"score" json:"score"`
	Weight           float64          `db:"weight" json:"weight"`
	AttendanceStatus AttendanceStatus `db:"attendance_status" json:"attendance_status"`
	StudentID        string           `db:"student_id" json:"student_id"`
	StudentName      string           `db:"student_name" json:"student_name"`
	StudentEmail     string           `db:"student_email" json:"student_email"`
}
