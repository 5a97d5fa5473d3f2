package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// AttendanceRepository handles attendance rows and their status transitions.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs the repository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceDetailQuery = `SELECT a.attendance_id, a.enrolment_id, a.session_id, a.attendance_status,
	cs.class_offering_id, cs.session_no, cs.title AS session_title, cs.room,
	e.student_id, e.enrolment_status, p.full_name AS student_name, p.email AS student_email
	FROM attendance a
	JOIN enrolment e ON e.enrolment_id = a.enrolment_id
	JOIN student s ON s.student_id = e.student_id
	JOIN person p ON p.person_id = s.person_id
	JOIN class_session cs ON cs.session_id = a.session_id`

// List returns attendance rows with session and student context.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceDetail, error) {
	query := attendanceDetailQuery
	var conditions []string
	var args []interface{}
	if filter.EnrolmentID != 0 {
		conditions = append(conditions, fmt.Sprintf("a.enrolment_id = $%d", len(args)+1))
		args = append(args, filter.EnrolmentID)
	}
	if filter.SessionID != 0 {
		conditions = append(conditions, fmt.Sprintf("a.session_id = $%d", len(args)+1))
		args = append(args, filter.SessionID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY cs.session_no, p.full_name, a.attendance_id"
	var records []models.AttendanceDetail
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// ListByOffering returns every attendance row of one class offering.
func (r *AttendanceRepository) ListByOffering(ctx context.Context, offeringID int64) ([]models.AttendanceDetail, error) {
	query := attendanceDetailQuery + ` WHERE cs.class_offering_id = $1 ORDER BY cs.session_no, p.full_name, a.attendance_id`
	var records []models.AttendanceDetail
	if err := r.db.SelectContext(ctx, &records, query, offeringID); err != nil {
		return nil, fmt.Errorf("list attendance by offering: %w", err)
	}
	return records, nil
}

// FindByID returns one attendance row.
func (r *AttendanceRepository) FindByID(ctx context.Context, id int64) (*models.Attendance, error) {
	var record models.Attendance
	if err := r.db.GetContext(ctx, &record,
		`SELECT attendance_id, enrolment_id, session_id, attendance_status FROM attendance WHERE attendance_id = $1`, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert inserts or overwrites the status for the (enrolment, session) key
// and returns the resulting row.
func (r *AttendanceRepository) Upsert(ctx context.Context, enrolmentID, sessionID int64, status models.AttendanceStatus) (*models.Attendance, error) {
	var record models.Attendance
	if err := r.db.GetContext(ctx, &record,
		`INSERT INTO attendance (enrolment_id, session_id, attendance_status)
		VALUES ($1, $2, $3)
		ON CONFLICT (enrolment_id, session_id)
		DO UPDATE SET attendance_status = EXCLUDED.attendance_status
		RETURNING attendance_id, enrolment_id, session_id, attendance_status`,
		enrolmentID, sessionID, status); err != nil {
		return nil, fmt.Errorf("upsert attendance: %w", err)
	}
	return &record, nil
}

// MarkPendingForEnrolment promotes "Not attended" (or a missing row) to
// "Pending"; Pending and Verified rows are left unchanged. The resulting
// row is always returned, so callers can surface the unchanged state.
func (r *AttendanceRepository) MarkPendingForEnrolment(ctx context.Context, enrolmentID, sessionID int64) (*models.Attendance, error) {
	var record models.Attendance
	if err := r.db.GetContext(ctx, &record,
		`INSERT INTO attendance (enrolment_id, session_id, attendance_status)
		VALUES ($1, $2, $3)
		ON CONFLICT (enrolment_id, session_id)
		DO UPDATE SET attendance_status = CASE
			WHEN attendance.attendance_status = 'Not attended' THEN 'Pending'::text
			ELSE attendance.attendance_status
		END
		RETURNING attendance_id, enrolment_id, session_id, attendance_status`,
		enrolmentID, sessionID, models.AttendancePending); err != nil {
		return nil, fmt.Errorf("mark attendance pending: %w", err)
	}
	return &record, nil
}

// SetPending forces one record to Pending. Returns sql.ErrNoRows when absent.
func (r *AttendanceRepository) SetPending(ctx context.Context, attendanceID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE attendance SET attendance_status = $1 WHERE attendance_id = $2`,
		models.AttendancePending, attendanceID)
	if err != nil {
		return fmt.Errorf("set attendance pending: %w", err)
	}
	return requireAffected(res)
}

// SetStatus overwrites one record's status. Returns sql.ErrNoRows when absent.
func (r *AttendanceRepository) SetStatus(ctx context.Context, attendanceID int64, status models.AttendanceStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE attendance SET attendance_status = $1 WHERE attendance_id = $2`,
		status, attendanceID)
	if err != nil {
		return fmt.Errorf("set attendance status: %w", err)
	}
	return requireAffected(res)
}

// VerifyAllPending transitions every Pending row of the session to Verified
// and reports how many rows changed. Idempotent: a second call matches
// nothing and returns 0.
func (r *AttendanceRepository) VerifyAllPending(ctx context.Context, sessionID int64) (int, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE attendance SET attendance_status = $1 WHERE session_id = $2 AND attendance_status = $3`,
		models.AttendanceVerified, sessionID, models.AttendancePending)
	if err != nil {
		return 0, fmt.Errorf("verify pending attendance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count verified attendance: %w", err)
	}
	return int(n), nil
}

// SessionRoster returns every enrolled student of the session's offering
// with the current status, defaulting missing rows to "Not attended",
// ordered by student name.
func (r *AttendanceRepository) SessionRoster(ctx context.Context, sessionID int64) ([]models.AttendanceRosterRow, error) {
	const query = `SELECT e.enrolment_id, s.student_id, p.full_name AS student_name,
		COALESCE(a.attendance_status, 'Not attended') AS attendance_status, a.attendance_id
		FROM class_session cs
		JOIN enrolment e ON e.class_offering_id = cs.class_offering_id
		JOIN student s ON s.student_id = e.student_id
		JOIN person p ON p.person_id = s.person_id
		LEFT JOIN attendance a ON a.enrolment_id = e.enrolment_id AND a.session_id = cs.session_id
		WHERE cs.session_id = $1
		ORDER BY p.full_name ASC`
	var roster []models.AttendanceRosterRow
	if err := r.db.SelectContext(ctx, &roster, query, sessionID); err != nil {
		return nil, fmt.Errorf("session roster: %w", err)
	}
	return roster, nil
}

// Delete removes one attendance row. Returns sql.ErrNoRows when absent.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE attendance_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	return requireAffected(res)
}
