package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// LegacyRecordRepository projects the canonical attendance table into the
// deprecated denormalized grades_and_attendance row shape. The projection
// is read-only and emits exactly one row per attendance record. Grades live
// per assessment, not per session, so the grade columns carry the legacy
// provisioning defaults: "Session" with zeroed score and weight.
type LegacyRecordRepository struct {
	db *sqlx.DB
}

// NewLegacyRecordRepository constructs the repository.
func NewLegacyRecordRepository(db *sqlx.DB) *LegacyRecordRepository {
	return &LegacyRecordRepository{db: db}
}

const legacyProjection = `SELECT a.attendance_id AS record_id, a.enrolment_id, a.session_id,
	'Session' AS assessment_type,
	0::numeric AS score,
	0::numeric AS weight,
	a.attendance_status,
	e.student_id, p.full_name AS student_name, p.email AS student_email
	FROM attendance a
	JOIN enrolment e ON e.enrolment_id = a.enrolment_id
	JOIN student s ON s.student_id = e.student_id
	JOIN person p ON p.person_id = s.person_id
	JOIN class_session cs ON cs.session_id = a.session_id`

// List returns legacy-shaped records filtered by enrolment and/or session.
func (r *LegacyRecordRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.GradesAttendanceRecord, error) {
	query := legacyProjection
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
	query += " ORDER BY p.full_name, a.attendance_id"
	var records []models.GradesAttendanceRecord
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list legacy records: %w", err)
	}
	return records, nil
}

// ListByOffering returns legacy-shaped records for one class offering.
func (r *LegacyRecordRepository) ListByOffering(ctx context.Context, offeringID int64) ([]models.GradesAttendanceRecord, error) {
	query := legacyProjection + ` WHERE cs.class_offering_id = $1 ORDER BY cs.session_no, p.full_name, a.attendance_id`
	var records []models.GradesAttendanceRecord
	if err := r.db.SelectContext(ctx, &records, query, offeringID); err != nil {
		return nil, fmt.Errorf("list legacy records by offering: %w", err)
	}
	return records, nil
}
