package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// SessionRepository handles class sessions and the attendance fan-out that
// accompanies session creation.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionDetailQuery = `SELECT cs.session_id, cs.class_offering_id, cs.session_no,
	cs.session_start_date, cs.session_end_date, cs.title, cs.room,
	co.course_code, c.course_name, co.class_group, co.class_type, t.term_label
	FROM class_session cs
	JOIN class_offering co ON co.class_offering_id = cs.class_offering_id
	JOIN course c ON c.course_code = co.course_code
	JOIN term t ON t.term_id = co.term_id`

// CreateWithPlaceholders inserts the session and, in the same transaction,
// one "Not attended" attendance row for every Active enrolment of the
// offering. Zero active enrolments is not an error. Any failure rolls back
// the session insert too.
func (r *SessionRepository) CreateWithPlaceholders(ctx context.Context, session *models.ClassSession) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create session: %w", err)
	}
	if err := tx.GetContext(ctx, &session.SessionID,
		`INSERT INTO class_session (class_offering_id, session_no, session_start_date, session_end_date, title, room)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING session_id`,
		session.ClassOfferingID, session.SessionNo, session.SessionStartDate, session.SessionEndDate,
		session.Title, session.Room); err != nil {
		tx.Rollback() //nolint:errcheck
		return 0, fmt.Errorf("create session: %w", err)
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO attendance (enrolment_id, session_id, attendance_status)
		SELECT enrolment_id, $1, $2 FROM enrolment
		WHERE class_offering_id = $3 AND enrolment_status = $4`,
		session.SessionID, models.AttendanceNotAttended, session.ClassOfferingID, models.EnrolmentStatusActive)
	if err != nil {
		tx.Rollback() //nolint:errcheck
		return 0, fmt.Errorf("provision attendance placeholders: %w", err)
	}
	provisioned, err := res.RowsAffected()
	if err != nil {
		tx.Rollback() //nolint:errcheck
		return 0, fmt.Errorf("count attendance placeholders: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create session: %w", err)
	}
	return int(provisioned), nil
}

// List returns sessions with offering context, optionally filtered by
// offering and searched by title/room/course.
func (r *SessionRepository) List(ctx context.Context, filter models.ClassSessionFilter) ([]models.ClassSessionDetail, error) {
	query := sessionDetailQuery
	var conditions []string
	var args []interface{}
	if filter.ClassOfferingID != 0 {
		conditions = append(conditions, fmt.Sprintf("cs.class_offering_id = $%d", len(args)+1))
		args = append(args, filter.ClassOfferingID)
	}
	if filter.Search != "" {
		idx := len(args) + 1
		conditions = append(conditions, fmt.Sprintf(
			"(cs.title ILIKE $%d OR cs.room ILIKE $%d OR co.course_code ILIKE $%d OR c.course_name ILIKE $%d)",
			idx, idx, idx, idx))
		args = append(args, "%"+filter.Search+"%")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY cs.session_start_date, cs.session_no"
	var sessions []models.ClassSessionDetail
	if err := r.db.SelectContext(ctx, &sessions, query, args...); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// FindByID returns one session with offering context.
func (r *SessionRepository) FindByID(ctx context.Context, id int64) (*models.ClassSessionDetail, error) {
	var session models.ClassSessionDetail
	if err := r.db.GetContext(ctx, &session, sessionDetailQuery+` WHERE cs.session_id = $1`, id); err != nil {
		return nil, err
	}
	return &session, nil
}

// Update rewrites the session. Returns sql.ErrNoRows when absent.
func (r *SessionRepository) Update(ctx context.Context, session *models.ClassSession) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE class_session
		SET class_offering_id = $1, session_no = $2, session_start_date = $3, session_end_date = $4, title = $5, room = $6
		WHERE session_id = $7`,
		session.ClassOfferingID, session.SessionNo, session.SessionStartDate, session.SessionEndDate,
		session.Title, session.Room, session.SessionID)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return requireAffected(res)
}

// Delete removes the session.
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM class_session WHERE session_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return requireAffected(res)
}

// ListForStudent returns every session of the offering from the student's
// perspective, with the student's attendance state left-joined. Missing
// attendance rows surface as "Not attended".
func (r *SessionRepository) ListForStudent(ctx context.Context, studentID string, offeringID int64) ([]models.StudentSessionRow, error) {
	const query = `SELECT cs.session_id, cs.session_no, cs.session_start_date, cs.session_end_date,
		cs.title, cs.room, e.enrolment_id, a.attendance_id,
		COALESCE(a.attendance_status, 'Not attended') AS attendance_status
		FROM class_session cs
		JOIN enrolment e ON e.class_offering_id = cs.class_offering_id AND e.student_id = $1
		LEFT JOIN attendance a ON a.session_id = cs.session_id AND a.enrolment_id = e.enrolment_id
		WHERE cs.class_offering_id = $2
		ORDER BY cs.session_start_date, cs.session_no`
	var rows []models.StudentSessionRow
	if err := r.db.SelectContext(ctx, &rows, query, studentID, offeringID); err != nil {
		return nil, fmt.Errorf("list sessions for student: %w", err)
	}
	return rows, nil
}
