package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// EnrolmentRepository handles persistence of enrolments.
type EnrolmentRepository struct {
	db *sqlx.DB
}

// NewEnrolmentRepository constructs the repository.
func NewEnrolmentRepository(db *sqlx.DB) *EnrolmentRepository {
	return &EnrolmentRepository{db: db}
}

const enrolmentDetailQuery = `SELECT e.enrolment_id, e.class_offering_id, e.student_id, e.enrolment_status,
	s.cohort, p.full_name, p.email, co.class_group, co.class_type, c.course_name, t.term_label
	FROM enrolment e
	JOIN student s ON s.student_id = e.student_id
	JOIN person p ON p.person_id = s.person_id
	JOIN class_offering co ON co.class_offering_id = e.class_offering_id
	JOIN course c ON c.course_code = co.course_code
	JOIN term t ON t.term_id = co.term_id`

// List returns enrolments with student and offering context.
func (r *EnrolmentRepository) List(ctx context.Context, filter models.EnrolmentFilter) ([]models.EnrolmentDetail, error) {
	query := enrolmentDetailQuery
	var conditions []string
	var args []interface{}
	if filter.ClassOfferingID != 0 {
		conditions = append(conditions, fmt.Sprintf("e.class_offering_id = $%d", len(args)+1))
		args = append(args, filter.ClassOfferingID)
	}
	if filter.StudentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.student_id = $%d", len(args)+1))
		args = append(args, filter.StudentID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY e.enrolment_id DESC"
	var enrolments []models.EnrolmentDetail
	if err := r.db.SelectContext(ctx, &enrolments, query, args...); err != nil {
		return nil, fmt.Errorf("list enrolments: %w", err)
	}
	return enrolments, nil
}

// FindByID returns one enrolment with context.
func (r *EnrolmentRepository) FindByID(ctx context.Context, id int64) (*models.EnrolmentDetail, error) {
	var enrolment models.EnrolmentDetail
	if err := r.db.GetContext(ctx, &enrolment, enrolmentDetailQuery+` WHERE e.enrolment_id = $1`, id); err != nil {
		return nil, err
	}
	return &enrolment, nil
}

// FindByStudentAndOffering resolves the student's enrolment in the offering.
func (r *EnrolmentRepository) FindByStudentAndOffering(ctx context.Context, studentID string, offeringID int64) (*models.Enrolment, error) {
	var enrolment models.Enrolment
	if err := r.db.GetContext(ctx, &enrolment,
		`SELECT enrolment_id, class_offering_id, student_id, enrolment_status
		FROM enrolment WHERE student_id = $1 AND class_offering_id = $2`,
		studentID, offeringID); err != nil {
		return nil, err
	}
	return &enrolment, nil
}

// FindByStudentAndSession resolves the student's enrolment in the offering
// the session belongs to.
func (r *EnrolmentRepository) FindByStudentAndSession(ctx context.Context, studentID string, sessionID int64) (*models.Enrolment, error) {
	var enrolment models.Enrolment
	if err := r.db.GetContext(ctx, &enrolment,
		`SELECT e.enrolment_id, e.class_offering_id, e.student_id, e.enrolment_status
		FROM class_session cs
		JOIN enrolment e ON e.class_offering_id = cs.class_offering_id
		WHERE cs.session_id = $1 AND e.student_id = $2`,
		sessionID, studentID); err != nil {
		return nil, err
	}
	return &enrolment, nil
}

// BelongsToSessionOffering reports whether the enrolment and session share
// the same class offering.
func (r *EnrolmentRepository) BelongsToSessionOffering(ctx context.Context, enrolmentID, sessionID int64) (bool, error) {
	var ok bool
	if err := r.db.GetContext(ctx, &ok,
		`SELECT EXISTS (
			SELECT 1 FROM class_session cs
			JOIN enrolment e ON e.class_offering_id = cs.class_offering_id
			WHERE cs.session_id = $1 AND e.enrolment_id = $2)`,
		sessionID, enrolmentID); err != nil {
		return false, fmt.Errorf("check enrolment scope: %w", err)
	}
	return ok, nil
}

// Create inserts an enrolment, defaulting the status to Active.
func (r *EnrolmentRepository) Create(ctx context.Context, enrolment *models.Enrolment) error {
	if enrolment.EnrolmentStatus == "" {
		enrolment.EnrolmentStatus = models.EnrolmentStatusActive
	}
	if err := r.db.GetContext(ctx, &enrolment.EnrolmentID,
		`INSERT INTO enrolment (class_offering_id, student_id, enrolment_status)
		VALUES ($1, $2, $3) RETURNING enrolment_id`,
		enrolment.ClassOfferingID, enrolment.StudentID, enrolment.EnrolmentStatus); err != nil {
		return fmt.Errorf("create enrolment: %w", err)
	}
	return nil
}

// UpdateStatus mutates the enrolment status. Returns sql.ErrNoRows when absent.
func (r *EnrolmentRepository) UpdateStatus(ctx context.Context, id int64, status models.EnrolmentStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE enrolment SET enrolment_status = $1 WHERE enrolment_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update enrolment status: %w", err)
	}
	return requireAffected(res)
}

// Delete removes the enrolment. FK RESTRICT blocks it while attendance or
// grade rows reference it.
func (r *EnrolmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM enrolment WHERE enrolment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete enrolment: %w", err)
	}
	return requireAffected(res)
}
