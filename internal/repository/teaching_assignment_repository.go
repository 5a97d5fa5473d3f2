package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// TeachingAssignmentRepository handles instructor ↔ offering assignments.
type TeachingAssignmentRepository struct {
	db *sqlx.DB
}

// NewTeachingAssignmentRepository constructs the repository.
func NewTeachingAssignmentRepository(db *sqlx.DB) *TeachingAssignmentRepository {
	return &TeachingAssignmentRepository{db: db}
}

const assignmentDetailQuery = `SELECT ta.assignment_id, ta.class_offering_id, ta.instructor_id,
	p.full_name AS instructor_name, co.course_code, c.course_name, co.class_group, t.term_label
	FROM teaching_assignment ta
	JOIN instructor i ON i.instructor_id = ta.instructor_id
	JOIN person p ON p.person_id = i.person_id
	JOIN class_offering co ON co.class_offering_id = ta.class_offering_id
	JOIN course c ON c.course_code = co.course_code
	JOIN term t ON t.term_id = co.term_id`

// List returns assignments with instructor and offering context.
func (r *TeachingAssignmentRepository) List(ctx context.Context, filter models.TeachingAssignmentFilter) ([]models.TeachingAssignmentDetail, error) {
	query := assignmentDetailQuery
	var conditions []string
	var args []interface{}
	if filter.ClassOfferingID != 0 {
		conditions = append(conditions, fmt.Sprintf("ta.class_offering_id = $%d", len(args)+1))
		args = append(args, filter.ClassOfferingID)
	}
	if filter.InstructorID != "" {
		conditions = append(conditions, fmt.Sprintf("ta.instructor_id = $%d", len(args)+1))
		args = append(args, filter.InstructorID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY ta.assignment_id DESC"
	var assignments []models.TeachingAssignmentDetail
	if err := r.db.SelectContext(ctx, &assignments, query, args...); err != nil {
		return nil, fmt.Errorf("list teaching assignments: %w", err)
	}
	return assignments, nil
}

// FindByID returns one assignment with context.
func (r *TeachingAssignmentRepository) FindByID(ctx context.Context, id int64) (*models.TeachingAssignmentDetail, error) {
	var assignment models.TeachingAssignmentDetail
	if err := r.db.GetContext(ctx, &assignment, assignmentDetailQuery+` WHERE ta.assignment_id = $1`, id); err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Create inserts an assignment. Duplicate (offering, instructor) pairs
// violate the unique constraint and surface as a conflict.
func (r *TeachingAssignmentRepository) Create(ctx context.Context, assignment *models.TeachingAssignment) error {
	if err := r.db.GetContext(ctx, &assignment.AssignmentID,
		`INSERT INTO teaching_assignment (class_offering_id, instructor_id)
		VALUES ($1, $2) RETURNING assignment_id`,
		assignment.ClassOfferingID, assignment.InstructorID); err != nil {
		return fmt.Errorf("create teaching assignment: %w", err)
	}
	return nil
}

// Delete removes the assignment.
func (r *TeachingAssignmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teaching_assignment WHERE assignment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete teaching assignment: %w", err)
	}
	return requireAffected(res)
}
