package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// AssessmentTypeRepository handles gradable component definitions.
type AssessmentTypeRepository struct {
	db *sqlx.DB
}

// NewAssessmentTypeRepository constructs the repository.
func NewAssessmentTypeRepository(db *sqlx.DB) *AssessmentTypeRepository {
	return &AssessmentTypeRepository{db: db}
}

const assessmentDetailQuery = `SELECT at.assessment_id, at.course_code, at.assessment_type, at.weight, c.course_name
	FROM assessment_type at
	LEFT JOIN course c ON c.course_code = at.course_code`

// List returns assessment types with course names.
func (r *AssessmentTypeRepository) List(ctx context.Context, filter models.AssessmentTypeFilter) ([]models.AssessmentTypeDetail, error) {
	query := assessmentDetailQuery
	var conditions []string
	var args []interface{}
	if filter.CourseCode != "" {
		conditions = append(conditions, fmt.Sprintf("at.course_code = $%d", len(args)+1))
		args = append(args, filter.CourseCode)
	}
	if filter.Label != "" {
		conditions = append(conditions, fmt.Sprintf("at.assessment_type = $%d", len(args)+1))
		args = append(args, filter.Label)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY at.course_code, at.assessment_type"
	var types []models.AssessmentTypeDetail
	if err := r.db.SelectContext(ctx, &types, query, args...); err != nil {
		return nil, fmt.Errorf("list assessment types: %w", err)
	}
	return types, nil
}

// FindByID returns one assessment type with its course name.
func (r *AssessmentTypeRepository) FindByID(ctx context.Context, id int64) (*models.AssessmentTypeDetail, error) {
	var at models.AssessmentTypeDetail
	if err := r.db.GetContext(ctx, &at, assessmentDetailQuery+` WHERE at.assessment_id = $1`, id); err != nil {
		return nil, err
	}
	return &at, nil
}

// Create inserts an assessment type. Duplicate (course, label) pairs
// violate the unique constraint.
func (r *AssessmentTypeRepository) Create(ctx context.Context, at *models.AssessmentType) error {
	if err := r.db.GetContext(ctx, &at.AssessmentID,
		`INSERT INTO assessment_type (course_code, assessment_type, weight)
		VALUES ($1, $2, $3) RETURNING assessment_id`,
		at.CourseCode, at.AssessmentType, at.Weight); err != nil {
		return fmt.Errorf("create assessment type: %w", err)
	}
	return nil
}

// Update partially rewrites an assessment type with COALESCE semantics.
// Returns sql.ErrNoRows when absent.
func (r *AssessmentTypeRepository) Update(ctx context.Context, id int64, courseCode, label *string, weight *float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE assessment_type
		SET course_code = COALESCE($1, course_code),
			assessment_type = COALESCE($2, assessment_type),
			weight = COALESCE($3, weight)
		WHERE assessment_id = $4`,
		courseCode, label, weight, id)
	if err != nil {
		return fmt.Errorf("update assessment type: %w", err)
	}
	return requireAffected(res)
}

// Delete removes an assessment type.
func (r *AssessmentTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assessment_type WHERE assessment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assessment type: %w", err)
	}
	return requireAffected(res)
}
