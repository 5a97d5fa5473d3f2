package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// OfferingRepository handles persistence of class offerings.
type OfferingRepository struct {
	db *sqlx.DB
}

// NewOfferingRepository constructs the repository.
func NewOfferingRepository(db *sqlx.DB) *OfferingRepository {
	return &OfferingRepository{db: db}
}

const offeringDetailQuery = `SELECT co.class_offering_id, co.course_code, co.term_id, co.class_group, co.class_type,
	c.course_name, t.term_label
	FROM class_offering co
	JOIN course c ON c.course_code = co.course_code
	JOIN term t ON t.term_id = co.term_id`

// List returns offerings joined with course and term context.
func (r *OfferingRepository) List(ctx context.Context, filter models.ClassOfferingFilter) ([]models.ClassOfferingDetail, error) {
	query := offeringDetailQuery
	var conditions []string
	var args []interface{}
	if filter.TermID != 0 {
		conditions = append(conditions, fmt.Sprintf("co.term_id = $%d", len(args)+1))
		args = append(args, filter.TermID)
	}
	if filter.CourseCode != "" {
		conditions = append(conditions, fmt.Sprintf("co.course_code = $%d", len(args)+1))
		args = append(args, filter.CourseCode)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY co.class_offering_id DESC"
	var offerings []models.ClassOfferingDetail
	if err := r.db.SelectContext(ctx, &offerings, query, args...); err != nil {
		return nil, fmt.Errorf("list class offerings: %w", err)
	}
	return offerings, nil
}

// FindByID returns one offering with course and term context.
func (r *OfferingRepository) FindByID(ctx context.Context, id int64) (*models.ClassOfferingDetail, error) {
	var offering models.ClassOfferingDetail
	if err := r.db.GetContext(ctx, &offering, offeringDetailQuery+` WHERE co.class_offering_id = $1`, id); err != nil {
		return nil, err
	}
	return &offering, nil
}

// Create inserts an offering and fills its generated ID.
func (r *OfferingRepository) Create(ctx context.Context, offering *models.ClassOffering) error {
	if err := r.db.GetContext(ctx, &offering.ClassOfferingID,
		`INSERT INTO class_offering (course_code, term_id, class_group, class_type)
		VALUES ($1, $2, $3, $4) RETURNING class_offering_id`,
		offering.CourseCode, offering.TermID, offering.ClassGroup, offering.ClassType); err != nil {
		return fmt.Errorf("create class offering: %w", err)
	}
	return nil
}

// Update rewrites the offering. Returns sql.ErrNoRows when absent.
func (r *OfferingRepository) Update(ctx context.Context, offering *models.ClassOffering) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE class_offering SET course_code = $1, term_id = $2, class_group = $3, class_type = $4
		WHERE class_offering_id = $5`,
		offering.CourseCode, offering.TermID, offering.ClassGroup, offering.ClassType, offering.ClassOfferingID)
	if err != nil {
		return fmt.Errorf("update class offering: %w", err)
	}
	return requireAffected(res)
}

// Delete removes the offering.
func (r *OfferingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM class_offering WHERE class_offering_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete class offering: %w", err)
	}
	return requireAffected(res)
}
