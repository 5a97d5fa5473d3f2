package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// TermRepository handles persistence of academic terms.
type TermRepository struct {
	db *sqlx.DB
}

// NewTermRepository constructs the repository.
func NewTermRepository(db *sqlx.DB) *TermRepository {
	return &TermRepository{db: db}
}

// List returns all terms, most recent first.
func (r *TermRepository) List(ctx context.Context) ([]models.Term, error) {
	var terms []models.Term
	if err := r.db.SelectContext(ctx, &terms,
		`SELECT term_id, term_label, start_date, end_date FROM term ORDER BY start_date DESC`); err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}

// FindByID returns one term.
func (r *TermRepository) FindByID(ctx context.Context, id int64) (*models.Term, error) {
	var term models.Term
	if err := r.db.GetContext(ctx, &term,
		`SELECT term_id, term_label, start_date, end_date FROM term WHERE term_id = $1`, id); err != nil {
		return nil, err
	}
	return &term, nil
}

// Create inserts a term and fills its generated ID.
func (r *TermRepository) Create(ctx context.Context, term *models.Term) error {
	if err := r.db.GetContext(ctx, &term.TermID,
		`INSERT INTO term (term_label, start_date, end_date) VALUES ($1, $2, $3) RETURNING term_id`,
		term.TermLabel, term.StartDate, term.EndDate); err != nil {
		return fmt.Errorf("create term: %w", err)
	}
	return nil
}

// Update rewrites a term. Returns sql.ErrNoRows when absent.
func (r *TermRepository) Update(ctx context.Context, term *models.Term) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE term SET term_label = $1, start_date = $2, end_date = $3 WHERE term_id = $4`,
		term.TermLabel, term.StartDate, term.EndDate, term.TermID)
	if err != nil {
		return fmt.Errorf("update term: %w", err)
	}
	return requireAffected(res)
}

// Delete removes a term.
func (r *TermRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM term WHERE term_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete term: %w", err)
	}
	return requireAffected(res)
}
