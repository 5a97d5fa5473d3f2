package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// PersonRepository handles persistence of base person rows.
type PersonRepository struct {
	db *sqlx.DB
}

// NewPersonRepository constructs the repository.
func NewPersonRepository(db *sqlx.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// List returns people, newest first.
func (r *PersonRepository) List(ctx context.Context, filter models.PersonFilter) ([]models.Person, error) {
	query := `SELECT person_id, full_name, email FROM person`
	var args []interface{}
	if filter.Search != "" {
		query += ` WHERE full_name ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+filter.Search+"%")
	}
	query += ` ORDER BY person_id DESC`
	var people []models.Person
	if err := r.db.SelectContext(ctx, &people, query, args...); err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return people, nil
}

// FindByID returns one person row.
func (r *PersonRepository) FindByID(ctx context.Context, id int64) (*models.Person, error) {
	var person models.Person
	if err := r.db.GetContext(ctx, &person,
		`SELECT person_id, full_name, email FROM person WHERE person_id = $1`, id); err != nil {
		return nil, err
	}
	return &person, nil
}

// Create inserts a person and fills its generated ID.
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	if err := r.db.GetContext(ctx, &person.PersonID,
		`INSERT INTO person (full_name, email) VALUES ($1, $2) RETURNING person_id`,
		person.FullName, person.Email); err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

// Update rewrites the person row. Returns sql.ErrNoRows when absent.
func (r *PersonRepository) Update(ctx context.Context, person *models.Person) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE person SET full_name = $1, email = $2 WHERE person_id = $3`,
		person.FullName, person.Email, person.PersonID)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	return requireAffected(res)
}

// Delete removes the person row. FK RESTRICT blocks deletion while a
// student or instructor still references it.
func (r *PersonRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM person WHERE person_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return requireAffected(res)
}
