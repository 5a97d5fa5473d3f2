package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// InstructorRepository handles persistence of instructors and their person rows.
type InstructorRepository struct {
	db *sqlx.DB
}

// NewInstructorRepository constructs the repository.
func NewInstructorRepository(db *sqlx.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

const instructorProfileColumns = `i.instructor_id, i.person_id, p.full_name, p.email`

// List returns instructors joined with their person rows, optionally
// searched by name, email or ID.
func (r *InstructorRepository) List(ctx context.Context, filter models.InstructorFilter) ([]models.InstructorProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM instructor i JOIN person p ON p.person_id = i.person_id`, instructorProfileColumns)
	var args []interface{}
	if filter.Search != "" {
		query += ` WHERE p.full_name ILIKE $1 OR p.email ILIKE $1 OR i.instructor_id ILIKE $1`
		args = append(args, "%"+filter.Search+"%")
	}
	query += ` ORDER BY i.instructor_id`
	var instructors []models.InstructorProfile
	if err := r.db.SelectContext(ctx, &instructors, query, args...); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}

// FindByID returns one instructor profile.
func (r *InstructorRepository) FindByID(ctx context.Context, instructorID string) (*models.InstructorProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM instructor i JOIN person p ON p.person_id = i.person_id WHERE i.instructor_id = $1`, instructorProfileColumns)
	var instructor models.InstructorProfile
	if err := r.db.GetContext(ctx, &instructor, query, instructorID); err != nil {
		return nil, err
	}
	return &instructor, nil
}

// Create inserts the person and instructor rows in one transaction.
func (r *InstructorRepository) Create(ctx context.Context, profile *models.InstructorProfile) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create instructor: %w", err)
	}
	if err := tx.GetContext(ctx, &profile.PersonID,
		`INSERT INTO person (full_name, email) VALUES ($1, $2) RETURNING person_id`,
		profile.FullName, profile.Email); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("create instructor person: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO instructor (instructor_id, person_id) VALUES ($1, $2)`,
		profile.InstructorID, profile.PersonID); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("create instructor: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create instructor: %w", err)
	}
	return nil
}

// Update rewrites person fields for the instructor. Returns sql.ErrNoRows
// when the instructor does not exist.
func (r *InstructorRepository) Update(ctx context.Context, instructorID string, fullName, email *string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update instructor: %w", err)
	}
	var personID int64
	if err := tx.GetContext(ctx, &personID,
		`SELECT person_id FROM instructor WHERE instructor_id = $1`, instructorID); err != nil {
		tx.Rollback() //nolint:errcheck
		return err
	}
	if fullName != nil || email != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE person SET full_name = COALESCE($1, full_name), email = COALESCE($2, email) WHERE person_id = $3`,
			fullName, email, personID); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("update instructor person: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update instructor: %w", err)
	}
	return nil
}

// Delete removes the instructor then its person row in one transaction.
func (r *InstructorRepository) Delete(ctx context.Context, instructorID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete instructor: %w", err)
	}
	var personID int64
	if err := tx.GetContext(ctx, &personID,
		`SELECT person_id FROM instructor WHERE instructor_id = $1`, instructorID); err != nil {
		tx.Rollback() //nolint:errcheck
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM instructor WHERE instructor_id = $1`, instructorID); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("delete instructor: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM person WHERE person_id = $1`, personID); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("delete instructor person: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete instructor: %w", err)
	}
	return nil
}

// TeachesSession reports whether the instructor has a teaching assignment
// for the session's class offering.
func (r *InstructorRepository) TeachesSession(ctx context.Context, instructorID string, sessionID int64) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (
			SELECT 1 FROM class_session cs
			JOIN teaching_assignment ta ON ta.class_offering_id = cs.class_offering_id
			WHERE cs.session_id = $1 AND ta.instructor_id = $2)`,
		sessionID, instructorID); err != nil {
		return false, fmt.Errorf("check teaching assignment: %w", err)
	}
	return exists, nil
}
