package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// StudentRepository handles persistence of students and their person rows.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs the repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

const studentProfileColumns = `s.student_id, s.person_id, s.cohort, p.full_name, p.email`

// List returns all students joined with their person rows.
func (r *StudentRepository) List(ctx context.Context) ([]models.StudentProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM student s JOIN person p ON p.person_id = s.person_id ORDER BY s.student_id`, studentProfileColumns)
	var students []models.StudentProfile
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID returns one student profile.
func (r *StudentRepository) FindByID(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	query := fmt.Sprintf(`SELECT %s FROM student s JOIN person p ON p.person_id = s.person_id WHERE s.student_id = $1`, studentProfileColumns)
	var student models.StudentProfile
	if err := r.db.GetContext(ctx, &student, query, studentID); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts the person and student rows in one transaction. A failure
// on either insert rolls back both, so a person without a student role is
// never observable.
func (r *StudentRepository) Create(ctx context.Context, profile *models.StudentProfile) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create student: %w", err)
	}
	if err := tx.GetContext(ctx, &profile.PersonID,
		`INSERT INTO person (full_name, email) VALUES ($1, $2) RETURNING person_id`,
		profile.FullName, profile.Email); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("create student person: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO student (student_id, person_id, cohort) VALUES ($1, $2, $3)`,
		profile.StudentID, profile.PersonID, profile.Cohort); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("create student: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create student: %w", err)
	}
	return nil
}

// Update rewrites person and/or student fields in one transaction.
// Returns sql.ErrNoRows when the student does not exist.
func (r *StudentRepository) Update(ctx context.Context, studentID string, fullName, email, cohort *string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update student: %w", err)
	}
	var personID int64
	if err := tx.GetContext(ctx, &personID,
		`SELECT person_id FROM student WHERE student_id = $1`, studentID); err != nil {
		tx.Rollback() //nolint:errcheck
		return err
	}
	if fullName != nil || email != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE person SET full_name = COALESCE($1, full_name), email = COALESCE($2, email) WHERE person_id = $3`,
			fullName, email, personID); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("update student person: %w", err)
		}
	}
	if cohort != nil {
		if _, err := tx.ExecContext(ctx,
			`UPDATE student SET cohort = $1 WHERE student_id = $2`, cohort, studentID); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("update student: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update student: %w", err)
	}
	return nil
}

// Delete removes the student then its person row in one transaction.
// FK RESTRICT blocks the delete while enrolments reference the student.
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete student: %w", err)
	}
	var personID int64
	if err := tx.GetContext(ctx, &personID,
		`SELECT person_id FROM student WHERE student_id = $1`, studentID); err != nil {
		tx.Rollback() //nolint:errcheck
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM student WHERE student_id = $1`, studentID); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("delete student: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM person WHERE person_id = $1`, personID); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("delete student person: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete student: %w", err)
	}
	return nil
}
