package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/lms-portal-api/internal/models"
)

// CourseRepository handles persistence of catalog courses.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns all courses ordered by code.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses,
		`SELECT course_code, course_name FROM course ORDER BY course_code`); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByCode returns one course.
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*models.Course, error) {
	var course models.Course
	if err := r.db.GetContext(ctx, &course,
		`SELECT course_code, course_name FROM course WHERE course_code = $1`, code); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO course (course_code, course_name) VALUES ($1, $2)`,
		course.CourseCode, course.CourseName); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update renames a course. Returns sql.ErrNoRows when absent.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE course SET course_name = $1 WHERE course_code = $2`,
		course.CourseName, course.CourseCode)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return requireAffected(res)
}

// Delete removes a course. FK RESTRICT blocks it while offerings or
// assessment types reference the code.
func (r *CourseRepository) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM course WHERE course_code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return requireAffected(res)
}
