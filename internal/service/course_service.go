package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type courseRepo interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByCode(ctx context.Context, code string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, code string) error
}

// CreateCourseRequest is the payload for a new catalog entry.
type CreateCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
	CourseName string `json:"course_name" validate:"required"`
}

// UpdateCourseRequest renames a course.
type UpdateCourseRequest struct {
	CourseName string `json:"course_name" validate:"required"`
}

// CourseService manages the course catalog.
type CourseService struct {
	repo      courseRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(repo courseRepo, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// List returns the full catalog ordered by course code.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Get returns one course by code.
func (s *CourseService) Get(ctx context.Context, code string) (*models.Course, error) {
	course, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, readError(err, "course not found", "failed to load course")
	}
	return course, nil
}

// Create inserts a catalog entry.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course := &models.Course{CourseCode: req.CourseCode, CourseName: req.CourseName}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, storeError(err, "course not found", appErrors.ErrConflict, "course code already exists", "failed to create course")
	}
	return course, nil
}

// Update renames a course.
func (s *CourseService) Update(ctx context.Context, code string, req UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course := &models.Course{CourseCode: code, CourseName: req.CourseName}
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, storeError(err, "course not found", appErrors.ErrConflict, "course is referenced by other records", "failed to update course")
	}
	return course, nil
}

// Delete removes a course. Courses referenced by offerings or
// assessment types are rejected with a conflict.
func (s *CourseService) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return storeError(err, "course not found", appErrors.ErrConflict, "course is referenced by other records", "failed to delete course")
	}
	return nil
}
