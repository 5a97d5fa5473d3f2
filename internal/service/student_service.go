package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type studentRepo interface {
	List(ctx context.Context) ([]models.StudentProfile, error)
	FindByID(ctx context.Context, studentID string) (*models.StudentProfile, error)
	Create(ctx context.Context, profile *models.StudentProfile) error
	Update(ctx context.Context, studentID string, fullName, email, cohort *string) error
	Delete(ctx context.Context, studentID string) error
}

// CreateStudentRequest creates a person row and its student identity in
// one transaction.
type CreateStudentRequest struct {
	StudentID string  `json:"student_id" validate:"required"`
	FullName  string  `json:"full_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Cohort    *string `json:"cohort"`
}

// UpdateStudentRequest is a partial update; nil fields are left untouched.
type UpdateStudentRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Cohort   *string `json:"cohort"`
}

// StudentService manages student profiles.
type StudentService struct {
	repo      studentRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepo, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// List returns every student with its person row joined in.
func (s *StudentService) List(ctx context.Context) ([]models.StudentProfile, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Get returns one student profile.
func (s *StudentService) Get(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	student, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		return nil, readError(err, "student not found", "failed to load student")
	}
	return student, nil
}

// Create inserts the person and student rows atomically; either both
// commit or neither does.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.StudentProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	profile := &models.StudentProfile{
		Student:  models.Student{StudentID: req.StudentID, Cohort: req.Cohort},
		FullName: req.FullName,
		Email:    req.Email,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, storeError(err, "student not found", appErrors.ErrConflict, "student id or email already registered", "failed to create student")
	}
	s.logger.Info("student created", zap.String("student_id", profile.StudentID))
	return profile, nil
}

// Update applies the provided fields to the student and its person row.
func (s *StudentService) Update(ctx context.Context, studentID string, req UpdateStudentRequest) (*models.StudentProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	if req.FullName == nil && req.Email == nil && req.Cohort == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	if err := s.repo.Update(ctx, studentID, req.FullName, req.Email, req.Cohort); err != nil {
		return nil, storeError(err, "student not found", appErrors.ErrConflict, "email already registered", "failed to update student")
	}
	student, err := s.repo.FindByID(ctx, studentID)
	if err != nil {
		return nil, readError(err, "student not found", "failed to load student")
	}
	return student, nil
}

// Delete removes the student and its person row. Students still holding
// enrolments are rejected with a conflict.
func (s *StudentService) Delete(ctx context.Context, studentID string) error {
	if err := s.repo.Delete(ctx, studentID); err != nil {
		return storeError(err, "student not found", appErrors.ErrConflict, "student is referenced by enrolments", "failed to delete student")
	}
	s.logger.Info("student deleted", zap.String("student_id", studentID))
	return nil
}
