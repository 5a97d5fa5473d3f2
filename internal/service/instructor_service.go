package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type instructorRepo interface {
	List(ctx context.Context, filter models.InstructorFilter) ([]models.InstructorProfile, error)
	FindByID(ctx context.Context, instructorID string) (*models.InstructorProfile, error)
	Create(ctx context.Context, profile *models.InstructorProfile) error
	Update(ctx context.Context, instructorID string, fullName, email *string) error
	Delete(ctx context.Context, instructorID string) error
}

// CreateInstructorRequest creates a person row and its instructor
// identity in one transaction.
type CreateInstructorRequest struct {
	InstructorID string `json:"instructor_id" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
}

// UpdateInstructorRequest is a partial update; nil fields are left untouched.
type UpdateInstructorRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// InstructorService manages instructor profiles.
type InstructorService struct {
	repo      instructorRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInstructorService constructs an InstructorService.
func NewInstructorService(repo instructorRepo, validate *validator.Validate, logger *zap.Logger) *InstructorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{repo: repo, validator: validate, logger: logger}
}

// List returns instructors, optionally filtered by a name/email search.
func (s *InstructorService) List(ctx context.Context, filter models.InstructorFilter) ([]models.InstructorProfile, error) {
	instructors, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list instructors")
	}
	return instructors, nil
}

// Get returns one instructor profile.
func (s *InstructorService) Get(ctx context.Context, instructorID string) (*models.InstructorProfile, error) {
	instructor, err := s.repo.FindByID(ctx, instructorID)
	if err != nil {
		return nil, readError(err, "instructor not found", "failed to load instructor")
	}
	return instructor, nil
}

// Create inserts the person and instructor rows atomically.
func (s *InstructorService) Create(ctx context.Context, req CreateInstructorRequest) (*models.InstructorProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid instructor payload")
	}
	profile := &models.InstructorProfile{
		Instructor: models.Instructor{InstructorID: req.InstructorID},
		FullName:   req.FullName,
		Email:      req.Email,
	}
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, storeError(err, "instructor not found", appErrors.ErrConflict, "instructor id or email already registered", "failed to create instructor")
	}
	s.logger.Info("instructor created", zap.String("instructor_id", profile.InstructorID))
	return profile, nil
}

// Update applies the provided fields to the instructor's person row.
func (s *InstructorService) Update(ctx context.Context, instructorID string, req UpdateInstructorRequest) (*models.InstructorProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid instructor payload")
	}
	if req.FullName == nil && req.Email == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	if err := s.repo.Update(ctx, instructorID, req.FullName, req.Email); err != nil {
		return nil, storeError(err, "instructor not found", appErrors.ErrConflict, "email already registered", "failed to update instructor")
	}
	instructor, err := s.repo.FindByID(ctx, instructorID)
	if err != nil {
		return nil, readError(err, "instructor not found", "failed to load instructor")
	}
	return instructor, nil
}

// Delete removes the instructor and its person row. Instructors still
// holding teaching assignments are rejected with a conflict.
func (s *InstructorService) Delete(ctx context.Context, instructorID string) error {
	if err := s.repo.Delete(ctx, instructorID); err != nil {
		return storeError(err, "instructor not found", appErrors.ErrConflict, "instructor is referenced by teaching assignments", "failed to delete instructor")
	}
	s.logger.Info("instructor deleted", zap.String("instructor_id", instructorID))
	return nil
}
