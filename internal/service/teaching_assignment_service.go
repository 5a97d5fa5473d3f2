package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type teachingAssignmentRepo interface {
	List(ctx context.Context, filter models.TeachingAssignmentFilter) ([]models.TeachingAssignmentDetail, error)
	FindByID(ctx context.Context, id int64) (*models.TeachingAssignmentDetail, error)
	Create(ctx context.Context, assignment *models.TeachingAssignment) error
	Delete(ctx context.Context, id int64) error
}

// CreateTeachingAssignmentRequest maps an instructor onto an offering.
type CreateTeachingAssignmentRequest struct {
	ClassOfferingID int64  `json:"class_offering_id" validate:"required"`
	InstructorID    string `json:"instructor_id" validate:"required"`
}

// TeachingAssignmentService manages instructor-to-offering mappings.
type TeachingAssignmentService struct {
	repo      teachingAssignmentRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeachingAssignmentService constructs a TeachingAssignmentService.
func NewTeachingAssignmentService(repo teachingAssignmentRepo, validate *validator.Validate, logger *zap.Logger) *TeachingAssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeachingAssignmentService{repo: repo, validator: validate, logger: logger}
}

// List returns assignments with instructor and offering context.
func (s *TeachingAssignmentService) List(ctx context.Context, filter models.TeachingAssignmentFilter) ([]models.TeachingAssignmentDetail, error) {
	assignments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teaching assignments")
	}
	return assignments, nil
}

// Get returns one assignment.
func (s *TeachingAssignmentService) Get(ctx context.Context, id int64) (*models.TeachingAssignmentDetail, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "teaching assignment not found", "failed to load teaching assignment")
	}
	return assignment, nil
}

// Create maps an instructor onto an offering. Duplicate pairs conflict;
// unknown instructors or offerings are validation failures.
func (s *TeachingAssignmentService) Create(ctx context.Context, req CreateTeachingAssignmentRequest) (*models.TeachingAssignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teaching assignment payload")
	}
	assignment := &models.TeachingAssignment{
		ClassOfferingID: req.ClassOfferingID,
		InstructorID:    req.InstructorID,
	}
	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, storeError(err, "teaching assignment not found", appErrors.ErrValidation, "unknown instructor or class offering", "failed to create teaching assignment")
	}
	return assignment, nil
}

// Delete removes an assignment.
func (s *TeachingAssignmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "teaching assignment not found", appErrors.ErrConflict, "teaching assignment is referenced by other records", "failed to delete teaching assignment")
	}
	return nil
}
