package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type assessmentTypeRepo interface {
	List(ctx context.Context, filter models.AssessmentTypeFilter) ([]models.AssessmentTypeDetail, error)
	FindByID(ctx context.Context, id int64) (*models.AssessmentTypeDetail, error)
	Create(ctx context.Context, at *models.AssessmentType) error
	Update(ctx context.Context, id int64, courseCode, label *string, weight *float64) error
	Delete(ctx context.Context, id int64) error
}

// CreateAssessmentTypeRequest defines a gradable component of a course.
type CreateAssessmentTypeRequest struct {
	CourseCode     string  `json:"course_code" validate:"required"`
	AssessmentType string  `json:"assessment_type" validate:"required"`
	Weight         float64 `json:"weight" validate:"min=0,max=100"`
}

// UpdateAssessmentTypeRequest is a partial update; nil fields are left
// untouched.
type UpdateAssessmentTypeRequest struct {
	CourseCode     *string  `json:"course_code"`
	AssessmentType *string  `json:"assessment_type"`
	Weight         *float64 `json:"weight" validate:"omitempty,min=0,max=100"`
}

// AssessmentTypeService manages the weighted components of courses.
type AssessmentTypeService struct {
	repo      assessmentTypeRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAssessmentTypeService constructs an AssessmentTypeService.
func NewAssessmentTypeService(repo assessmentTypeRepo, validate *validator.Validate, logger *zap.Logger) *AssessmentTypeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentTypeService{repo: repo, validator: validate, logger: logger}
}

// List returns assessment types, optionally narrowed to one course.
func (s *AssessmentTypeService) List(ctx context.Context, filter models.AssessmentTypeFilter) ([]models.AssessmentTypeDetail, error) {
	types, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assessment types")
	}
	return types, nil
}

// Get returns one assessment type.
func (s *AssessmentTypeService) Get(ctx context.Context, id int64) (*models.AssessmentTypeDetail, error) {
	at, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "assessment type not found", "failed to load assessment type")
	}
	return at, nil
}

// Create inserts an assessment type. Weights live in [0,100] but are
// not required to sum to 100 across a course.
func (s *AssessmentTypeService) Create(ctx context.Context, req CreateAssessmentTypeRequest) (*models.AssessmentType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assessment type payload")
	}
	at := &models.AssessmentType{
		CourseCode:     req.CourseCode,
		AssessmentType: req.AssessmentType,
		Weight:         req.Weight,
	}
	if err := s.repo.Create(ctx, at); err != nil {
		return nil, storeError(err, "assessment type not found", appErrors.ErrValidation, "unknown course", "failed to create assessment type")
	}
	return at, nil
}

// Update applies the provided fields to an assessment type.
func (s *AssessmentTypeService) Update(ctx context.Context, id int64, req UpdateAssessmentTypeRequest) (*models.AssessmentTypeDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assessment type payload")
	}
	if req.CourseCode == nil && req.AssessmentType == nil && req.Weight == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	if err := s.repo.Update(ctx, id, req.CourseCode, req.AssessmentType, req.Weight); err != nil {
		return nil, storeError(err, "assessment type not found", appErrors.ErrValidation, "unknown course", "failed to update assessment type")
	}
	at, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "assessment type not found", "failed to load assessment type")
	}
	return at, nil
}

// Delete removes an assessment type. Types referenced by grades are
// rejected with a conflict.
func (s *AssessmentTypeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "assessment type not found", appErrors.ErrConflict, "assessment type is referenced by grades", "failed to delete assessment type")
	}
	return nil
}
