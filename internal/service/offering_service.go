package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type offeringRepo interface {
	List(ctx context.Context, filter models.ClassOfferingFilter) ([]models.ClassOfferingDetail, error)
	FindByID(ctx context.Context, id int64) (*models.ClassOfferingDetail, error)
	Create(ctx context.Context, offering *models.ClassOffering) error
	Update(ctx context.Context, offering *models.ClassOffering) error
	Delete(ctx context.Context, id int64) error
}

// CreateOfferingRequest schedules a course for a term and class group.
type CreateOfferingRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
	TermID     int64  `json:"term_id" validate:"required"`
	ClassGroup string `json:"class_group" validate:"required"`
	ClassType  string `json:"class_type" validate:"required"`
}

// UpdateOfferingRequest replaces the offering's fields.
type UpdateOfferingRequest struct {
	CourseCode string `json:"course_code" validate:"required"`
	TermID     int64  `json:"term_id" validate:"required"`
	ClassGroup string `json:"class_group" validate:"required"`
	ClassType  string `json:"class_type" validate:"required"`
}

// OfferingService manages class offerings.
type OfferingService struct {
	repo      offeringRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewOfferingService constructs an OfferingService.
func NewOfferingService(repo offeringRepo, validate *validator.Validate, logger *zap.Logger) *OfferingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OfferingService{repo: repo, validator: validate, logger: logger}
}

// List returns offerings with course and term context.
func (s *OfferingService) List(ctx context.Context, filter models.ClassOfferingFilter) ([]models.ClassOfferingDetail, error) {
	offerings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list class offerings")
	}
	return offerings, nil
}

// Get returns one offering with course and term context.
func (s *OfferingService) Get(ctx context.Context, id int64) (*models.ClassOfferingDetail, error) {
	offering, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "class offering not found", "failed to load class offering")
	}
	return offering, nil
}

// Create schedules an offering. Unknown course codes or terms are
// rejected as validation failures.
func (s *OfferingService) Create(ctx context.Context, req CreateOfferingRequest) (*models.ClassOffering, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class offering payload")
	}
	offering := &models.ClassOffering{
		CourseCode: req.CourseCode,
		TermID:     req.TermID,
		ClassGroup: req.ClassGroup,
		ClassType:  req.ClassType,
	}
	if err := s.repo.Create(ctx, offering); err != nil {
		return nil, storeError(err, "class offering not found", appErrors.ErrValidation, "unknown course or term", "failed to create class offering")
	}
	return offering, nil
}

// Update replaces the offering's fields.
func (s *OfferingService) Update(ctx context.Context, id int64, req UpdateOfferingRequest) (*models.ClassOffering, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class offering payload")
	}
	offering := &models.ClassOffering{
		ClassOfferingID: id,
		CourseCode:      req.CourseCode,
		TermID:          req.TermID,
		ClassGroup:      req.ClassGroup,
		ClassType:       req.ClassType,
	}
	if err := s.repo.Update(ctx, offering); err != nil {
		return nil, storeError(err, "class offering not found", appErrors.ErrValidation, "unknown course or term", "failed to update class offering")
	}
	return offering, nil
}

// Delete removes an offering. Offerings referenced by sessions or
// enrolments are rejected with a conflict.
func (s *OfferingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "class offering not found", appErrors.ErrConflict, "class offering is referenced by other records", "failed to delete class offering")
	}
	return nil
}
