package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type termRepo interface {
	List(ctx context.Context) ([]models.Term, error)
	FindByID(ctx context.Context, id int64) (*models.Term, error)
	Create(ctx context.Context, term *models.Term) error
	Update(ctx context.Context, term *models.Term) error
	Delete(ctx context.Context, id int64) error
}

// CreateTermRequest is the payload for a new academic term.
type CreateTermRequest struct {
	TermLabel string    `json:"term_label" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// UpdateTermRequest replaces the term's fields.
type UpdateTermRequest struct {
	TermLabel string    `json:"term_label" validate:"required"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

// TermService manages academic terms.
type TermService struct {
	repo      termRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTermService constructs a TermService.
func NewTermService(repo termRepo, validate *validator.Validate, logger *zap.Logger) *TermService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TermService{repo: repo, validator: validate, logger: logger}
}

// List returns terms ordered by recency.
func (s *TermService) List(ctx context.Context) ([]models.Term, error) {
	terms, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list terms")
	}
	return terms, nil
}

// Get returns one term by id.
func (s *TermService) Get(ctx context.Context, id int64) (*models.Term, error) {
	term, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "term not found", "failed to load term")
	}
	return term, nil
}

// Create inserts a term. The end date must not precede the start date.
func (s *TermService) Create(ctx context.Context, req CreateTermRequest) (*models.Term, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid term payload")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end date precedes start date")
	}
	term := &models.Term{TermLabel: req.TermLabel, StartDate: req.StartDate, EndDate: req.EndDate}
	if err := s.repo.Create(ctx, term); err != nil {
		return nil, storeError(err, "term not found", appErrors.ErrConflict, "term label already exists", "failed to create term")
	}
	return term, nil
}

// Update replaces a term's fields.
func (s *TermService) Update(ctx context.Context, id int64, req UpdateTermRequest) (*models.Term, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid term payload")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end date precedes start date")
	}
	term := &models.Term{TermID: id, TermLabel: req.TermLabel, StartDate: req.StartDate, EndDate: req.EndDate}
	if err := s.repo.Update(ctx, term); err != nil {
		return nil, storeError(err, "term not found", appErrors.ErrConflict, "term label already exists", "failed to update term")
	}
	return term, nil
}

// Delete removes a term. Terms referenced by offerings are rejected
// with a conflict.
func (s *TermService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "term not found", appErrors.ErrConflict, "term is referenced by class offerings", "failed to delete term")
	}
	return nil
}
