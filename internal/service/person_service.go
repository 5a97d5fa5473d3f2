package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type personRepo interface {
	List(ctx context.Context, filter models.PersonFilter) ([]models.Person, error)
	FindByID(ctx context.Context, id int64) (*models.Person, error)
	Create(ctx context.Context, person *models.Person) error
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, id int64) error
}

// CreatePersonRequest is the payload for creating a bare person row.
type CreatePersonRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// UpdatePersonRequest is the payload for updating a person.
type UpdatePersonRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// PersonService manages the shared identity directory.
type PersonService struct {
	repo      personRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPersonService constructs a PersonService.
func NewPersonService(repo personRepo, validate *validator.Validate, logger *zap.Logger) *PersonService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersonService{repo: repo, validator: validate, logger: logger}
}

// List returns people, optionally filtered by a name/email search.
func (s *PersonService) List(ctx context.Context, filter models.PersonFilter) ([]models.Person, error) {
	people, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list people")
	}
	return people, nil
}

// Get returns one person by id.
func (s *PersonService) Get(ctx context.Context, id int64) (*models.Person, error) {
	person, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "person not found", "failed to load person")
	}
	return person, nil
}

// Create inserts a new person.
func (s *PersonService) Create(ctx context.Context, req CreatePersonRequest) (*models.Person, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid person payload")
	}
	person := &models.Person{FullName: req.FullName, Email: req.Email}
	if err := s.repo.Create(ctx, person); err != nil {
		return nil, storeError(err, "person not found", appErrors.ErrConflict, "email already registered", "failed to create person")
	}
	return person, nil
}

// Update replaces the person's mutable fields.
func (s *PersonService) Update(ctx context.Context, id int64, req UpdatePersonRequest) (*models.Person, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid person payload")
	}
	person := &models.Person{PersonID: id, FullName: req.FullName, Email: req.Email}
	if err := s.repo.Update(ctx, person); err != nil {
		return nil, storeError(err, "person not found", appErrors.ErrConflict, "email already registered", "failed to update person")
	}
	return person, nil
}

// Delete removes a person. Rows still referenced by a student or
// instructor identity are rejected with a conflict.
func (s *PersonService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "person not found", appErrors.ErrConflict, "person is referenced by other records", "failed to delete person")
	}
	return nil
}
