package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type enrolmentRepo interface {
	List(ctx context.Context, filter models.EnrolmentFilter) ([]models.EnrolmentDetail, error)
	FindByID(ctx context.Context, id int64) (*models.EnrolmentDetail, error)
	Create(ctx context.Context, enrolment *models.Enrolment) error
	UpdateStatus(ctx context.Context, id int64, status models.EnrolmentStatus) error
	Delete(ctx context.Context, id int64) error
}

// CreateEnrolmentRequest enrols a student into a class offering.
type CreateEnrolmentRequest struct {
	ClassOfferingID int64                  `json:"class_offering_id" validate:"required"`
	StudentID       string                 `json:"student_id" validate:"required"`
	EnrolmentStatus models.EnrolmentStatus `json:"enrolment_status"`
}

// UpdateEnrolmentStatusRequest moves an enrolment between Active and Inactive.
type UpdateEnrolmentStatusRequest struct {
	EnrolmentStatus models.EnrolmentStatus `json:"enrolment_status" validate:"required"`
}

// EnrolmentService manages student enrolments.
type EnrolmentService struct {
	repo      enrolmentRepo
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrolmentService constructs an EnrolmentService.
func NewEnrolmentService(repo enrolmentRepo, validate *validator.Validate, logger *zap.Logger) *EnrolmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrolmentService{repo: repo, validator: validate, logger: logger}
}

// List returns enrolments with student, offering and term context.
func (s *EnrolmentService) List(ctx context.Context, filter models.EnrolmentFilter) ([]models.EnrolmentDetail, error) {
	enrolments, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list enrolments")
	}
	return enrolments, nil
}

// Get returns one enrolment with its joined context.
func (s *EnrolmentService) Get(ctx context.Context, id int64) (*models.EnrolmentDetail, error) {
	enrolment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "enrolment not found", "failed to load enrolment")
	}
	return enrolment, nil
}

// Create enrols a student. The (offering, student) pair is unique;
// re-enrolling conflicts, and unknown students or offerings are
// validation failures.
func (s *EnrolmentService) Create(ctx context.Context, req CreateEnrolmentRequest) (*models.Enrolment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrolment payload")
	}
	status := req.EnrolmentStatus
	if status == "" {
		status = models.EnrolmentStatusActive
	}
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported enrolment status")
	}
	enrolment := &models.Enrolment{
		ClassOfferingID: req.ClassOfferingID,
		StudentID:       req.StudentID,
		EnrolmentStatus: status,
	}
	if err := s.repo.Create(ctx, enrolment); err != nil {
		return nil, storeError(err, "enrolment not found", appErrors.ErrValidation, "unknown student or class offering", "failed to create enrolment")
	}
	s.logger.Info("enrolment created",
		zap.Int64("enrolment_id", enrolment.EnrolmentID),
		zap.String("student_id", enrolment.StudentID),
		zap.Int64("class_offering_id", enrolment.ClassOfferingID))
	return enrolment, nil
}

// UpdateStatus moves an enrolment between Active and Inactive. Existing
// attendance and grade rows are untouched; inactive enrolments simply
// stop receiving placeholders for new sessions.
func (s *EnrolmentService) UpdateStatus(ctx context.Context, id int64, req UpdateEnrolmentStatusRequest) (*models.EnrolmentDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrolment payload")
	}
	if !req.EnrolmentStatus.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported enrolment status")
	}
	if err := s.repo.UpdateStatus(ctx, id, req.EnrolmentStatus); err != nil {
		return nil, storeError(err, "enrolment not found", nil, "", "failed to update enrolment")
	}
	enrolment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "enrolment not found", "failed to load enrolment")
	}
	return enrolment, nil
}

// Delete removes an enrolment. Enrolments still carrying attendance or
// grade rows are rejected with a conflict.
func (s *EnrolmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "enrolment not found", appErrors.ErrConflict, "enrolment is referenced by attendance or grades", "failed to delete enrolment")
	}
	return nil
}
