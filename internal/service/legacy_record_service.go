package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type legacyRecordRepo interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.GradesAttendanceRecord, error)
	ListByOffering(ctx context.Context, offeringID int64) ([]models.GradesAttendanceRecord, error)
}

// LegacyRecordService serves the deprecated denormalized
// grades-and-attendance row shape, projected read-only from the
// canonical tables. The whole surface sits behind a feature flag and
// answers not found when disabled.
type LegacyRecordService struct {
	repo    legacyRecordRepo
	enabled bool
	logger  *zap.Logger
}

// NewLegacyRecordService constructs a LegacyRecordService.
func NewLegacyRecordService(repo legacyRecordRepo, enabled bool, logger *zap.Logger) *LegacyRecordService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LegacyRecordService{repo: repo, enabled: enabled, logger: logger}
}

// Enabled reports whether the legacy surface is switched on.
func (s *LegacyRecordService) Enabled() bool {
	return s != nil && s.enabled
}

// List returns denormalized records, optionally narrowed by enrolment
// or session.
func (s *LegacyRecordService) List(ctx context.Context, filter models.AttendanceFilter) ([]models.GradesAttendanceRecord, error) {
	if !s.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grades and attendance view is not available")
	}
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list grades and attendance records")
	}
	return records, nil
}

// ListByOffering returns the denormalized records of one class offering.
func (s *LegacyRecordService) ListByOffering(ctx context.Context, offeringID int64) ([]models.GradesAttendanceRecord, error) {
	if !s.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "grades and attendance view is not available")
	}
	records, err := s.repo.ListByOffering(ctx, offeringID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list grades and attendance records")
	}
	return records, nil
}
