package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type sessionRepo interface {
	CreateWithPlaceholders(ctx context.Context, session *models.ClassSession) (int, error)
	List(ctx context.Context, filter models.ClassSessionFilter) ([]models.ClassSessionDetail, error)
	FindByID(ctx context.Context, id int64) (*models.ClassSessionDetail, error)
	Update(ctx context.Context, session *models.ClassSession) error
	Delete(ctx context.Context, id int64) error
	ListForStudent(ctx context.Context, studentID string, offeringID int64) ([]models.StudentSessionRow, error)
}

type sessionEnrolmentReader interface {
	FindByStudentAndOffering(ctx context.Context, studentID string, offeringID int64) (*models.Enrolment, error)
}

// CreateSessionRequest schedules one meeting of a class offering.
type CreateSessionRequest struct {
	ClassOfferingID  int64     `json:"class_offering_id" validate:"required"`
	SessionNo        int       `json:"session_no" validate:"required,min=1"`
	SessionStartDate time.Time `json:"session_start_date" validate:"required"`
	SessionEndDate   time.Time `json:"session_end_date" validate:"required"`
	Title            *string   `json:"title"`
	Room             *string   `json:"room"`
}

// UpdateSessionRequest replaces the session's schedule fields.
type UpdateSessionRequest struct {
	ClassOfferingID  int64     `json:"class_offering_id" validate:"required"`
	SessionNo        int       `json:"session_no" validate:"required,min=1"`
	SessionStartDate time.Time `json:"session_start_date" validate:"required"`
	SessionEndDate   time.Time `json:"session_end_date" validate:"required"`
	Title            *string   `json:"title"`
	Room             *string   `json:"room"`
}

// ProvisionedSession reports a created session together with the number
// of attendance placeholders fanned out to active enrolments.
type ProvisionedSession struct {
	Session             models.ClassSession `json:"session"`
	PlaceholdersCreated int                 `json:"placeholders_created"`
}

// SessionService manages class sessions and the attendance fan-out that
// accompanies session creation.
type SessionService struct {
	repo       sessionRepo
	enrolments sessionEnrolmentReader
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewSessionService constructs a SessionService.
func NewSessionService(repo sessionRepo, enrolments sessionEnrolmentReader, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{repo: repo, enrolments: enrolments, validator: validate, logger: logger}
}

// List returns sessions with offering, course and term context.
func (s *SessionService) List(ctx context.Context, filter models.ClassSessionFilter) ([]models.ClassSessionDetail, error) {
	sessions, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}
	return sessions, nil
}

// Get returns one session with its joined context.
func (s *SessionService) Get(ctx context.Context, id int64) (*models.ClassSessionDetail, error) {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "session not found", "failed to load session")
	}
	return session, nil
}

// Create schedules a session and, in the same transaction, inserts a
// "Not attended" attendance placeholder for every active enrolment of
// the offering. Either the session and all placeholders commit, or
// nothing does.
func (s *SessionService) Create(ctx context.Context, req CreateSessionRequest) (*ProvisionedSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session payload")
	}
	if req.SessionEndDate.Before(req.SessionStartDate) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "session end precedes session start")
	}
	session := &models.ClassSession{
		ClassOfferingID:  req.ClassOfferingID,
		SessionNo:        req.SessionNo,
		SessionStartDate: req.SessionStartDate,
		SessionEndDate:   req.SessionEndDate,
		Title:            req.Title,
		Room:             req.Room,
	}
	provisioned, err := s.repo.CreateWithPlaceholders(ctx, session)
	if err != nil {
		return nil, storeError(err, "session not found", appErrors.ErrValidation, "unknown class offering", "failed to create session")
	}
	s.logger.Info("session provisioned",
		zap.Int64("session_id", session.SessionID),
		zap.Int64("class_offering_id", session.ClassOfferingID),
		zap.Int("placeholders", provisioned))
	return &ProvisionedSession{Session: *session, PlaceholdersCreated: provisioned}, nil
}

// Update replaces a session's schedule fields. Attendance placeholders
// already provisioned are untouched.
func (s *SessionService) Update(ctx context.Context, id int64, req UpdateSessionRequest) (*models.ClassSessionDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session payload")
	}
	if req.SessionEndDate.Before(req.SessionStartDate) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "session end precedes session start")
	}
	session := &models.ClassSession{
		SessionID:        id,
		ClassOfferingID:  req.ClassOfferingID,
		SessionNo:        req.SessionNo,
		SessionStartDate: req.SessionStartDate,
		SessionEndDate:   req.SessionEndDate,
		Title:            req.Title,
		Room:             req.Room,
	}
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, storeError(err, "session not found", appErrors.ErrValidation, "unknown class offering", "failed to update session")
	}
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "session not found", "failed to load session")
	}
	return detail, nil
}

// Delete removes a session. Sessions still carrying attendance rows are
// rejected with a conflict.
func (s *SessionService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "session not found", appErrors.ErrConflict, "session is referenced by attendance records", "failed to delete session")
	}
	return nil
}

// ListForStudent returns the offering's sessions from one student's
// perspective, each row carrying that student's attendance state.
// Students not enrolled in the offering get a not found.
func (s *SessionService) ListForStudent(ctx context.Context, studentID string, offeringID int64) ([]models.StudentSessionRow, error) {
	if _, err := s.enrolments.FindByStudentAndOffering(ctx, studentID, offeringID); err != nil {
		return nil, readError(err, "student is not enrolled in this class offering", "failed to load enrolment")
	}
	rows, err := s.repo.ListForStudent(ctx, studentID, offeringID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list student sessions")
	}
	return rows, nil
}
