package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type attendanceRepo interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceDetail, error)
	ListByOffering(ctx context.Context, offeringID int64) ([]models.AttendanceDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Attendance, error)
	Upsert(ctx context.Context, enrolmentID, sessionID int64, status models.AttendanceStatus) (*models.Attendance, error)
	MarkPendingForEnrolment(ctx context.Context, enrolmentID, sessionID int64) (*models.Attendance, error)
	SetPending(ctx context.Context, attendanceID int64) error
	SetStatus(ctx context.Context, attendanceID int64, status models.AttendanceStatus) error
	VerifyAllPending(ctx context.Context, sessionID int64) (int, error)
	SessionRoster(ctx context.Context, sessionID int64) ([]models.AttendanceRosterRow, error)
	Delete(ctx context.Context, id int64) error
}

type attendanceSessionReader interface {
	FindByID(ctx context.Context, id int64) (*models.ClassSessionDetail, error)
}

type attendanceEnrolmentReader interface {
	FindByStudentAndSession(ctx context.Context, studentID string, sessionID int64) (*models.Enrolment, error)
	BelongsToSessionOffering(ctx context.Context, enrolmentID, sessionID int64) (bool, error)
}

type teachingGuard interface {
	TeachesSession(ctx context.Context, instructorID string, sessionID int64) (bool, error)
}

// SetAttendanceRequest records an instructor's decision for one student
// in one session.
type SetAttendanceRequest struct {
	EnrolmentID int64                   `json:"enrolment_id" validate:"required"`
	SessionID   int64                   `json:"session_id" validate:"required"`
	Status      models.AttendanceStatus `json:"attendance_status" validate:"required"`
}

// VerifyAllResult reports how many pending records a bulk verify touched.
type VerifyAllResult struct {
	SessionID     int64 `json:"session_id"`
	VerifiedCount int   `json:"verified_count"`
}

// AttendanceService drives attendance through its state lattice:
// Not attended, then Pending once the student checks in, then Verified
// once an instructor confirms. No transition ever moves backwards
// through the lattice on the student path.
type AttendanceService struct {
	repo       attendanceRepo
	sessions   attendanceSessionReader
	enrolments attendanceEnrolmentReader
	teaching   teachingGuard
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(repo attendanceRepo, sessions attendanceSessionReader, enrolments attendanceEnrolmentReader, teaching teachingGuard, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		repo:       repo,
		sessions:   sessions,
		enrolments: enrolments,
		teaching:   teaching,
		validator:  validate,
		logger:     logger,
	}
}

// List returns attendance records with session and student context.
func (s *AttendanceService) List(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceDetail, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return records, nil
}

// ListByOffering returns every attendance record of one class offering.
func (s *AttendanceService) ListByOffering(ctx context.Context, offeringID int64) ([]models.AttendanceDetail, error) {
	records, err := s.repo.ListByOffering(ctx, offeringID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	return records, nil
}

// SessionRoster returns one row per enrolled student for a session;
// students without an attendance row surface as "Not attended".
func (s *AttendanceService) SessionRoster(ctx context.Context, sessionID int64) ([]models.AttendanceRosterRow, error) {
	if _, err := s.sessions.FindByID(ctx, sessionID); err != nil {
		return nil, readError(err, "session not found", "failed to load session")
	}
	roster, err := s.repo.SessionRoster(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session roster")
	}
	return roster, nil
}

// MarkPending is the student self-check-in. A "Not attended" record
// moves to "Pending"; a record already Pending or Verified is returned
// unchanged, so repeated check-ins are idempotent. Students not
// enrolled in the session's offering get a not found.
func (s *AttendanceService) MarkPending(ctx context.Context, studentID string, sessionID int64) (*models.Attendance, error) {
	enrolment, err := s.enrolments.FindByStudentAndSession(ctx, studentID, sessionID)
	if err != nil {
		return nil, readError(err, "student is not enrolled in this session's class offering", "failed to load enrolment")
	}
	record, err := s.repo.MarkPendingForEnrolment(ctx, enrolment.EnrolmentID, sessionID)
	if err != nil {
		return nil, storeError(err, "session not found", appErrors.ErrValidation, "unknown session", "failed to mark attendance pending")
	}
	s.logger.Info("attendance check-in",
		zap.String("student_id", studentID),
		zap.Int64("session_id", sessionID),
		zap.String("status", string(record.AttendanceStatus)))
	return record, nil
}

// MarkPendingByID moves one attendance record, addressed by id, to
// Pending. Used for administrative corrections.
func (s *AttendanceService) MarkPendingByID(ctx context.Context, attendanceID int64) (*models.Attendance, error) {
	if err := s.repo.SetPending(ctx, attendanceID); err != nil {
		return nil, storeError(err, "attendance record not found", nil, "", "failed to mark attendance pending")
	}
	record, err := s.repo.FindByID(ctx, attendanceID)
	if err != nil {
		return nil, readError(err, "attendance record not found", "failed to load attendance record")
	}
	return record, nil
}

// InstructorRoster returns the session roster for an instructor. The
// session is hidden, answering not found, unless the instructor holds
// a teaching assignment for its offering.
func (s *AttendanceService) InstructorRoster(ctx context.Context, instructorID string, sessionID int64) ([]models.AttendanceRosterRow, error) {
	if _, err := s.sessions.FindByID(ctx, sessionID); err != nil {
		return nil, readError(err, "session not found", "failed to load session")
	}
	teaches, err := s.teaching.TeachesSession(ctx, instructorID, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teaching assignment")
	}
	if !teaches {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no session roster for this instructor")
	}
	roster, err := s.repo.SessionRoster(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session roster")
	}
	return roster, nil
}

// SetStatus records an instructor's decision for one student in one
// session, upserting the attendance row to the requested status. The
// instructor must teach the session's offering, and the enrolment must
// belong to that same offering.
func (s *AttendanceService) SetStatus(ctx context.Context, instructorID string, req SetAttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	if !req.Status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported attendance status")
	}
	if _, err := s.sessions.FindByID(ctx, req.SessionID); err != nil {
		return nil, readError(err, "session not found", "failed to load session")
	}
	if instructorID != "" {
		teaches, err := s.teaching.TeachesSession(ctx, instructorID, req.SessionID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teaching assignment")
		}
		if !teaches {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "instructor does not teach this session")
		}
	}
	belongs, err := s.enrolments.BelongsToSessionOffering(ctx, req.EnrolmentID, req.SessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check enrolment")
	}
	if !belongs {
		return nil, appErrors.Clone(appErrors.ErrValidation, "enrolment does not belong to this session's class offering")
	}
	record, err := s.repo.Upsert(ctx, req.EnrolmentID, req.SessionID, req.Status)
	if err != nil {
		return nil, storeError(err, "attendance record not found", appErrors.ErrValidation, "unknown enrolment or session", "failed to set attendance status")
	}
	return record, nil
}

// UpdateStatus moves one attendance record, addressed by id, to the
// requested status. Used by administrative corrections.
func (s *AttendanceService) UpdateStatus(ctx context.Context, attendanceID int64, status models.AttendanceStatus) (*models.Attendance, error) {
	if !status.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported attendance status")
	}
	if err := s.repo.SetStatus(ctx, attendanceID, status); err != nil {
		return nil, storeError(err, "attendance record not found", nil, "", "failed to update attendance status")
	}
	record, err := s.repo.FindByID(ctx, attendanceID)
	if err != nil {
		return nil, readError(err, "attendance record not found", "failed to load attendance record")
	}
	return record, nil
}

// VerifyAll promotes every Pending record of a session to Verified in
// one statement and reports how many rows moved. Records still at
// "Not attended" are left alone, and a session with nothing pending
// verifies zero rows, so the operation is idempotent.
func (s *AttendanceService) VerifyAll(ctx context.Context, instructorID string, sessionID int64) (*VerifyAllResult, error) {
	if _, err := s.sessions.FindByID(ctx, sessionID); err != nil {
		return nil, readError(err, "session not found", "failed to load session")
	}
	if instructorID != "" {
		teaches, err := s.teaching.TeachesSession(ctx, instructorID, sessionID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check teaching assignment")
		}
		if !teaches {
			return nil, appErrors.Clone(appErrors.ErrForbidden, "instructor does not teach this session")
		}
	}
	verified, err := s.repo.VerifyAllPending(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to verify pending attendance")
	}
	s.logger.Info("attendance verified",
		zap.Int64("session_id", sessionID),
		zap.Int("count", verified))
	return &VerifyAllResult{SessionID: sessionID, VerifiedCount: verified}, nil
}

// Delete removes one attendance record.
func (s *AttendanceService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, "attendance record not found", nil, "", "failed to delete attendance record")
	}
	return nil
}
