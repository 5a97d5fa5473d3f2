package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type mockAttendanceRepo struct {
	// records keyed by (enrolment_id, session_id)
	records map[[2]int64]*models.Attendance
	nextID  int64

	verifyErr  error
	roster     []models.AttendanceRosterRow
	rosterErr  error
	verifyCnt  int
	lastStatus models.AttendanceStatus
}

func (m *mockAttendanceRepo) record(enrolmentID, sessionID int64) *models.Attendance {
	return m.records[[2]int64{enrolmentID, sessionID}]
}

func (m *mockAttendanceRepo) put(enrolmentID, sessionID int64, status models.AttendanceStatus) *models.Attendance {
	if m.records == nil {
		m.records = make(map[[2]int64]*models.Attendance)
	}
	m.nextID++
	rec := &models.Attendance{AttendanceID: m.nextID, EnrolmentID: enrolmentID, SessionID: sessionID, AttendanceStatus: status}
	m.records[[2]int64{enrolmentID, sessionID}] = rec
	return rec
}

func (m *mockAttendanceRepo) List(_ context.Context, _ models.AttendanceFilter) ([]models.AttendanceDetail, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) ListByOffering(_ context.Context, _ int64) ([]models.AttendanceDetail, error) {
	return nil, nil
}

func (m *mockAttendanceRepo) FindByID(_ context.Context, id int64) (*models.Attendance, error) {
	for _, rec := range m.records {
		if rec.AttendanceID == id {
			return rec, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, enrolmentID, sessionID int64, status models.AttendanceStatus) (*models.Attendance, error) {
	m.lastStatus = status
	if rec := m.record(enrolmentID, sessionID); rec != nil {
		rec.AttendanceStatus = status
		return rec, nil
	}
	return m.put(enrolmentID, sessionID, status), nil
}

func (m *mockAttendanceRepo) MarkPendingForEnrolment(_ context.Context, enrolmentID, sessionID int64) (*models.Attendance, error) {
	rec := m.record(enrolmentID, sessionID)
	if rec == nil {
		return m.put(enrolmentID, sessionID, models.AttendancePending), nil
	}
	if rec.AttendanceStatus == models.AttendanceNotAttended {
		rec.AttendanceStatus = models.AttendancePending
	}
	return rec, nil
}

func (m *mockAttendanceRepo) SetPending(_ context.Context, attendanceID int64) error {
	for _, rec := range m.records {
		if rec.AttendanceID == attendanceID {
			rec.AttendanceStatus = models.AttendancePending
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *mockAttendanceRepo) SetStatus(_ context.Context, attendanceID int64, status models.AttendanceStatus) error {
	for _, rec := range m.records {
		if rec.AttendanceID == attendanceID {
			rec.AttendanceStatus = status
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *mockAttendanceRepo) VerifyAllPending(_ context.Context, sessionID int64) (int, error) {
	if m.verifyErr != nil {
		return 0, m.verifyErr
	}
	count := 0
	for _, rec := range m.records {
		if rec.SessionID == sessionID && rec.AttendanceStatus == models.AttendancePending {
			rec.AttendanceStatus = models.AttendanceVerified
			count++
		}
	}
	m.verifyCnt = count
	return count, nil
}

func (m *mockAttendanceRepo) SessionRoster(_ context.Context, _ int64) ([]models.AttendanceRosterRow, error) {
	if m.rosterErr != nil {
		return nil, m.rosterErr
	}
	return m.roster, nil
}

func (m *mockAttendanceRepo) Delete(_ context.Context, id int64) error {
	for key, rec := range m.records {
		if rec.AttendanceID == id {
			delete(m.records, key)
			return nil
		}
	}
	return sql.ErrNoRows
}

type mockSessionReader struct {
	sessions map[int64]*models.ClassSessionDetail
}

func (m *mockSessionReader) FindByID(_ context.Context, id int64) (*models.ClassSessionDetail, error) {
	detail, ok := m.sessions[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return detail, nil
}

type mockEnrolmentReader struct {
	// enrolments keyed by student id
	enrolments map[string]*models.Enrolment
	belongs    map[int64]bool
}

func (m *mockEnrolmentReader) FindByStudentAndSession(_ context.Context, studentID string, _ int64) (*models.Enrolment, error) {
	enrolment, ok := m.enrolments[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return enrolment, nil
}

func (m *mockEnrolmentReader) BelongsToSessionOffering(_ context.Context, enrolmentID, _ int64) (bool, error) {
	return m.belongs[enrolmentID], nil
}

type mockTeachingGuard struct {
	teaches map[string]bool
}

func (m *mockTeachingGuard) TeachesSession(_ context.Context, instructorID string, _ int64) (bool, error) {
	return m.teaches[instructorID], nil
}

func sessionDetail(id, offeringID int64) *models.ClassSessionDetail {
	return &models.ClassSessionDetail{
		ClassSession: models.ClassSession{SessionID: id, ClassOfferingID: offeringID, SessionNo: 1},
		CourseCode:   "CS101",
		CourseName:   "Intro to Computing",
		ClassGroup:   "G1",
		ClassType:    "Lecture",
		TermLabel:    "2026 Term 1",
	}
}

func newTestAttendanceService(repo *mockAttendanceRepo, sessions *mockSessionReader, enrolments *mockEnrolmentReader, teaching *mockTeachingGuard) *AttendanceService {
	return NewAttendanceService(repo, sessions, enrolments, teaching, validator.New(), zap.NewNop())
}

func TestAttendanceMarkPendingCheckIn(t *testing.T) {
	repo := &mockAttendanceRepo{}
	enrolments := &mockEnrolmentReader{enrolments: map[string]*models.Enrolment{
		"A2300123X": {EnrolmentID: 7, ClassOfferingID: 1, StudentID: "A2300123X", EnrolmentStatus: models.EnrolmentStatusActive},
	}}
	svc := newTestAttendanceService(repo, &mockSessionReader{}, enrolments, &mockTeachingGuard{})

	record, err := svc.MarkPending(context.Background(), "A2300123X", 10)
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePending, record.AttendanceStatus)
	assert.Equal(t, int64(7), record.EnrolmentID)
}

func TestAttendanceMarkPendingIdempotent(t *testing.T) {
	repo := &mockAttendanceRepo{}
	repo.put(7, 10, models.AttendanceVerified)
	enrolments := &mockEnrolmentReader{enrolments: map[string]*models.Enrolment{
		"A2300123X": {EnrolmentID: 7, StudentID: "A2300123X"},
	}}
	svc := newTestAttendanceService(repo, &mockSessionReader{}, enrolments, &mockTeachingGuard{})

	// checking in again never moves a record backwards
	record, err := svc.MarkPending(context.Background(), "A2300123X", 10)
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceVerified, record.AttendanceStatus)

	again, err := svc.MarkPending(context.Background(), "A2300123X", 10)
	require.NoError(t, err)
	assert.Equal(t, record.AttendanceID, again.AttendanceID)
}

func TestAttendanceMarkPendingNotEnrolled(t *testing.T) {
	svc := newTestAttendanceService(&mockAttendanceRepo{}, &mockSessionReader{}, &mockEnrolmentReader{}, &mockTeachingGuard{})

	_, err := svc.MarkPending(context.Background(), "A2399999Z", 10)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "student is not enrolled in this session's class offering", appErr.Message)
}

func TestAttendanceSetStatusByInstructor(t *testing.T) {
	repo := &mockAttendanceRepo{}
	sessions := &mockSessionReader{sessions: map[int64]*models.ClassSessionDetail{10: sessionDetail(10, 1)}}
	enrolments := &mockEnrolmentReader{belongs: map[int64]bool{7: true}}
	teaching := &mockTeachingGuard{teaches: map[string]bool{"I100": true}}
	svc := newTestAttendanceService(repo, sessions, enrolments, teaching)

	record, err := svc.SetStatus(context.Background(), "I100", SetAttendanceRequest{
		EnrolmentID: 7, SessionID: 10, Status: models.AttendanceVerified,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceVerified, record.AttendanceStatus)
	assert.Equal(t, models.AttendanceVerified, repo.lastStatus)
}

func TestAttendanceSetStatusNotTeaching(t *testing.T) {
	sessions := &mockSessionReader{sessions: map[int64]*models.ClassSessionDetail{10: sessionDetail(10, 1)}}
	enrolments := &mockEnrolmentReader{belongs: map[int64]bool{7: true}}
	svc := newTestAttendanceService(&mockAttendanceRepo{}, sessions, enrolments, &mockTeachingGuard{})

	_, err := svc.SetStatus(context.Background(), "I999", SetAttendanceRequest{
		EnrolmentID: 7, SessionID: 10, Status: models.AttendanceVerified,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErr.Code)
	assert.Equal(t, "instructor does not teach this session", appErr.Message)
}

func TestAttendanceSetStatusEnrolmentOutsideOffering(t *testing.T) {
	sessions := &mockSessionReader{sessions: map[int64]*models.ClassSessionDetail{10: sessionDetail(10, 1)}}
	teaching := &mockTeachingGuard{teaches: map[string]bool{"I100": true}}
	svc := newTestAttendanceService(&mockAttendanceRepo{}, sessions, &mockEnrolmentReader{}, teaching)

	_, err := svc.SetStatus(context.Background(), "I100", SetAttendanceRequest{
		EnrolmentID: 99, SessionID: 10, Status: models.AttendanceVerified,
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "enrolment does not belong to this session's class offering", appErr.Message)
}

func TestAttendanceSetStatusInvalidStatus(t *testing.T) {
	svc := newTestAttendanceService(&mockAttendanceRepo{}, &mockSessionReader{}, &mockEnrolmentReader{}, &mockTeachingGuard{})

	_, err := svc.SetStatus(context.Background(), "I100", SetAttendanceRequest{
		EnrolmentID: 7, SessionID: 10, Status: "Absent",
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "unsupported attendance status", appErr.Message)
}

func TestAttendanceSetStatusUnknownSession(t *testing.T) {
	svc := newTestAttendanceService(&mockAttendanceRepo{}, &mockSessionReader{}, &mockEnrolmentReader{}, &mockTeachingGuard{})

	_, err := svc.SetStatus(context.Background(), "", SetAttendanceRequest{
		EnrolmentID: 7, SessionID: 404, Status: models.AttendancePending,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAttendanceVerifyAll(t *testing.T) {
	repo := &mockAttendanceRepo{}
	repo.put(1, 10, models.AttendancePending)
	repo.put(2, 10, models.AttendancePending)
	repo.put(3, 10, models.AttendanceNotAttended)
	repo.put(4, 11, models.AttendancePending)
	sessions := &mockSessionReader{sessions: map[int64]*models.ClassSessionDetail{10: sessionDetail(10, 1)}}
	teaching := &mockTeachingGuard{teaches: map[string]bool{"I100": true}}
	svc := newTestAttendanceService(repo, sessions, &mockEnrolmentReader{}, teaching)

	result, err := svc.VerifyAll(context.Background(), "I100", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.SessionID)
	assert.Equal(t, 2, result.VerifiedCount)
	assert.Equal(t, models.AttendanceNotAttended, repo.record(3, 10).AttendanceStatus)
	assert.Equal(t, models.AttendancePending, repo.record(4, 11).AttendanceStatus)

	// nothing left pending, second run verifies zero rows
	again, err := svc.VerifyAll(context.Background(), "I100", 10)
	require.NoError(t, err)
	assert.Equal(t, 0, again.VerifiedCount)
}

func TestAttendanceVerifyAllNotTeaching(t *testing.T) {
	sessions := &mockSessionReader{sessions: map[int64]*models.ClassSessionDetail{10: sessionDetail(10, 1)}}
	svc := newTestAttendanceService(&mockAttendanceRepo{}, sessions, &mockEnrolmentReader{}, &mockTeachingGuard{})

	_, err := svc.VerifyAll(context.Background(), "I999", 10)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestAttendanceInstructorRosterHidden(t *testing.T) {
	sessions := &mockSessionReader{sessions: map[int64]*models.ClassSessionDetail{10: sessionDetail(10, 1)}}
	svc := newTestAttendanceService(&mockAttendanceRepo{}, sessions, &mockEnrolmentReader{}, &mockTeachingGuard{})

	_, err := svc.InstructorRoster(context.Background(), "I999", 10)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "no session roster for this instructor", appErr.Message)
}

func TestAttendanceInstructorRoster(t *testing.T) {
	repo := &mockAttendanceRepo{roster: []models.AttendanceRosterRow{
		{EnrolmentID: 1, StudentID: "A2300123X", StudentName: "Ada Tan", AttendanceStatus: models.AttendancePending},
		{EnrolmentID: 2, StudentID: "A2300456Y", StudentName: "Ben Lim", AttendanceStatus: models.AttendanceNotAttended},
	}}
	sessions := &mockSessionReader{sessions: map[int64]*models.ClassSessionDetail{10: sessionDetail(10, 1)}}
	teaching := &mockTeachingGuard{teaches: map[string]bool{"I100": true}}
	svc := newTestAttendanceService(repo, sessions, &mockEnrolmentReader{}, teaching)

	roster, err := svc.InstructorRoster(context.Background(), "I100", 10)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, models.AttendanceNotAttended, roster[1].AttendanceStatus)
}

func TestAttendanceUpdateStatusByID(t *testing.T) {
	repo := &mockAttendanceRepo{}
	rec := repo.put(7, 10, models.AttendancePending)
	svc := newTestAttendanceService(repo, &mockSessionReader{}, &mockEnrolmentReader{}, &mockTeachingGuard{})

	updated, err := svc.UpdateStatus(context.Background(), rec.AttendanceID, models.AttendanceVerified)
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceVerified, updated.AttendanceStatus)

	_, err = svc.UpdateStatus(context.Background(), 404, models.AttendanceVerified)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
