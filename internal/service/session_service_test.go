package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type mockSessionRepo struct {
	sessions     map[int64]*models.ClassSessionDetail
	nextID       int64
	placeholders int
	studentRows  []models.StudentSessionRow

	createErr error
	deleteErr error
}

func (m *mockSessionRepo) CreateWithPlaceholders(_ context.Context, session *models.ClassSession) (int, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	session.SessionID = m.nextID
	if m.sessions == nil {
		m.sessions = make(map[int64]*models.ClassSessionDetail)
	}
	m.sessions[session.SessionID] = &models.ClassSessionDetail{ClassSession: *session}
	return m.placeholders, nil
}

func (m *mockSessionRepo) List(_ context.Context, _ models.ClassSessionFilter) ([]models.ClassSessionDetail, error) {
	return nil, nil
}

func (m *mockSessionRepo) FindByID(_ context.Context, id int64) (*models.ClassSessionDetail, error) {
	detail, ok := m.sessions[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return detail, nil
}

func (m *mockSessionRepo) Update(_ context.Context, session *models.ClassSession) error {
	detail, ok := m.sessions[session.SessionID]
	if !ok {
		return sql.ErrNoRows
	}
	detail.ClassSession = *session
	return nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.sessions[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionRepo) ListForStudent(_ context.Context, _ string, _ int64) ([]models.StudentSessionRow, error) {
	return m.studentRows, nil
}

type mockSessionEnrolments struct {
	enrolments map[string]*models.Enrolment
}

func (m *mockSessionEnrolments) FindByStudentAndOffering(_ context.Context, studentID string, _ int64) (*models.Enrolment, error) {
	enrolment, ok := m.enrolments[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return enrolment, nil
}

func newTestSessionService(repo *mockSessionRepo, enrolments *mockSessionEnrolments) *SessionService {
	return NewSessionService(repo, enrolments, validator.New(), zap.NewNop())
}

func TestSessionCreateFansOutPlaceholders(t *testing.T) {
	repo := &mockSessionRepo{placeholders: 24}
	svc := newTestSessionService(repo, &mockSessionEnrolments{})

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	result, err := svc.Create(context.Background(), CreateSessionRequest{
		ClassOfferingID:  1,
		SessionNo:        3,
		SessionStartDate: start,
		SessionEndDate:   start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 24, result.PlaceholdersCreated)
	assert.Equal(t, 3, result.Session.SessionNo)
	assert.NotZero(t, result.Session.SessionID)
}

func TestSessionCreateEndBeforeStart(t *testing.T) {
	svc := newTestSessionService(&mockSessionRepo{}, &mockSessionEnrolments{})

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), CreateSessionRequest{
		ClassOfferingID:  1,
		SessionNo:        1,
		SessionStartDate: start,
		SessionEndDate:   start.Add(-time.Hour),
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "session end precedes session start", appErr.Message)
}

func TestSessionCreateMissingOffering(t *testing.T) {
	svc := newTestSessionService(&mockSessionRepo{}, &mockSessionEnrolments{})

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), CreateSessionRequest{
		SessionNo:        1,
		SessionStartDate: start,
		SessionEndDate:   start.Add(time.Hour),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSessionUpdateUnknownSession(t *testing.T) {
	svc := newTestSessionService(&mockSessionRepo{}, &mockSessionEnrolments{})

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), 404, UpdateSessionRequest{
		ClassOfferingID:  1,
		SessionNo:        1,
		SessionStartDate: start,
		SessionEndDate:   start.Add(time.Hour),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSessionUpdateKeepsOfferingID(t *testing.T) {
	repo := &mockSessionRepo{placeholders: 5}
	svc := newTestSessionService(repo, &mockSessionEnrolments{})

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), CreateSessionRequest{
		ClassOfferingID:  2,
		SessionNo:        1,
		SessionStartDate: start,
		SessionEndDate:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.Session.SessionID, UpdateSessionRequest{
		ClassOfferingID:  2,
		SessionNo:        4,
		SessionStartDate: start.Add(24 * time.Hour),
		SessionEndDate:   start.Add(26 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.ClassOfferingID)
	assert.Equal(t, 4, updated.SessionNo)
}

func TestSessionUpdateMissingOffering(t *testing.T) {
	svc := newTestSessionService(&mockSessionRepo{}, &mockSessionEnrolments{})

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), 1, UpdateSessionRequest{
		SessionNo:        1,
		SessionStartDate: start,
		SessionEndDate:   start.Add(time.Hour),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSessionListForStudent(t *testing.T) {
	repo := &mockSessionRepo{studentRows: []models.StudentSessionRow{
		{SessionID: 1, SessionNo: 1},
		{SessionID: 2, SessionNo: 2},
	}}
	enrolments := &mockSessionEnrolments{enrolments: map[string]*models.Enrolment{
		"A2300123X": {EnrolmentID: 7, ClassOfferingID: 1, StudentID: "A2300123X"},
	}}
	svc := newTestSessionService(repo, enrolments)

	rows, err := svc.ListForStudent(context.Background(), "A2300123X", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSessionListForStudentNotEnrolled(t *testing.T) {
	svc := newTestSessionService(&mockSessionRepo{}, &mockSessionEnrolments{})

	_, err := svc.ListForStudent(context.Background(), "A2399999Z", 1)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "student is not enrolled in this class offering", appErr.Message)
}
