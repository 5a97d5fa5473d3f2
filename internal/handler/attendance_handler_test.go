package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/lms-portal-api/internal/middleware"
	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	"github.com/campushub/lms-portal-api/pkg/response"
)

type fakeAttendanceStore struct {
	record    *models.Attendance
	verified  int
	lastSet   models.AttendanceStatus
	markedFor int64
}

func (f *fakeAttendanceStore) List(context.Context, models.AttendanceFilter) ([]models.AttendanceDetail, error) {
	return nil, nil
}

func (f *fakeAttendanceStore) ListByOffering(context.Context, int64) ([]models.AttendanceDetail, error) {
	return nil, nil
}

func (f *fakeAttendanceStore) FindByID(context.Context, int64) (*models.Attendance, error) {
	if f.record == nil {
		return nil, sql.ErrNoRows
	}
	return f.record, nil
}

func (f *fakeAttendanceStore) Upsert(_ context.Context, enrolmentID, sessionID int64, status models.AttendanceStatus) (*models.Attendance, error) {
	f.lastSet = status
	f.record = &models.Attendance{AttendanceID: 1, EnrolmentID: enrolmentID, SessionID: sessionID, AttendanceStatus: status}
	return f.record, nil
}

func (f *fakeAttendanceStore) MarkPendingForEnrolment(_ context.Context, enrolmentID, sessionID int64) (*models.Attendance, error) {
	f.markedFor = enrolmentID
	f.record = &models.Attendance{AttendanceID: 1, EnrolmentID: enrolmentID, SessionID: sessionID, AttendanceStatus: models.AttendancePending}
	return f.record, nil
}

func (f *fakeAttendanceStore) SetPending(context.Context, int64) error { return nil }

func (f *fakeAttendanceStore) SetStatus(context.Context, int64, models.AttendanceStatus) error {
	return nil
}

func (f *fakeAttendanceStore) VerifyAllPending(context.Context, int64) (int, error) {
	return f.verified, nil
}

func (f *fakeAttendanceStore) SessionRoster(context.Context, int64) ([]models.AttendanceRosterRow, error) {
	return nil, nil
}

func (f *fakeAttendanceStore) Delete(context.Context, int64) error { return nil }

type fakeSessionStore struct {
	known map[int64]bool
}

func (f *fakeSessionStore) FindByID(_ context.Context, id int64) (*models.ClassSessionDetail, error) {
	if !f.known[id] {
		return nil, sql.ErrNoRows
	}
	return &models.ClassSessionDetail{ClassSession: models.ClassSession{SessionID: id, ClassOfferingID: 1}}, nil
}

type fakeEnrolmentStore struct {
	enrolled map[string]int64
	belongs  bool
}

func (f *fakeEnrolmentStore) FindByStudentAndSession(_ context.Context, studentID string, _ int64) (*models.Enrolment, error) {
	id, ok := f.enrolled[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &models.Enrolment{EnrolmentID: id, StudentID: studentID, ClassOfferingID: 1}, nil
}

func (f *fakeEnrolmentStore) BelongsToSessionOffering(context.Context, int64, int64) (bool, error) {
	return f.belongs, nil
}

type fakeTeachingStore struct {
	teaches bool
}

func (f *fakeTeachingStore) TeachesSession(context.Context, string, int64) (bool, error) {
	return f.teaches, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestAttendanceHandlerStudentMarkPending(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := &fakeAttendanceStore{}
	svc := service.NewAttendanceService(store,
		&fakeSessionStore{known: map[int64]bool{10: true}},
		&fakeEnrolmentStore{enrolled: map[string]int64{"A2300123X": 7}},
		&fakeTeachingStore{}, nil, nil)
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "student_id", Value: "A2300123X"}, {Key: "session_id", Value: "10"}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/attendance/student/A2300123X/session/10/pending", nil)

	handler.StudentMarkPending(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), store.markedFor)
	envelope := decodeEnvelope(t, rec)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "Pending", data["attendance_status"])
}

func TestAttendanceHandlerStudentMarkPendingNotEnrolled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewAttendanceService(&fakeAttendanceStore{},
		&fakeSessionStore{}, &fakeEnrolmentStore{}, &fakeTeachingStore{}, nil, nil)
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "student_id", Value: "A2399999Z"}, {Key: "session_id", Value: "10"}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/attendance/student/A2399999Z/session/10/pending", nil)

	handler.StudentMarkPending(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandlerVerifyAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewAttendanceService(&fakeAttendanceStore{verified: 5},
		&fakeSessionStore{known: map[int64]bool{10: true}},
		&fakeEnrolmentStore{}, &fakeTeachingStore{teaches: true}, nil, nil)
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "session_id", Value: "10"}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/attendance/verify-all/10", nil)
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u1", Role: models.RoleAdmin})

	handler.VerifyAll(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, float64(5), data["updated"])
}

func TestAttendanceHandlerUpsertGuardsInstructor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewAttendanceService(&fakeAttendanceStore{},
		&fakeSessionStore{known: map[int64]bool{10: true}},
		&fakeEnrolmentStore{belongs: true}, &fakeTeachingStore{teaches: false}, nil, nil)
	handler := NewAttendanceHandler(svc)

	body, _ := json.Marshal(map[string]interface{}{
		"enrolment_id":      7,
		"session_id":        10,
		"attendance_status": "Verified",
	})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u1", Role: models.RoleInstructor, InstructorID: "I999"})

	handler.Upsert(c)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAttendanceHandlerUpsertInvalidPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewAttendanceService(&fakeAttendanceStore{},
		&fakeSessionStore{}, &fakeEnrolmentStore{}, &fakeTeachingStore{}, nil, nil)
	handler := NewAttendanceHandler(svc)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewReader([]byte("{")))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Upsert(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
