package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/service"
	"github.com/campushub/lms-portal-api/pkg/export"
	"github.com/campushub/lms-portal-api/pkg/storage"
)

type fakeGradeStore struct {
	roster []models.GradebookRow
}

func (f *fakeGradeStore) List(context.Context, models.GradeFilter) ([]models.GradeDetail, error) {
	return nil, nil
}

func (f *fakeGradeStore) FindByID(context.Context, int64) (*models.Grade, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeGradeStore) Upsert(context.Context, *models.Grade) error { return nil }

func (f *fakeGradeStore) Update(context.Context, int64, *int64, *int64, *float64) error {
	return nil
}

func (f *fakeGradeStore) Delete(context.Context, int64) error { return nil }

func (f *fakeGradeStore) ComponentsForEnrolment(context.Context, int64, int64) ([]models.GradeComponent, error) {
	return nil, nil
}

func (f *fakeGradeStore) OfferingsForStudent(context.Context, string) ([]models.StudentGradeSummaryRow, error) {
	return nil, nil
}

func (f *fakeGradeStore) GradebookRoster(context.Context, int64, int64) ([]models.GradebookRow, error) {
	return f.roster, nil
}

type fakeGradeEnrolmentStore struct{}

func (fakeGradeEnrolmentStore) FindByID(context.Context, int64) (*models.EnrolmentDetail, error) {
	return nil, sql.ErrNoRows
}

func (fakeGradeEnrolmentStore) FindByStudentAndOffering(context.Context, string, int64) (*models.Enrolment, error) {
	return nil, sql.ErrNoRows
}

type fakeOfferingStore struct {
	known map[int64]bool
}

func (f *fakeOfferingStore) FindByID(_ context.Context, id int64) (*models.ClassOfferingDetail, error) {
	if !f.known[id] {
		return nil, sql.ErrNoRows
	}
	return &models.ClassOfferingDetail{
		ClassOffering: models.ClassOffering{ClassOfferingID: id, CourseCode: "CS101"},
		CourseName:    "Intro to Computing",
		TermLabel:     "2026 Term 1",
	}, nil
}

type fakeStudentStore struct{}

func (fakeStudentStore) FindByID(context.Context, string) (*models.StudentProfile, error) {
	return nil, sql.ErrNoRows
}

func newExportHandlerFixture(t *testing.T) (*ExportJobHandler, *service.ExportJobService) {
	t.Helper()
	score := 88.5
	gradeSvc := service.NewGradeService(
		&fakeGradeStore{roster: []models.GradebookRow{{EnrolmentID: 1, StudentID: "A2300123X", StudentName: "Ada Tan", Score: &score}}},
		fakeGradeEnrolmentStore{},
		&fakeOfferingStore{known: map[int64]bool{1: true}},
		fakeStudentStore{}, nil, nil, nil)
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("export-secret", time.Minute)
	exportSvc := service.NewExportJobService(gradeSvc, export.NewCSVExporter(), export.NewPDFExporter(), store, signer, service.ExportJobConfig{Workers: 1}, nil)
	return NewExportJobHandler(exportSvc), exportSvc
}

func TestExportJobHandlerCreateAccepted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, svc := newExportHandlerFixture(t)
	svc.Start(context.Background())
	defer svc.Stop()

	body, _ := json.Marshal(map[string]interface{}{
		"kind":               "GRADEBOOK_CSV",
		"class_offering_id":  1,
		"assessment_type_id": 2,
	})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/grades/exports", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	envelope := decodeEnvelope(t, rec)
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, "GRADEBOOK_CSV", data["kind"])
	assert.NotEmpty(t, data["id"])
}

func TestExportJobHandlerCreateUnknownKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newExportHandlerFixture(t)

	body, _ := json.Marshal(map[string]interface{}{"kind": "GRADEBOOK_XML"})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/grades/exports", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportJobHandlerGetUnknownJob(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newExportHandlerFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Params = gin.Params{{Key: "job_id", Value: "missing"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/grades/exports/missing", nil)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportJobHandlerDownloadRequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newExportHandlerFixture(t)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/grades/exports/download", nil)

	handler.Download(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportJobHandlerDownloadRoundtrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, svc := newExportHandlerFixture(t)
	svc.Start(context.Background())
	defer svc.Stop()

	job, err := svc.EnqueueGradebookCSV(1, 2)
	require.NoError(t, err)

	var token string
	require.Eventually(t, func() bool {
		detail, err := svc.Get(job.ID)
		if err != nil || detail.Status != service.ExportJobDone {
			return false
		}
		token = detail.DownloadToken
		return true
	}, 2*time.Second, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/grades/exports/download?token="+token, nil)

	handler.Download(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Ada Tan")
}
