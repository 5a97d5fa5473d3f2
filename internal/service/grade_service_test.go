package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type mockGradeRepo struct {
	grades     map[int64]*models.Grade
	nextID     int64
	components map[int64][]models.GradeComponent
	offerings  []models.StudentGradeSummaryRow
	roster     []models.GradebookRow

	componentCalls int
}

func (m *mockGradeRepo) List(_ context.Context, _ models.GradeFilter) ([]models.GradeDetail, error) {
	return nil, nil
}

func (m *mockGradeRepo) FindByID(_ context.Context, id int64) (*models.Grade, error) {
	grade, ok := m.grades[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return grade, nil
}

func (m *mockGradeRepo) Upsert(_ context.Context, grade *models.Grade) error {
	if m.grades == nil {
		m.grades = make(map[int64]*models.Grade)
	}
	m.nextID++
	grade.GradeID = m.nextID
	m.grades[grade.GradeID] = grade
	return nil
}

func (m *mockGradeRepo) Update(_ context.Context, id int64, enrolmentID, assessmentID *int64, score *float64) error {
	grade, ok := m.grades[id]
	if !ok {
		return sql.ErrNoRows
	}
	if enrolmentID != nil {
		grade.EnrolmentID = *enrolmentID
	}
	if assessmentID != nil {
		grade.AssessmentID = assessmentID
	}
	if score != nil {
		grade.Score = *score
	}
	return nil
}

func (m *mockGradeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.grades[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.grades, id)
	return nil
}

func (m *mockGradeRepo) ComponentsForEnrolment(_ context.Context, enrolmentID, _ int64) ([]models.GradeComponent, error) {
	m.componentCalls++
	return m.components[enrolmentID], nil
}

func (m *mockGradeRepo) OfferingsForStudent(_ context.Context, _ string) ([]models.StudentGradeSummaryRow, error) {
	return m.offerings, nil
}

func (m *mockGradeRepo) GradebookRoster(_ context.Context, _, _ int64) ([]models.GradebookRow, error) {
	return m.roster, nil
}

type mockGradeEnrolments struct {
	byID         map[int64]*models.EnrolmentDetail
	byStudentOff map[string]*models.Enrolment
}

func (m *mockGradeEnrolments) FindByID(_ context.Context, id int64) (*models.EnrolmentDetail, error) {
	detail, ok := m.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return detail, nil
}

func (m *mockGradeEnrolments) FindByStudentAndOffering(_ context.Context, studentID string, _ int64) (*models.Enrolment, error) {
	enrolment, ok := m.byStudentOff[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return enrolment, nil
}

type mockGradeOfferings struct {
	offerings map[int64]*models.ClassOfferingDetail
}

func (m *mockGradeOfferings) FindByID(_ context.Context, id int64) (*models.ClassOfferingDetail, error) {
	offering, ok := m.offerings[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return offering, nil
}

type mockGradeStudents struct {
	students map[string]*models.StudentProfile
}

func (m *mockGradeStudents) FindByID(_ context.Context, studentID string) (*models.StudentProfile, error) {
	profile, ok := m.students[studentID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return profile, nil
}

// inMemoryCacheRepo stores JSON payloads like the redis-backed repository.
type inMemoryCacheRepo struct {
	entries map[string][]byte
	sets    int
	deletes int
}

func (m *inMemoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	payload, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (m *inMemoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.entries == nil {
		m.entries = make(map[string][]byte)
	}
	m.entries[key] = payload
	m.sets++
	return nil
}

func (m *inMemoryCacheRepo) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	m.deletes++
	return nil
}

func f64(v float64) *float64 { return &v }

func offeringDetail(id int64, courseCode, courseName, termLabel string) *models.ClassOfferingDetail {
	return &models.ClassOfferingDetail{
		ClassOffering: models.ClassOffering{ClassOfferingID: id, CourseCode: courseCode, ClassGroup: "G1", ClassType: "Lecture"},
		CourseName:    courseName,
		TermLabel:     termLabel,
	}
}

func newTestGradeService(grades *mockGradeRepo, enrolments *mockGradeEnrolments, offerings *mockGradeOfferings, students *mockGradeStudents, cacheRepo *inMemoryCacheRepo) *GradeService {
	var cache *CacheService
	if cacheRepo != nil {
		cache = NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	}
	return NewGradeService(grades, enrolments, offerings, students, cache, validator.New(), zap.NewNop())
}

func TestGradeStudentCourseGradesWeightedTotal(t *testing.T) {
	grades := &mockGradeRepo{components: map[int64][]models.GradeComponent{
		7: {
			{AssessmentID: 1, AssessmentLabel: "Midterm", Weight: 30, Score: f64(80)},
			{AssessmentID: 2, AssessmentLabel: "Final", Weight: 50, Score: f64(71.5)},
			{AssessmentID: 3, AssessmentLabel: "Project", Weight: 20, Score: nil},
		},
	}}
	enrolments := &mockGradeEnrolments{byStudentOff: map[string]*models.Enrolment{
		"A2300123X": {EnrolmentID: 7, ClassOfferingID: 1, StudentID: "A2300123X"},
	}}
	offerings := &mockGradeOfferings{offerings: map[int64]*models.ClassOfferingDetail{
		1: offeringDetail(1, "CS101", "Intro to Computing", "2026 Term 1"),
	}}
	svc := newTestGradeService(grades, enrolments, offerings, &mockGradeStudents{}, nil)

	detail, err := svc.StudentCourseGrades(context.Background(), "A2300123X", 1)
	require.NoError(t, err)
	require.Len(t, detail.Components, 3)

	// 80*0.30 + 71.5*0.50, the ungraded project contributes nothing
	assert.Equal(t, 24.0, *detail.Components[0].WeightedScore)
	assert.Equal(t, 35.75, *detail.Components[1].WeightedScore)
	assert.Nil(t, detail.Components[2].WeightedScore)
	assert.Equal(t, 59.75, detail.TotalWeighted)
	assert.Equal(t, "CS101", detail.CourseCode)
	assert.Equal(t, "2026 Term 1", detail.TermLabel)
}

func TestGradeStudentCourseGradesNotEnrolled(t *testing.T) {
	svc := newTestGradeService(&mockGradeRepo{}, &mockGradeEnrolments{}, &mockGradeOfferings{}, &mockGradeStudents{}, nil)

	_, err := svc.StudentCourseGrades(context.Background(), "A2399999Z", 1)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "student is not enrolled in this class offering", appErr.Message)
}

func TestGradeStudentSummaryCachesRollup(t *testing.T) {
	grades := &mockGradeRepo{
		offerings: []models.StudentGradeSummaryRow{
			{EnrolmentID: 7, ClassOfferingID: 1, CourseCode: "CS101", CourseName: "Intro to Computing", TermID: 1, TermLabel: "2026 Term 1"},
		},
		components: map[int64][]models.GradeComponent{
			7: {{AssessmentID: 1, AssessmentLabel: "Final", Weight: 50, Score: f64(90)}},
		},
	}
	students := &mockGradeStudents{students: map[string]*models.StudentProfile{
		"A2300123X": {Student: models.Student{StudentID: "A2300123X"}, FullName: "Ada Tan", Email: "ada@example.com"},
	}}
	cacheRepo := &inMemoryCacheRepo{}
	svc := newTestGradeService(grades, &mockGradeEnrolments{}, &mockGradeOfferings{}, students, cacheRepo)

	rows, err := svc.StudentSummary(context.Background(), "A2300123X")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 45.0, rows[0].TotalWeighted)
	assert.Equal(t, 1, cacheRepo.sets)
	assert.Equal(t, 1, grades.componentCalls)

	// second call is served from cache without touching the repository
	rows, err = svc.StudentSummary(context.Background(), "A2300123X")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 45.0, rows[0].TotalWeighted)
	assert.Equal(t, 1, grades.componentCalls)
}

func TestGradeStudentSummaryUnknownStudent(t *testing.T) {
	svc := newTestGradeService(&mockGradeRepo{}, &mockGradeEnrolments{}, &mockGradeOfferings{}, &mockGradeStudents{}, nil)

	_, err := svc.StudentSummary(context.Background(), "A2399999Z")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestGradeUpsertInvalidatesSummary(t *testing.T) {
	grades := &mockGradeRepo{}
	enrolments := &mockGradeEnrolments{byID: map[int64]*models.EnrolmentDetail{
		7: {Enrolment: models.Enrolment{EnrolmentID: 7, ClassOfferingID: 1, StudentID: "A2300123X"}},
	}}
	cacheRepo := &inMemoryCacheRepo{entries: map[string][]byte{
		"grades:summary:A2300123X": []byte(`[]`),
	}}
	svc := newTestGradeService(grades, enrolments, &mockGradeOfferings{}, &mockGradeStudents{}, cacheRepo)

	grade, err := svc.Upsert(context.Background(), UpsertGradeRequest{EnrolmentID: 7, AssessmentID: 2, Score: 88})
	require.NoError(t, err)
	assert.Equal(t, 88.0, grade.Score)
	require.NotNil(t, grade.AssessmentID)
	assert.Equal(t, int64(2), *grade.AssessmentID)
	assert.NotContains(t, cacheRepo.entries, "grades:summary:A2300123X")
}

func TestGradeUpsertUnknownEnrolment(t *testing.T) {
	svc := newTestGradeService(&mockGradeRepo{}, &mockGradeEnrolments{}, &mockGradeOfferings{}, &mockGradeStudents{}, nil)

	_, err := svc.Upsert(context.Background(), UpsertGradeRequest{EnrolmentID: 99, AssessmentID: 2, Score: 88})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
	assert.Equal(t, "enrolment not found", appErr.Message)
}

func TestGradeUpsertScoreOutOfRange(t *testing.T) {
	svc := newTestGradeService(&mockGradeRepo{}, &mockGradeEnrolments{}, &mockGradeOfferings{}, &mockGradeStudents{}, nil)

	_, err := svc.Upsert(context.Background(), UpsertGradeRequest{EnrolmentID: 7, AssessmentID: 2, Score: 101})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGradeUpdateNoFields(t *testing.T) {
	svc := newTestGradeService(&mockGradeRepo{}, &mockGradeEnrolments{}, &mockGradeOfferings{}, &mockGradeStudents{}, nil)

	_, err := svc.Update(context.Background(), 1, UpdateGradeRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "no fields to update", appErr.Message)
}

func TestGradeUpdateScore(t *testing.T) {
	assessmentID := int64(2)
	grades := &mockGradeRepo{grades: map[int64]*models.Grade{
		1: {GradeID: 1, EnrolmentID: 7, AssessmentID: &assessmentID, Score: 60},
	}, nextID: 1}
	enrolments := &mockGradeEnrolments{byID: map[int64]*models.EnrolmentDetail{
		7: {Enrolment: models.Enrolment{EnrolmentID: 7, StudentID: "A2300123X"}},
	}}
	cacheRepo := &inMemoryCacheRepo{entries: map[string][]byte{
		"grades:summary:A2300123X": []byte(`[]`),
	}}
	svc := newTestGradeService(grades, enrolments, &mockGradeOfferings{}, &mockGradeStudents{}, cacheRepo)

	grade, err := svc.Update(context.Background(), 1, UpdateGradeRequest{Score: f64(75)})
	require.NoError(t, err)
	assert.Equal(t, 75.0, grade.Score)
	assert.NotContains(t, cacheRepo.entries, "grades:summary:A2300123X")
}

func TestGradeDeleteInvalidatesSummary(t *testing.T) {
	grades := &mockGradeRepo{grades: map[int64]*models.Grade{
		1: {GradeID: 1, EnrolmentID: 7, Score: 60},
	}}
	enrolments := &mockGradeEnrolments{byID: map[int64]*models.EnrolmentDetail{
		7: {Enrolment: models.Enrolment{EnrolmentID: 7, StudentID: "A2300123X"}},
	}}
	cacheRepo := &inMemoryCacheRepo{entries: map[string][]byte{
		"grades:summary:A2300123X": []byte(`[]`),
	}}
	svc := newTestGradeService(grades, enrolments, &mockGradeOfferings{}, &mockGradeStudents{}, cacheRepo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, grades.grades)
	assert.NotContains(t, cacheRepo.entries, "grades:summary:A2300123X")
}

func TestGradeGradebookUnknownOffering(t *testing.T) {
	svc := newTestGradeService(&mockGradeRepo{}, &mockGradeEnrolments{}, &mockGradeOfferings{}, &mockGradeStudents{}, nil)

	_, err := svc.Gradebook(context.Background(), 99, 1)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestGradeGradebookDataset(t *testing.T) {
	grades := &mockGradeRepo{roster: []models.GradebookRow{
		{EnrolmentID: 1, StudentID: "A2300123X", StudentName: "Ada Tan", Score: f64(88.5)},
		{EnrolmentID: 2, StudentID: "A2300456Y", StudentName: "Ben Lim", Score: nil},
	}}
	offerings := &mockGradeOfferings{offerings: map[int64]*models.ClassOfferingDetail{
		1: offeringDetail(1, "CS101", "Intro to Computing", "2026 Term 1"),
	}}
	svc := newTestGradeService(grades, &mockGradeEnrolments{}, offerings, &mockGradeStudents{}, nil)

	headers, rows, err := svc.GradebookDataset(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Student ID", "Student Name", "Score"}, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "88.50", rows[0]["Score"])
	assert.Equal(t, "", rows[1]["Score"])
}

func TestGradeCourseGradesDataset(t *testing.T) {
	grades := &mockGradeRepo{components: map[int64][]models.GradeComponent{
		7: {
			{AssessmentID: 1, AssessmentLabel: "Midterm", Weight: 40, Score: f64(70)},
			{AssessmentID: 2, AssessmentLabel: "Final", Weight: 60, Score: nil},
		},
	}}
	enrolments := &mockGradeEnrolments{byStudentOff: map[string]*models.Enrolment{
		"A2300123X": {EnrolmentID: 7, ClassOfferingID: 1, StudentID: "A2300123X"},
	}}
	offerings := &mockGradeOfferings{offerings: map[int64]*models.ClassOfferingDetail{
		1: offeringDetail(1, "CS101", "Intro to Computing", "2026 Term 1"),
	}}
	svc := newTestGradeService(grades, enrolments, offerings, &mockGradeStudents{}, nil)

	title, headers, rows, err := svc.CourseGradesDataset(context.Background(), "A2300123X", 1)
	require.NoError(t, err)
	assert.Equal(t, "CS101 Intro to Computing (2026 Term 1)", title)
	assert.Equal(t, []string{"Assessment", "Weight", "Score", "Weighted"}, headers)
	require.Len(t, rows, 3)
	assert.Equal(t, "28.00", rows[0]["Weighted"])
	assert.Equal(t, "", rows[1]["Weighted"])
	assert.Equal(t, "Total", rows[2]["Assessment"])
	assert.Equal(t, "28.00", rows[2]["Weighted"])
}
