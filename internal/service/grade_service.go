package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campushub/lms-portal-api/internal/models"
	appErrors "github.com/campushub/lms-portal-api/pkg/errors"
)

type gradeRepo interface {
	List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error)
	FindByID(ctx context.Context, id int64) (*models.Grade, error)
	Upsert(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, id int64, enrolmentID, assessmentID *int64, score *float64) error
	Delete(ctx context.Context, id int64) error
	ComponentsForEnrolment(ctx context.Context, enrolmentID, offeringID int64) ([]models.GradeComponent, error)
	OfferingsForStudent(ctx context.Context, studentID string) ([]models.StudentGradeSummaryRow, error)
	GradebookRoster(ctx context.Context, offeringID, assessmentID int64) ([]models.GradebookRow, error)
}

type gradeEnrolmentReader interface {
	FindByID(ctx context.Context, id int64) (*models.EnrolmentDetail, error)
	FindByStudentAndOffering(ctx context.Context, studentID string, offeringID int64) (*models.Enrolment, error)
}

type gradeOfferingReader interface {
	FindByID(ctx context.Context, id int64) (*models.ClassOfferingDetail, error)
}

type gradeStudentReader interface {
	FindByID(ctx context.Context, studentID string) (*models.StudentProfile, error)
}

// UpsertGradeRequest records or replaces one score for an
// (enrolment, assessment) pair.
type UpsertGradeRequest struct {
	EnrolmentID  int64   `json:"enrolment_id" validate:"required"`
	AssessmentID int64   `json:"assessment_id" validate:"required"`
	Score        float64 `json:"score" validate:"min=0,max=100"`
}

// UpdateGradeRequest is a partial update of one grade row.
type UpdateGradeRequest struct {
	EnrolmentID  *int64   `json:"enrolment_id"`
	AssessmentID *int64   `json:"assessment_id"`
	Score        *float64 `json:"score" validate:"omitempty,min=0,max=100"`
}

// GradeService orchestrates grade entry, weighted aggregation, the
// per-student summary rollup and the gradebook view.
type GradeService struct {
	grades     gradeRepo
	enrolments gradeEnrolmentReader
	offerings  gradeOfferingReader
	students   gradeStudentReader
	cache      *CacheService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewGradeService constructs a GradeService.
func NewGradeService(grades gradeRepo, enrolments gradeEnrolmentReader, offerings gradeOfferingReader, students gradeStudentReader, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{
		grades:     grades,
		enrolments: enrolments,
		offerings:  offerings,
		students:   students,
		cache:      cache,
		validator:  validate,
		logger:     logger,
	}
}

func summaryCacheKey(studentID string) string {
	return "grades:summary:" + studentID
}

// round2 rounds to two decimal places, the precision every weighted
// score is reported at.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// weightedScore applies the component weight to a raw score. A missing
// score contributes nothing and stays nil so clients can tell "ungraded"
// from "scored zero".
func weightedScore(score *float64, weight float64) *float64 {
	if score == nil {
		return nil
	}
	w := round2(*score * weight / 100)
	return &w
}

// List returns grade rows with assessment and student context.
func (s *GradeService) List(ctx context.Context, filter models.GradeFilter) ([]models.GradeDetail, error) {
	grades, err := s.grades.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list grades")
	}
	return grades, nil
}

// Get returns one grade row.
func (s *GradeService) Get(ctx context.Context, id int64) (*models.Grade, error) {
	grade, err := s.grades.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "grade not found", "failed to load grade")
	}
	return grade, nil
}

// Upsert records a score for an (enrolment, assessment) pair, replacing
// any previous score for the same pair. The enrolment must exist, and
// the assessment must belong to the enrolment's course.
func (s *GradeService) Upsert(ctx context.Context, req UpsertGradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	enrolment, err := s.enrolments.FindByID(ctx, req.EnrolmentID)
	if err != nil {
		return nil, readError(err, "enrolment not found", "failed to load enrolment")
	}
	grade := &models.Grade{
		EnrolmentID:  req.EnrolmentID,
		AssessmentID: &req.AssessmentID,
		Score:        req.Score,
	}
	if err := s.grades.Upsert(ctx, grade); err != nil {
		return nil, storeError(err, "grade not found", appErrors.ErrValidation, "unknown enrolment or assessment type", "failed to upsert grade")
	}
	s.invalidateSummary(ctx, enrolment.StudentID)
	return grade, nil
}

// Update applies the provided fields to one grade row.
func (s *GradeService) Update(ctx context.Context, id int64, req UpdateGradeRequest) (*models.Grade, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	if req.EnrolmentID == nil && req.AssessmentID == nil && req.Score == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no fields to update")
	}
	if err := s.grades.Update(ctx, id, req.EnrolmentID, req.AssessmentID, req.Score); err != nil {
		return nil, storeError(err, "grade not found", appErrors.ErrValidation, "unknown enrolment or assessment type", "failed to update grade")
	}
	grade, err := s.grades.FindByID(ctx, id)
	if err != nil {
		return nil, readError(err, "grade not found", "failed to load grade")
	}
	if enrolment, err := s.enrolments.FindByID(ctx, grade.EnrolmentID); err == nil {
		s.invalidateSummary(ctx, enrolment.StudentID)
	}
	return grade, nil
}

// Delete removes one grade row.
func (s *GradeService) Delete(ctx context.Context, id int64) error {
	grade, err := s.grades.FindByID(ctx, id)
	if err != nil {
		return readError(err, "grade not found", "failed to load grade")
	}
	if err := s.grades.Delete(ctx, id); err != nil {
		return storeError(err, "grade not found", nil, "", "failed to delete grade")
	}
	if enrolment, err := s.enrolments.FindByID(ctx, grade.EnrolmentID); err == nil {
		s.invalidateSummary(ctx, enrolment.StudentID)
	}
	return nil
}

// StudentCourseGrades assembles one student's weighted breakdown for a
// class offering: every assessment type of the course, the recorded
// score when present, the weighted contribution per component, and the
// total. Ungraded components contribute zero to the total.
func (s *GradeService) StudentCourseGrades(ctx context.Context, studentID string, offeringID int64) (*models.StudentCourseGrades, error) {
	enrolment, err := s.enrolments.FindByStudentAndOffering(ctx, studentID, offeringID)
	if err != nil {
		return nil, readError(err, "student is not enrolled in this class offering", "failed to load enrolment")
	}
	offering, err := s.offerings.FindByID(ctx, offeringID)
	if err != nil {
		return nil, readError(err, "class offering not found", "failed to load class offering")
	}
	components, err := s.grades.ComponentsForEnrolment(ctx, enrolment.EnrolmentID, offeringID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grade components")
	}
	total := 0.0
	for i := range components {
		components[i].WeightedScore = weightedScore(components[i].Score, components[i].Weight)
		if components[i].WeightedScore != nil {
			total += *components[i].WeightedScore
		}
	}
	return &models.StudentCourseGrades{
		StudentID:       studentID,
		ClassOfferingID: offeringID,
		CourseCode:      offering.CourseCode,
		CourseName:      offering.CourseName,
		TermLabel:       offering.TermLabel,
		Components:      components,
		TotalWeighted:   round2(total),
	}, nil
}

// StudentSummary rolls up the weighted total for every offering the
// student is enrolled in, most recent term first and course code
// ascending within a term. The rollup is served from cache when warm.
func (s *GradeService) StudentSummary(ctx context.Context, studentID string) ([]models.StudentGradeSummaryRow, error) {
	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		return nil, readError(err, "student not found", "failed to load student")
	}
	key := summaryCacheKey(studentID)
	var cached []models.StudentGradeSummaryRow
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}
	rows, err := s.grades.OfferingsForStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student offerings")
	}
	for i := range rows {
		components, err := s.grades.ComponentsForEnrolment(ctx, rows[i].EnrolmentID, rows[i].ClassOfferingID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grade components")
		}
		total := 0.0
		for _, component := range components {
			if weighted := weightedScore(component.Score, component.Weight); weighted != nil {
				total += *weighted
			}
		}
		rows[i].TotalWeighted = round2(total)
	}
	if err := s.cache.Set(ctx, key, rows, 0); err != nil {
		s.logger.Warn("failed to cache grade summary", zap.String("student_id", studentID), zap.Error(err))
	}
	return rows, nil
}

// Gradebook returns every enrolled student of an offering with the
// current score for one assessment, ordered by student name.
func (s *GradeService) Gradebook(ctx context.Context, offeringID, assessmentID int64) ([]models.GradebookRow, error) {
	if _, err := s.offerings.FindByID(ctx, offeringID); err != nil {
		return nil, readError(err, "class offering not found", "failed to load class offering")
	}
	roster, err := s.grades.GradebookRoster(ctx, offeringID, assessmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load gradebook")
	}
	return roster, nil
}

// GradebookDataset flattens the gradebook into a tabular dataset for
// CSV or PDF export.
func (s *GradeService) GradebookDataset(ctx context.Context, offeringID, assessmentID int64) ([]string, []map[string]string, error) {
	roster, err := s.Gradebook(ctx, offeringID, assessmentID)
	if err != nil {
		return nil, nil, err
	}
	headers := []string{"Student ID", "Student Name", "Score"}
	rows := make([]map[string]string, 0, len(roster))
	for _, entry := range roster {
		score := ""
		if entry.Score != nil {
			score = strconv.FormatFloat(*entry.Score, 'f', 2, 64)
		}
		rows = append(rows, map[string]string{
			"Student ID":   entry.StudentID,
			"Student Name": entry.StudentName,
			"Score":        score,
		})
	}
	return headers, rows, nil
}

// CourseGradesDataset flattens one student's weighted breakdown into a
// tabular dataset for CSV or PDF export.
func (s *GradeService) CourseGradesDataset(ctx context.Context, studentID string, offeringID int64) (string, []string, []map[string]string, error) {
	detail, err := s.StudentCourseGrades(ctx, studentID, offeringID)
	if err != nil {
		return "", nil, nil, err
	}
	title := fmt.Sprintf("%s %s (%s)", detail.CourseCode, detail.CourseName, detail.TermLabel)
	headers := []string{"Assessment", "Weight", "Score", "Weighted"}
	rows := make([]map[string]string, 0, len(detail.Components)+1)
	for _, component := range detail.Components {
		score, weighted := "", ""
		if component.Score != nil {
			score = strconv.FormatFloat(*component.Score, 'f', 2, 64)
		}
		if component.WeightedScore != nil {
			weighted = strconv.FormatFloat(*component.WeightedScore, 'f', 2, 64)
		}
		rows = append(rows, map[string]string{
			"Assessment": component.AssessmentLabel,
			"Weight":     strconv.FormatFloat(component.Weight, 'f', 2, 64),
			"Score":      score,
			"Weighted":   weighted,
		})
	}
	rows = append(rows, map[string]string{
		"Assessment": "Total",
		"Weighted":   strconv.FormatFloat(detail.TotalWeighted, 'f', 2, 64),
	})
	return title, headers, rows, nil
}

func (s *GradeService) invalidateSummary(ctx context.Context, studentID string) {
	if err := s.cache.Invalidate(ctx, summaryCacheKey(studentID)); err != nil {
		s.logger.Warn("failed to invalidate grade summary cache", zap.String("student_id", studentID), zap.Error(err))
	}
}
