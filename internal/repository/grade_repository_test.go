package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/lms-portal-api/internal/models"
)

func TestGradeRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	assessmentID := int64(2)
	rows := sqlmock.NewRows([]string{"grade_id"}).AddRow(int64(9))
	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (enrolment_id, assessment_id)")).
		WithArgs(int64(7), &assessmentID, 88.5).
		WillReturnRows(rows)

	grade := &models.Grade{EnrolmentID: 7, AssessmentID: &assessmentID, Score: 88.5}
	require.NoError(t, repo.Upsert(context.Background(), grade))
	require.Equal(t, int64(9), grade.GradeID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryComponentsForEnrolment(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	score := 80.0
	rows := sqlmock.NewRows([]string{"assessment_id", "assessment_type", "weight", "score"}).
		AddRow(int64(1), "Final", 50.0, score).
		AddRow(int64(2), "Project", 20.0, nil)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN grade g ON g.assessment_id = at.assessment_id AND g.enrolment_id = $1")).
		WithArgs(int64(7), int64(1)).
		WillReturnRows(rows)

	components, err := repo.ComponentsForEnrolment(context.Background(), 7, 1)
	require.NoError(t, err)
	require.Len(t, components, 2)
	require.Equal(t, 80.0, *components[0].Score)
	require.Nil(t, components[1].Score)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryOfferingsForStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	rows := sqlmock.NewRows([]string{"enrolment_id", "class_offering_id", "course_code", "course_name", "term_id", "term_label"}).
		AddRow(int64(7), int64(1), "CS101", "Intro to Computing", int64(2), "2026 Term 1").
		AddRow(int64(8), int64(3), "MA201", "Linear Algebra", int64(1), "2025 Term 2")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY t.start_date DESC, co.course_code ASC")).
		WithArgs("A2300123X").
		WillReturnRows(rows)

	summary, err := repo.OfferingsForStudent(context.Background(), "A2300123X")
	require.NoError(t, err)
	require.Len(t, summary, 2)
	require.Equal(t, "CS101", summary[0].CourseCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryGradebookRoster(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	gradeID := int64(9)
	score := 88.5
	rows := sqlmock.NewRows([]string{"enrolment_id", "student_id", "student_name", "grade_id", "score"}).
		AddRow(int64(7), "A2300123X", "Ada Tan", gradeID, score).
		AddRow(int64(8), "A2300456Y", "Ben Lim", nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN grade g ON g.enrolment_id = e.enrolment_id AND g.assessment_id = $1")).
		WithArgs(int64(2), int64(1)).
		WillReturnRows(rows)

	roster, err := repo.GradebookRoster(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	require.Nil(t, roster[1].Score)
	require.NoError(t, mock.ExpectationsWereMet())
}
