package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/lms-portal-api/internal/models"
)

func TestStudentRepositoryCreateCommitsBothRows(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	cohort := "2026"
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO person (full_name, email) VALUES ($1, $2) RETURNING person_id")).
		WithArgs("Ada Tan", "ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"person_id"}).AddRow(int64(42)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO student (student_id, person_id, cohort) VALUES ($1, $2, $3)")).
		WithArgs("A2300123X", int64(42), &cohort).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	profile := &models.StudentProfile{
		Student:  models.Student{StudentID: "A2300123X", Cohort: &cohort},
		FullName: "Ada Tan",
		Email:    "ada@example.com",
	}
	require.NoError(t, repo.Create(context.Background(), profile))
	require.Equal(t, int64(42), profile.PersonID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreateRollsBackOnStudentInsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO person (full_name, email) VALUES ($1, $2) RETURNING person_id")).
		WithArgs("Ada Tan", "ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"person_id"}).AddRow(int64(42)))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO student (student_id, person_id, cohort) VALUES ($1, $2, $3)")).
		WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	profile := &models.StudentProfile{
		Student:  models.Student{StudentID: "A2300123X"},
		FullName: "Ada Tan",
		Email:    "ada@example.com",
	}
	require.Error(t, repo.Create(context.Background(), profile))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"student_id", "person_id", "cohort", "full_name", "email"}).
		AddRow("A2300123X", int64(42), "2026", "Ada Tan", "ada@example.com")
	mock.ExpectQuery(regexp.QuoteMeta("FROM student s JOIN person p ON p.person_id = s.person_id WHERE s.student_id = $1")).
		WithArgs("A2300123X").
		WillReturnRows(rows)

	profile, err := repo.FindByID(context.Background(), "A2300123X")
	require.NoError(t, err)
	require.Equal(t, "Ada Tan", profile.FullName)
	require.Equal(t, "2026", *profile.Cohort)
	require.NoError(t, mock.ExpectationsWereMet())
}
