package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/lms-portal-api/internal/models"
)

func TestSessionRepositoryCreateWithPlaceholders(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO class_session (class_offering_id, session_no, session_start_date, session_end_date, title, room)")).
		WithArgs(int64(1), 3, start, end, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow(int64(11)))
	mock.ExpectExec(regexp.QuoteMeta("SELECT enrolment_id, $1, $2 FROM enrolment")).
		WithArgs(int64(11), models.AttendanceNotAttended, int64(1), models.EnrolmentStatusActive).
		WillReturnResult(sqlmock.NewResult(0, 24))
	mock.ExpectCommit()

	session := &models.ClassSession{ClassOfferingID: 1, SessionNo: 3, SessionStartDate: start, SessionEndDate: end}
	provisioned, err := repo.CreateWithPlaceholders(context.Background(), session)
	require.NoError(t, err)
	require.Equal(t, 24, provisioned)
	require.Equal(t, int64(11), session.SessionID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryUpdateWritesOfferingID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	start := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE class_session")).
		WithArgs(int64(2), 4, start, end, nil, nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	session := &models.ClassSession{SessionID: 7, ClassOfferingID: 2, SessionNo: 4, SessionStartDate: start, SessionEndDate: end}
	require.NoError(t, repo.Update(context.Background(), session))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryCreateRollsBackOnPlaceholderFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSessionRepository(db)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO class_session")).
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow(int64(11)))
	mock.ExpectExec(regexp.QuoteMeta("SELECT enrolment_id, $1, $2 FROM enrolment")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	session := &models.ClassSession{ClassOfferingID: 1, SessionNo: 3, SessionStartDate: start, SessionEndDate: end}
	_, err := repo.CreateWithPlaceholders(context.Background(), session)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
