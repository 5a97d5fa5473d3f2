package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/campushub/lms-portal-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestAttendanceRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	rows := sqlmock.NewRows([]string{"attendance_id", "enrolment_id", "session_id", "attendance_status"}).
		AddRow(int64(5), int64(7), int64(10), models.AttendanceVerified)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO attendance (enrolment_id, session_id, attendance_status)")).
		WithArgs(int64(7), int64(10), models.AttendanceVerified).
		WillReturnRows(rows)

	record, err := repo.Upsert(context.Background(), 7, 10, models.AttendanceVerified)
	require.NoError(t, err)
	require.Equal(t, int64(5), record.AttendanceID)
	require.Equal(t, models.AttendanceVerified, record.AttendanceStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryMarkPendingForEnrolment(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	// an already verified row survives the conflict clause untouched
	rows := sqlmock.NewRows([]string{"attendance_id", "enrolment_id", "session_id", "attendance_status"}).
		AddRow(int64(5), int64(7), int64(10), models.AttendanceVerified)
	mock.ExpectQuery(regexp.QuoteMeta("WHEN attendance.attendance_status = 'Not attended' THEN 'Pending'")).
		WithArgs(int64(7), int64(10), models.AttendancePending).
		WillReturnRows(rows)

	record, err := repo.MarkPendingForEnrolment(context.Background(), 7, 10)
	require.NoError(t, err)
	require.Equal(t, models.AttendanceVerified, record.AttendanceStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryVerifyAllPending(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE attendance SET attendance_status = $1 WHERE session_id = $2 AND attendance_status = $3")).
		WithArgs(models.AttendanceVerified, int64(10), models.AttendancePending).
		WillReturnResult(sqlmock.NewResult(0, 3))

	verified, err := repo.VerifyAllPending(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, 3, verified)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositorySetPendingMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE attendance SET attendance_status = $1 WHERE attendance_id = $2")).
		WithArgs(models.AttendancePending, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetPending(context.Background(), 404)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositorySessionRoster(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	attendanceID := int64(5)
	rows := sqlmock.NewRows([]string{"enrolment_id", "student_id", "student_name", "attendance_status", "attendance_id"}).
		AddRow(int64(7), "A2300123X", "Ada Tan", models.AttendancePending, attendanceID).
		AddRow(int64(8), "A2300456Y", "Ben Lim", models.AttendanceNotAttended, nil)
	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(a.attendance_status, 'Not attended') AS attendance_status")).
		WithArgs(int64(10)).
		WillReturnRows(rows)

	roster, err := repo.SessionRoster(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	require.Equal(t, models.AttendanceNotAttended, roster[1].AttendanceStatus)
	require.Nil(t, roster[1].AttendanceID)
	require.NoError(t, mock.ExpectationsWereMet())
}
