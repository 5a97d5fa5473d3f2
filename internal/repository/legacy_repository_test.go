package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/lms-portal-api/internal/models"
)

func TestLegacyRepositoryListOneRowPerAttendanceRecord(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewLegacyRecordRepository(db)

	columns := []string{"record_id", "enrolment_id", "session_id", "assessment_type",
		"score", "weight", "attendance_status", "student_id", "student_name", "student_email"}
	mock.ExpectQuery(regexp.QuoteMeta("'Session' AS assessment_type")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), int64(7), int64(10), "Session", 0.0, 0.0, "Verified", "A2300123X", "Ada Tan", "ada@example.edu").
			AddRow(int64(2), int64(7), int64(11), "Session", 0.0, 0.0, "Pending", "A2300123X", "Ada Tan", "ada@example.edu"))

	records, err := repo.List(context.Background(), models.AttendanceFilter{EnrolmentID: 7})
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, int64(1), records[0].RecordID)
	require.Equal(t, "Session", records[0].AssessmentLabel)
	require.Zero(t, records[0].Score)
	require.Zero(t, records[0].Weight)
	require.Equal(t, models.AttendanceVerified, records[0].AttendanceStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}
