package service

import (
	"errors"
	"testing"
	"time"

	"coursely_backend/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func lessonRows(ids ...uint) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "course_id", "title"})
	for _, id := range ids {
		rows.AddRow(id, time.Now(), time.Now(), 1, "Lesson")
	}
	return rows
}

func TestEnrollmentService_Enroll(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "fans out one progress row per lesson",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `enrollments`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery("SELECT (.+) FROM `lessons` WHERE course_id =").
					WillReturnRows(lessonRows(10, 11, 12))
				mock.ExpectExec("INSERT INTO `lesson_progress`").
					WillReturnResult(sqlmock.NewResult(1, 3))
				mock.ExpectCommit()
			},
		},
		{
			name: "course without lessons still enrolls",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `enrollments`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery("SELECT (.+) FROM `lessons` WHERE course_id =").
					WillReturnRows(lessonRows())
				mock.ExpectCommit()
			},
		},
		{
			name: "duplicate enrollment rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `enrollments`").
					WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '5-1' for key 'enrollments.idx_user_course'"))
				mock.ExpectRollback()
			},
			expectedError: util.ErrAlreadyEnrolled,
		},
		{
			name: "lesson lookup failure rolls back everything",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `enrollments`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery("SELECT (.+) FROM `lessons` WHERE course_id =").
					WillReturnError(errors.New("table corrupted"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("table corrupted"),
		},
		{
			name: "progress insert failure rolls back enrollment",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `enrollments`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery("SELECT (.+) FROM `lessons` WHERE course_id =").
					WillReturnRows(lessonRows(10))
				mock.ExpectExec("INSERT INTO `lesson_progress`").
					WillReturnError(errors.New("disk full"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newTestDB(t)
			defer cleanup()

			tt.setupMock(mock)

			svc := NewEnrollmentService(db)
			err := svc.Enroll(5, 1)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEnrollmentService_Unenroll(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "removes progress rows and enrollment together",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `lesson_progress`").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("DELETE FROM `enrollments`").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "progress delete failure keeps enrollment",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `lesson_progress`").
					WillReturnError(errors.New("lock wait timeout"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("lock wait timeout"),
		},
		{
			name: "enrollment delete failure restores progress rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `lesson_progress`").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("DELETE FROM `enrollments`").
					WillReturnError(errors.New("lock wait timeout"))
				mock.ExpectRollback()
			},
			expectedError: errors.New("lock wait timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newTestDB(t)
			defer cleanup()

			tt.setupMock(mock)

			svc := NewEnrollmentService(db)
			err := svc.Unenroll(5, 1)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
