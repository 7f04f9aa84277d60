package service

import (
	"errors"
	"testing"

	"coursely_backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_GetUserProgress(t *testing.T) {
	db, mock, cleanup := newTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"course_id", "lesson_id", "is_completed", "quiz_score"}).
		AddRow(1, 10, true, 80).
		AddRow(1, 11, false, nil)
	mock.ExpectQuery("SELECT (.+) FROM `enrollments` JOIN lessons").
		WithArgs(5).
		WillReturnRows(rows)

	svc := NewProgressService(repository.NewProgressRepository(db))
	progress, err := svc.GetUserProgress(5)

	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.True(t, progress[0].IsCompleted)
	require.NotNil(t, progress[0].QuizScore)
	assert.Equal(t, 80, *progress[0].QuizScore)
	// 没有进度行的课时回落为未完成、无成绩
	assert.False(t, progress[1].IsCompleted)
	assert.Nil(t, progress[1].QuizScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressService_GetUserProgress_Empty(t *testing.T) {
	db, mock, cleanup := newTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `enrollments` JOIN lessons").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "lesson_id", "is_completed", "quiz_score"}))

	svc := NewProgressService(repository.NewProgressRepository(db))
	progress, err := svc.GetUserProgress(99)

	require.NoError(t, err)
	assert.NotNil(t, progress)
	assert.Empty(t, progress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressService_SetLessonCompletion(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "marks lesson complete",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `lesson_progress` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "unknown pair silently affects zero rows",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `lesson_progress` SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name: "store failure is surfaced",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE `lesson_progress` SET").
					WillReturnError(errors.New("connection refused"))
			},
			expectedError: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newTestDB(t)
			defer cleanup()

			tt.setupMock(mock)

			svc := NewProgressService(repository.NewProgressRepository(db))
			err := svc.SetLessonCompletion(5, 10, true)

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

// 重复设置同一完成状态不报错也不产生新行
func TestProgressService_SetLessonCompletion_Idempotent(t *testing.T) {
	db, mock, cleanup := newTestDB(t)
	defer cleanup()

	mock.ExpectExec("UPDATE `lesson_progress` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `lesson_progress` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := NewProgressService(repository.NewProgressRepository(db))
	assert.NoError(t, svc.SetLessonCompletion(5, 10, true))
	assert.NoError(t, svc.SetLessonCompletion(5, 10, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}
