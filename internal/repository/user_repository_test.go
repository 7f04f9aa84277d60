package repository

import (
	"testing"
	"time"

	"coursely_backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newRepoTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock, func() { sqlDB.Close() }
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock, cleanup := newRepoTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE email =").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "full_name", "email", "password"}).
			AddRow(1, now, now, "Ada Lovelace", "ada@example.com", "$2a$hash"))

	repo := NewUserRepository(db)
	user, err := repo.FindByEmail("ada@example.com")

	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "Ada Lovelace", user.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock, cleanup := newRepoTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE email =").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "full_name", "email", "password"}))

	repo := NewUserRepository(db)
	_, err := repo.FindByEmail("ghost@example.com")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	db, mock, cleanup := newRepoTestDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := NewUserRepository(db)
	user := &model.User{FullName: "Ada Lovelace", Email: "ada@example.com", Password: "$2a$hash"}
	err := repo.Create(user)

	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressRepository_ListForUser(t *testing.T) {
	db, mock, cleanup := newRepoTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"course_id", "lesson_id", "is_completed", "quiz_score"}).
		AddRow(1, 1, true, 80).
		AddRow(1, 2, false, nil)
	mock.ExpectQuery("SELECT (.+) FROM `enrollments` JOIN lessons").
		WithArgs(5).
		WillReturnRows(rows)

	repo := NewProgressRepository(db)
	progress, err := repo.ListForUser(5)

	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.True(t, progress[0].IsCompleted)
	require.NotNil(t, progress[0].QuizScore)
	assert.Equal(t, 80, *progress[0].QuizScore)
	assert.False(t, progress[1].IsCompleted)
	assert.Nil(t, progress[1].QuizScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
