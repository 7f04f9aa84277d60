package repository

import (
	"coursely_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// ProgressRow 单个课时的进度视图
// 尚未写入进度行的课时按未完成、无成绩返回
type ProgressRow struct {
	CourseID    uint `json:"course_id"`
	LessonID    uint `json:"lesson_id"`
	IsCompleted bool `json:"is_completed"`
	QuizScore   *int `json:"quiz_score"`
}

func (r *ProgressRepository) ListForUser(userID uint) ([]ProgressRow, error) {
	var rows []ProgressRow
	err := r.DB.Table("enrollments").
		Select("enrollments.course_id, lessons.id AS lesson_id, COALESCE(lesson_progress.is_completed, 0) AS is_completed, lesson_progress.quiz_score").
		Joins("JOIN lessons ON lessons.course_id = enrollments.course_id").
		Joins("LEFT JOIN lesson_progress ON lesson_progress.user_id = enrollments.user_id AND lesson_progress.lesson_id = lessons.id").
		Where("enrollments.user_id = ?", userID).
		Order("enrollments.course_id, lessons.id").
		Scan(&rows).Error
	return rows, err
}

// SetCompletion 更新完成标记，(user, lesson) 不存在时静默影响0行
func (r *ProgressRepository) SetCompletion(userID, lessonID uint, isCompleted bool) error {
	return r.DB.Model(&model.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Update("is_completed", isCompleted).
		Error
}
