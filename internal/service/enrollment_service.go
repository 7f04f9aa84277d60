package service

import (
	"coursely_backend/internal/model"
	"coursely_backend/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// EnrollmentService 维护 (user, course) 的选课关系
// 选课/退课连同附属的课时进度行在同一事务内创建或删除
type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// Enroll 创建选课关系，并为课程当前的每个课时展开一条进度行
// 任一步失败则整体回滚，不留下部分状态
func (s *EnrollmentService) Enroll(userID, courseID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		enrollment := &model.Enrollment{
			UserID:   userID,
			CourseID: courseID,
		}
		if err := tx.Create(enrollment).Error; err != nil {
			if isDuplicateKeyError(err) {
				return util.ErrAlreadyEnrolled
			}
			return err
		}

		var lessons []model.Lesson
		if err := tx.Where("course_id = ?", courseID).Find(&lessons).Error; err != nil {
			return err
		}
		if len(lessons) == 0 {
			return nil
		}

		progress := make([]model.LessonProgress, 0, len(lessons))
		for _, lesson := range lessons {
			progress = append(progress, model.LessonProgress{
				UserID:      userID,
				LessonID:    lesson.ID,
				IsCompleted: false,
				QuizScore:   nil,
			})
		}
		return tx.Create(&progress).Error
	})
}

// Unenroll 删除该课程下的全部进度行和选课记录，全有或全无
func (s *EnrollmentService) Unenroll(userID, courseID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		lessonIDs := tx.Model(&model.Lesson{}).Select("id").Where("course_id = ?", courseID)
		if err := tx.Where("user_id = ? AND lesson_id IN (?)", userID, lessonIDs).
			Delete(&model.LessonProgress{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND course_id = ?", userID, courseID).
			Delete(&model.Enrollment{}).Error
	})
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// MySQL 1062
	return strings.Contains(err.Error(), "Duplicate entry")
}
