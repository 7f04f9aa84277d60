package model

// LessonProgress 学员在单个课时上的可变状态
// 行随选课批量创建、随退课批量删除，QuizScore 为空表示尚未提交测验
// swagger:model LessonProgress
type LessonProgress struct {
	BaseModel
	UserID      uint `gorm:"uniqueIndex:idx_user_lesson;not null" json:"userId"`
	LessonID    uint `gorm:"uniqueIndex:idx_user_lesson;not null" json:"lessonId"`
	IsCompleted bool `gorm:"default:false" json:"isCompleted"`
	QuizScore   *int `json:"quizScore"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
