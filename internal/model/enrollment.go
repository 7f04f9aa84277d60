package model

// Enrollment 用户与课程的选课关系，(user_id, course_id) 唯一
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_user_course;not null" json:"userId"`
	CourseID uint `gorm:"uniqueIndex:idx_user_course;not null" json:"courseId"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
