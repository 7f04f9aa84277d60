package repository

import (
	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

// CourseLessonRow 课程与课时左连接的扁平行，无课时时课时列为空
type CourseLessonRow struct {
	CourseID    uint    `json:"courseId"`
	CourseTitle string  `json:"courseTitle"`
	Instructor  string  `json:"instructor"`
	LessonID    *uint   `json:"lessonId"`
	LessonTitle *string `json:"lessonTitle"`
}

func (r *CourseRepository) ListCourseLessonRows() ([]CourseLessonRow, error) {
	var rows []CourseLessonRow
	err := r.DB.Table("courses").
		Select("courses.id AS course_id, courses.title AS course_title, courses.instructor, lessons.id AS lesson_id, lessons.title AS lesson_title").
		Joins("LEFT JOIN lessons ON lessons.course_id = courses.id").
		Order("courses.id, lessons.id").
		Scan(&rows).Error
	return rows, err
}
