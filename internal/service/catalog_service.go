package service

import (
	"coursely_backend/internal/repository"
)

type CatalogService struct {
	CourseRepo *repository.CourseRepository
}

func NewCatalogService(courseRepo *repository.CourseRepository) *CatalogService {
	return &CatalogService{
		CourseRepo: courseRepo,
	}
}

type LessonSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

type CourseWithLessons struct {
	ID         uint            `json:"id"`
	Title      string          `json:"title"`
	Instructor string          `json:"instructor"`
	Lessons    []LessonSummary `json:"lessons"`
}

func (s *CatalogService) ListCourses() ([]CourseWithLessons, error) {
	rows, err := s.CourseRepo.ListCourseLessonRows()
	if err != nil {
		return nil, err
	}
	return groupCourseRows(rows), nil
}

// groupCourseRows 按课程ID分组扁平行，保持行序；无课时的课程得到空课时列表
func groupCourseRows(rows []repository.CourseLessonRow) []CourseWithLessons {
	courses := make([]CourseWithLessons, 0)
	index := make(map[uint]int)

	for _, row := range rows {
		pos, ok := index[row.CourseID]
		if !ok {
			pos = len(courses)
			index[row.CourseID] = pos
			courses = append(courses, CourseWithLessons{
				ID:         row.CourseID,
				Title:      row.CourseTitle,
				Instructor: row.Instructor,
				Lessons:    []LessonSummary{},
			})
		}
		if row.LessonID != nil {
			courses[pos].Lessons = append(courses[pos].Lessons, LessonSummary{
				ID:    *row.LessonID,
				Title: derefString(row.LessonTitle),
			})
		}
	}

	return courses
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
