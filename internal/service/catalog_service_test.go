package service

import (
	"testing"

	"coursely_backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestGroupCourseRows(t *testing.T) {
	tests := []struct {
		name     string
		rows     []repository.CourseLessonRow
		expected []CourseWithLessons
	}{
		{
			name:     "no courses",
			rows:     nil,
			expected: []CourseWithLessons{},
		},
		{
			name: "course without lessons gets empty list",
			rows: []repository.CourseLessonRow{
				{CourseID: 1, CourseTitle: "Go Basics", Instructor: "Rob"},
			},
			expected: []CourseWithLessons{
				{ID: 1, Title: "Go Basics", Instructor: "Rob", Lessons: []LessonSummary{}},
			},
		},
		{
			name: "mixed courses preserve row order",
			rows: []repository.CourseLessonRow{
				{CourseID: 1, CourseTitle: "Go Basics", Instructor: "Rob", LessonID: uintPtr(10), LessonTitle: strPtr("Hello")},
				{CourseID: 1, CourseTitle: "Go Basics", Instructor: "Rob", LessonID: uintPtr(11), LessonTitle: strPtr("Types")},
				{CourseID: 2, CourseTitle: "SQL", Instructor: "Edgar"},
				{CourseID: 3, CourseTitle: "HTTP", Instructor: "Tim", LessonID: uintPtr(30), LessonTitle: strPtr("Verbs")},
			},
			expected: []CourseWithLessons{
				{ID: 1, Title: "Go Basics", Instructor: "Rob", Lessons: []LessonSummary{
					{ID: 10, Title: "Hello"},
					{ID: 11, Title: "Types"},
				}},
				{ID: 2, Title: "SQL", Instructor: "Edgar", Lessons: []LessonSummary{}},
				{ID: 3, Title: "HTTP", Instructor: "Tim", Lessons: []LessonSummary{
					{ID: 30, Title: "Verbs"},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, groupCourseRows(tt.rows))
		})
	}
}

func TestCatalogService_ListCourses(t *testing.T) {
	db, mock, cleanup := newTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"course_id", "course_title", "instructor", "lesson_id", "lesson_title"}).
		AddRow(1, "Go Basics", "Rob", 10, "Hello").
		AddRow(1, "Go Basics", "Rob", 11, "Types").
		AddRow(2, "SQL", "Edgar", nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM `courses` LEFT JOIN lessons").
		WillReturnRows(rows)

	svc := NewCatalogService(repository.NewCourseRepository(db))
	courses, err := svc.ListCourses()

	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Go Basics", courses[0].Title)
	assert.Len(t, courses[0].Lessons, 2)
	assert.Equal(t, "SQL", courses[1].Title)
	assert.Empty(t, courses[1].Lessons)
	assert.NoError(t, mock.ExpectationsWereMet())
}
