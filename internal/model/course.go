package model

// 课程与课时均为只读目录数据，由种子数据或运营后台写入
// swagger:model Course
type Course struct {
	BaseModel
	Title      string   `gorm:"size:255;not null" json:"title"`
	Instructor string   `gorm:"size:100" json:"instructor"`
	Lessons    []Lesson `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Lesson
type Lesson struct {
	BaseModel
	CourseID uint   `gorm:"index;not null" json:"courseId"`
	Title    string `gorm:"size:255;not null" json:"title"`
}

func (Lesson) TableName() string {
	return "lessons"
}
