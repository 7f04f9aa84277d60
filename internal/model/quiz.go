package model

// swagger:model Question
type Question struct {
	BaseModel
	LessonID     uint     `gorm:"index;not null" json:"lessonId"`
	QuestionText string   `gorm:"type:text;not null" json:"questionText"`
	Options      []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// Option 选择题选项，IsCorrect 永不对外序列化
// swagger:model Option
type Option struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	OptionText string `gorm:"size:512;not null" json:"optionText"`
	IsCorrect  bool   `gorm:"default:false" json:"-"`
}

func (Option) TableName() string {
	return "options"
}
