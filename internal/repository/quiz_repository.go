package repository

import (
	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

// QuestionOptionRow 题目与选项内连接的扁平行，不携带正确性标记
type QuestionOptionRow struct {
	QuestionID   uint   `json:"questionId"`
	QuestionText string `json:"questionText"`
	OptionID     uint   `json:"optionId"`
	OptionText   string `json:"optionText"`
}

func (r *QuizRepository) ListQuestionRows(lessonID uint) ([]QuestionOptionRow, error) {
	var rows []QuestionOptionRow
	err := r.DB.Table("questions").
		Select("questions.id AS question_id, questions.question_text, options.id AS option_id, options.option_text").
		Joins("JOIN options ON options.question_id = questions.id").
		Where("questions.lesson_id = ?", lessonID).
		Order("questions.id, options.id").
		Scan(&rows).Error
	return rows, err
}
