package service

import (
	"coursely_backend/internal/model"
	"coursely_backend/internal/repository"
	"coursely_backend/internal/util"
	"math"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo *repository.QuizRepository
	DB       *gorm.DB
}

func NewQuizService(quizRepo *repository.QuizRepository, db *gorm.DB) *QuizService {
	return &QuizService{
		QuizRepo: quizRepo,
		DB:       db,
	}
}

type QuizOption struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuizQuestion struct {
	ID      uint         `json:"id"`
	Text    string       `json:"text"`
	Options []QuizOption `json:"options"`
}

type QuizResult struct {
	Score        int `json:"score"`
	Total        int `json:"total"`
	CorrectCount int `json:"correctCount"`
}

// GetQuiz 返回课时的题目与选项，正确性标记不出服务端
func (s *QuizService) GetQuiz(lessonID uint) ([]QuizQuestion, error) {
	rows, err := s.QuizRepo.ListQuestionRows(lessonID)
	if err != nil {
		return nil, err
	}
	return groupQuestionRows(rows), nil
}

// groupQuestionRows 按题目ID分组选项行，保持行序
func groupQuestionRows(rows []repository.QuestionOptionRow) []QuizQuestion {
	questions := make([]QuizQuestion, 0)
	index := make(map[uint]int)

	for _, row := range rows {
		pos, ok := index[row.QuestionID]
		if !ok {
			pos = len(questions)
			index[row.QuestionID] = pos
			questions = append(questions, QuizQuestion{
				ID:      row.QuestionID,
				Text:    row.QuestionText,
				Options: []QuizOption{},
			})
		}
		questions[pos].Options = append(questions[pos].Options, QuizOption{
			ID:   row.OptionID,
			Text: row.OptionText,
		})
	}

	return questions
}

type correctOptionRow struct {
	QuestionID uint
	OptionID   uint
}

// SubmitQuiz 以提交的题目ID集合为准取各题的正确选项并计分
// 没有记录正确选项的题目不计入 total；读取正确答案与落库成绩在同一事务内
func (s *QuizService) SubmitQuiz(userID, lessonID uint, answers map[uint]int) (*QuizResult, error) {
	if len(answers) == 0 {
		return nil, util.ErrNoAnswersSubmitted
	}

	questionIDs := make([]uint, 0, len(answers))
	for qid := range answers {
		questionIDs = append(questionIDs, qid)
	}

	var result QuizResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var correct []correctOptionRow
		if err := tx.Model(&model.Option{}).
			Select("question_id, id AS option_id").
			Where("question_id IN ? AND is_correct = ?", questionIDs, true).
			Scan(&correct).Error; err != nil {
			return err
		}

		if len(correct) == 0 {
			return util.ErrNoGradableQuestions
		}

		correctCount := countCorrectAnswers(correct, answers)
		score := int(math.Round(float64(correctCount) / float64(len(correct)) * 100))

		if err := tx.Model(&model.LessonProgress{}).
			Where("user_id = ? AND lesson_id = ?", userID, lessonID).
			Update("quiz_score", score).Error; err != nil {
			return err
		}

		result = QuizResult{
			Score:        score,
			Total:        len(correct),
			CorrectCount: correctCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func countCorrectAnswers(correct []correctOptionRow, answers map[uint]int) int {
	count := 0
	for _, row := range correct {
		if chosen, ok := answers[row.QuestionID]; ok && chosen == int(row.OptionID) {
			count++
		}
	}
	return count
}
