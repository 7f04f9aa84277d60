package controller

import (
	"coursely_backend/internal/service"
	"coursely_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{
		QuizService: quizService,
	}
}

// GetQuiz godoc
// @Summary 获取课时测验
// @Description 返回课时的题目及选项，不含正确答案
// @Tags 测验
// @Produce  json
// @Param   lessonId path int true "课时ID"
// @Success 200 {object} util.Response{data=[]service.QuizQuestion} "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/quiz/{lessonId} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	lessonID := util.MustParseUint(ctx.Param("lessonId"))

	questions, err := c.QuizService.GetQuiz(lessonID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}

// swagger:model QuizSubmission
type QuizSubmission struct {
	UserID   uint           `json:"userId"`
	LessonID uint           `json:"lessonId"`
	Answers  map[string]int `json:"answers"` // questionId -> optionId
}

// SubmitQuiz godoc
// @Summary 提交测验答案
// @Description 对照各题正确选项计分并把成绩写入课时进度
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   body body QuizSubmission true "答案映射"
// @Success 200 {object} util.Response{data=service.QuizResult} "成功"
// @Failure 400 {object} util.Response "未提交答案或无可判分题目"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req QuizSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answers := make(map[uint]int, len(req.Answers))
	for questionID, optionID := range req.Answers {
		answers[util.MustParseUint(questionID)] = optionID
	}

	result, err := c.QuizService.SubmitQuiz(req.UserID, req.LessonID, answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoAnswersSubmitted):
			util.BadRequest(ctx, "No answers submitted.")
		case errors.Is(err, util.ErrNoGradableQuestions):
			util.BadRequest(ctx, "No gradable questions in submission.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
