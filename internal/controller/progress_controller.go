package controller

import (
	"coursely_backend/internal/service"
	"coursely_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
	}
}

// GetProgress godoc
// @Summary 查询学习进度
// @Description 返回用户已选全部课程的逐课时完成与测验成绩状态
// @Tags 进度
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=[]repository.ProgressRow} "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/progress/{userId} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("userId"))

	rows, err := c.ProgressService.GetUserProgress(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// swagger:model LessonProgressRequest
type LessonProgressRequest struct {
	UserID      uint `json:"userId"`
	LessonID    uint `json:"lessonId"`
	IsCompleted bool `json:"isCompleted"`
}

// UpdateLessonProgress godoc
// @Summary 更新课时完成状态
// @Description 更新 (user, lesson) 的完成标记；记录不存在时不报错
// @Tags 进度
// @Accept  json
// @Produce  json
// @Param   body body LessonProgressRequest true "课时进度"
// @Success 200 {object} util.Response "更新成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/lesson-progress [post]
func (c *ProgressController) UpdateLessonProgress(ctx *gin.Context) {
	var req LessonProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.SetLessonCompletion(req.UserID, req.LessonID, req.IsCompleted); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Progress updated"})
}
