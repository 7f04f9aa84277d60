package controller

import (
	"coursely_backend/internal/service"
	"coursely_backend/internal/util"
	"coursely_backend/pkg/monitoring"
	"errors"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		EnrollmentService: enrollmentService,
	}
}

// swagger:model EnrollmentRequest
type EnrollmentRequest struct {
	UserID   uint `json:"userId"`
	CourseID uint `json:"courseId"`
}

// Enroll godoc
// @Summary 选课
// @Description 创建选课关系并为课程每个课时初始化进度行，整体成功或整体失败
// @Tags 选课
// @Accept  json
// @Produce  json
// @Param   body body EnrollmentRequest true "用户与课程ID"
// @Success 200 {object} util.Response "选课成功"
// @Failure 409 {object} util.Response "已选过该课程"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/enroll [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.EnrollmentService.Enroll(req.UserID, req.CourseID); err != nil {
		monitoring.EnrollmentCounter.WithLabelValues("enroll", "error").Inc()
		if errors.Is(err, util.ErrAlreadyEnrolled) {
			util.Conflict(ctx, "Already enrolled in this course.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	monitoring.EnrollmentCounter.WithLabelValues("enroll", "success").Inc()
	util.Success(ctx, gin.H{"message": "Enrolled successfully"})
}

// Unenroll godoc
// @Summary 退课
// @Description 同一事务内删除该课程下的全部进度行与选课记录
// @Tags 选课
// @Accept  json
// @Produce  json
// @Param   body body EnrollmentRequest true "用户与课程ID"
// @Success 200 {object} util.Response "退课成功"
// @Failure 400 {object} util.Response "缺少用户或课程ID"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/unenroll [post]
func (c *EnrollmentController) Unenroll(ctx *gin.Context) {
	var req EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.UserID == 0 || req.CourseID == 0 {
		util.BadRequest(ctx, "User ID and Course ID are required.")
		return
	}

	if err := c.EnrollmentService.Unenroll(req.UserID, req.CourseID); err != nil {
		monitoring.EnrollmentCounter.WithLabelValues("unenroll", "error").Inc()
		util.LogInternalError(ctx, err)
		return
	}

	monitoring.EnrollmentCounter.WithLabelValues("unenroll", "success").Inc()
	util.Success(ctx, gin.H{"message": "Successfully unenrolled."})
}
