package controller

import (
	"coursely_backend/internal/service"
	"coursely_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService *service.CatalogService
}

func NewCourseController(catalogService *service.CatalogService) *CourseController {
	return &CourseController{
		CatalogService: catalogService,
	}
}

// ListCourses godoc
// @Summary 课程目录
// @Description 返回全部课程及其嵌套课时，按课程ID、课时ID升序
// @Tags 课程
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.CourseWithLessons} "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CatalogService.ListCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, courses)
}
