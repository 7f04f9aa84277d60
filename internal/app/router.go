package app

import (
	"coursely_backend/docs"
	"coursely_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 认证
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)

		// 课程目录
		api.GET("/courses", c.course.ListCourses)

		// 选课
		api.POST("/enroll", c.enrollment.Enroll)
		api.POST("/unenroll", c.enrollment.Unenroll)

		// 学习进度
		api.GET("/progress/:userId", c.progress.GetProgress)
		api.POST("/lesson-progress", c.progress.UpdateLessonProgress)

		// 测验
		api.GET("/quiz/:lessonId", c.quiz.GetQuiz)
		api.POST("/quiz/submit", c.quiz.SubmitQuiz)
	}
}
