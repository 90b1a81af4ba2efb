package app

import (
	"quiz_platform_backend/docs"
	"quiz_platform_backend/internal/config"
	"quiz_platform_backend/internal/middleware"
	"quiz_platform_backend/internal/model"
	"quiz_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerEmployeeRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerEmployeeRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.user.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)
	rg.GET("/departments", c.user.ListDepartments)

	// Quiz catalog
	rg.GET("/quizzes", c.quiz.ListQuizzes)
	rg.GET("/quizzes/not-completed", c.quiz.ListNotCompleted)
	rg.GET("/quizzes/assigned", c.assignment.GetMyAssignments)
	rg.GET("/quizzes/:quizId", c.quiz.GetQuiz)
	rg.GET("/quizzes/:quizId/volumes", c.quiz.GetVolumes)

	// Attempts
	rg.POST("/quizzes/:quizId/answers", c.statistic.SubmitAnswer)
	rg.GET("/quizzes/:quizId/statistic", c.statistic.GetStatistic)

	// Progression
	rg.GET("/rating", c.rating.GetMyRating)
	rg.GET("/rating/leaderboard", c.rating.GetLeaderboard)
	rg.GET("/levels", c.level.GetChain)
	rg.GET("/achievements", c.achievement.GetMyAchievements)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.POST("/departments", c.user.CreateDepartment)
		admin.PUT("/departments/:departmentId", c.user.UpdateDepartment)
		admin.DELETE("/departments/:departmentId", c.user.DeleteDepartment)

		admin.POST("/assignments", c.assignment.BulkAssign)
		admin.DELETE("/assignments/:userId/:quizId", c.assignment.Revoke)

		admin.GET("/achievements", c.achievement.ListAchievements)
		admin.POST("/achievements", c.achievement.CreateAchievement)
		admin.PUT("/achievements/:achievementId", c.achievement.UpdateAchievement)
		admin.DELETE("/achievements/:achievementId", c.achievement.DeleteAchievement)

		admin.POST("/levels", c.level.AppendLevel)
		admin.PUT("/levels/:levelId", c.level.UpdateLevel)
		admin.DELETE("/levels/:levelId", c.level.DeleteLevel)

		admin.POST("/quizzes/:quizId/volumes", c.quiz.CreateVolume)
		admin.DELETE("/volumes/:volumeId", c.quiz.DeleteVolume)

		admin.POST("/media/images", c.media.UploadImage)
	}
}
