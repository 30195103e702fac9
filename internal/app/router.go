package app

import (
	"adaptive_learning_backend/docs"
	"adaptive_learning_backend/pkg/monitoring"

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

		// 群体与题库
		api.GET("/learners", c.cohort.ListLearners)
		api.GET("/learners/:id", c.cohort.GetLearner)
		api.GET("/items", c.cohort.ListItems)

		// 分析
		api.GET("/overview", c.analytics.GetOverview)
		api.GET("/learners/:id/trajectory", c.analytics.GetTrajectory)
		api.GET("/progress/recent", c.analytics.GetRecentProgress)

		// 推荐与解释
		api.GET("/learners/:id/recommendations", c.recommendation.GetRecommendations)
		api.POST("/learners/:id/recommendations/explain", c.recommendation.ExplainRecommendations)

		// 周计划
		api.POST("/learners/:id/plan", c.planning.BuildPlan)

		// 评估
		api.POST("/learners/:id/assessments", c.assessment.Generate)
		api.POST("/assessments/score", c.assessment.Score)

		// 数字导师
		api.GET("/mentees", c.mentor.ListMentees)
		api.GET("/mentees/averages", c.mentor.GetAverages)
		api.GET("/mentees/:id", c.mentor.GetMentee)
		api.GET("/mentor/resources", c.mentor.GetResources)
		api.POST("/mentor/chat", c.mentor.Chat)
		api.GET("/mentor/autonomy-log", c.mentor.GetAutonomyLog)
		api.GET("/mentor/autonomy-history", c.mentor.GetAutonomyHistory)
	}
}
