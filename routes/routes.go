package routes

import (
	"AuraGo/controllers"
	"AuraGo/middleware"
	"AuraGo/services"

	"github.com/gin-gonic/gin"
)

// Deps 路由所需的全部服务依赖
type Deps struct {
	Speech   *services.SpeechService
	Critique *services.CritiqueService
	Insight  *services.InsightService
	Recap    *services.RecapService
	Poller   *services.RecapPoller
	Video    *services.VideoService
	Storage  *services.StorageClient
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	authController := controllers.AuthController{}
	userController := controllers.UserController{}
	reflectionController := controllers.ReflectionController{}
	habitController := controllers.HabitController{}
	aiController := controllers.NewAIController(deps.Speech, deps.Critique, deps.Storage)
	insightController := controllers.NewInsightController(deps.Insight)
	recapController := controllers.NewRecapController(deps.Recap, deps.Poller, deps.Video)

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", authController.Login)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// 用户资料
		private.GET("/user", userController.GetUser)
		private.PUT("/user", userController.UpdateUser)

		// 反思记录
		private.POST("/reflections", reflectionController.CreateReflection)
		private.GET("/reflections", reflectionController.ListReflections)
		private.DELETE("/reflections/:id", reflectionController.DeleteReflection)

		// 习惯打卡
		private.POST("/habits", habitController.CreateHabit)
		private.GET("/habits", habitController.ListHabits)
		private.POST("/habits/:id/toggle", habitController.ToggleCompletion)
		private.DELETE("/habits/:id", habitController.DeleteHabit)

		// AI 相关接口
		private.POST("/ai/sentiment", aiController.AnalyzeSentiment)
		private.POST("/ai/transcribe", aiController.Transcribe)
		private.POST("/ai/speech", aiController.Synthesize)
		private.POST("/ai/outfit", aiController.CritiqueOutfit)
		private.POST("/ai/body", aiController.CritiqueBody)
		private.GET("/ai/body/plan/:id", aiController.GetBodyPlan)
		private.POST("/uploads", aiController.UploadImage)

		// 洞察报告
		private.POST("/insights", insightController.GenerateReport)
		private.GET("/insights", insightController.ListReports)

		// 周报视频
		private.POST("/recaps", recapController.StartRecap)
		private.GET("/recaps", recapController.ListRecaps)
		private.GET("/recaps/:id/status", recapController.GetStatus)
		private.PUT("/recaps/:id/video", recapController.PersistVideo)
		private.POST("/recaps/:id/cancel", recapController.CancelRecap)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
