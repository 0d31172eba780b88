package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rody-huancas/expense-tracker-api/internal/api/controller"
	"github.com/rody-huancas/expense-tracker-api/internal/api/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, jwtSecret string, authCtrl *controller.AuthController, recordCtrl *controller.RecordController, insightCtrl *controller.InsightController) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/api/v1/auth")
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
	}

	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth(jwtSecret))
	{
		protected.POST("/records", recordCtrl.Create)
		protected.GET("/records", recordCtrl.List)
		protected.POST("/records/delete", recordCtrl.Delete)
		protected.GET("/records/chart", recordCtrl.Chart)
		protected.GET("/records/stats", recordCtrl.Stats)

		protected.POST("/insights", insightCtrl.Generate)
		protected.POST("/insights/answer", insightCtrl.Answer)
		protected.POST("/categories/suggest", insightCtrl.SuggestCategory)
	}
}
