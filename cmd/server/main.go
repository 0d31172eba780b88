package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rody-huancas/expense-tracker-api/internal/api"
	"github.com/rody-huancas/expense-tracker-api/internal/api/controller"
	"github.com/rody-huancas/expense-tracker-api/internal/api/middleware"
	"github.com/rody-huancas/expense-tracker-api/internal/config"
	"github.com/rody-huancas/expense-tracker-api/internal/infrastructure/database"
	"github.com/rody-huancas/expense-tracker-api/internal/infrastructure/llm"
	"github.com/rody-huancas/expense-tracker-api/internal/repository"
	"github.com/rody-huancas/expense-tracker-api/internal/service"
)

// @title           ExpenseTracker AI API
// @version         1.0
// @description     记账 + AI 消费分析后端

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// 1. 初始化 Logger
	// JSON 格式方便采集，AddSource 会带上文件名和行号
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("ExpenseTracker 启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}

	// 2. Infra Initialization
	// 模型客户端和数据库连接都在这里显式构造，不藏全局单例
	llmClient := llm.NewOpenRouterClient(conf.OpenRouter.APIKey, conf.OpenRouter.BaseURL, conf.OpenRouter.Model)
	db := database.NewMySQLConnection(conf.Database.DSN) // 这里会自动建表

	if conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Layer Wiring (依赖注入)
	recordRepo := repository.NewRecordRepo(db)
	userRepo := repository.NewUserRepository(db)

	recordSvc := service.NewRecordService(recordRepo, conf.Records.ListLimit)
	insightSvc := service.NewInsightService(llmClient, recordRepo, conf.Insights.WindowDays, conf.Insights.MaxRecords)
	authSvc := service.NewAuthService(userRepo, conf.JWT)

	// 4. Server Start
	r := gin.Default()
	r.Use(middleware.Cors())

	api.RegisterRoutes(r,
		conf.JWT.Secret,
		controller.NewAuthController(authSvc),
		controller.NewRecordController(recordSvc),
		controller.NewInsightController(insightSvc),
	)

	slog.Info("Web Server 启动中", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
	}
}
