package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/rody-huancas/expense-tracker-api/internal/infrastructure/llm"
	"github.com/rody-huancas/expense-tracker-api/internal/model"
	"github.com/rody-huancas/expense-tracker-api/internal/repository"
)

// 各调用点的固定兜底内容
// 产品约定：AI 功能永远返回可用的内容，绝不把上游错误甩给用户
const fallbackAnswer = "现在无法给出详细的回答。请稍后刷新结论，或检查网络连接。"

const categoryUnavailableNote = "当前无法给出分类建议"

// InsightService 把用户最近的消费窗口变成 AI 结论 / 分类建议 / 自由问答
// 模型调用失败从不向上抛错，统一降级成固定内容
type InsightService struct {
	llmClient llm.Provider // 依赖接口，而不是具体 struct
	repo      repository.RecordRepo

	// 窗口边界："最近 windowDays 天内最多 maxRecords 条"，来自配置
	windowDays int
	maxRecords int
}

// NewInsightService 构造函数 (依赖注入)
func NewInsightService(llmClient llm.Provider, repo repository.RecordRepo, windowDays, maxRecords int) *InsightService {
	return &InsightService{
		llmClient:  llmClient,
		repo:       repo,
		windowDays: windowDays,
		maxRecords: maxRecords,
	}
}

// fetchWindow 取 AI 调用的输入窗口：按入库时间筛选，新的在前
func (s *InsightService) fetchWindow(ctx context.Context, userID string) ([]model.ExpenseRecord, error) {
	since := time.Now().AddDate(0, 0, -s.windowDays)
	return s.repo.ListRecent(ctx, userID, since, s.maxRecords)
}

// GenerateInsights 生成消费结论
// 窗口为空时直接返回欢迎内容，一次模型调用都不发；任何失败都降级成固定警告
func (s *InsightService) GenerateInsights(ctx context.Context, userID string) []model.AIInsight {
	records, err := s.fetchWindow(ctx, userID)
	if err != nil {
		slog.Error("读取消费窗口失败", "kind", "insights", "uid", userID, "error", err)
		return fallbackInsights()
	}

	if len(records) == 0 {
		// 新用户：没数据可分析，不值得打扰模型
		return welcomeInsights()
	}

	req, err := buildInsightRequest(model.ProjectRecords(records))
	if err != nil {
		slog.Error("构造结论 Prompt 失败", "uid", userID, "error", err)
		return fallbackInsights()
	}

	start := time.Now()
	raw, err := s.llmClient.Complete(ctx, req)
	if err != nil {
		slog.Error("模型调用失败", "kind", "insights", "uid", userID, "latency", time.Since(start), "error", err)
		return fallbackInsights()
	}

	insights, err := parseInsightResponse(raw)
	if err != nil {
		slog.Error("模型回复无法解析", "kind", "insights", "uid", userID, "latency", time.Since(start), "error", err)
		return fallbackInsights()
	}

	slog.Info("结论生成完成", "uid", userID, "count", len(insights), "latency", time.Since(start))
	return insights
}

// SuggestCategory 根据描述建议分类
// 返回 (分类, 提示)。分类永远非空；提示只是给前端的参考信息，不阻断流程
func (s *InsightService) SuggestCategory(ctx context.Context, description string) (string, string) {
	desc := strings.TrimSpace(description)
	if len([]rune(desc)) < 2 {
		return model.CategoryOther, "描述太短，无法进行 AI 分析"
	}

	start := time.Now()
	raw, err := s.llmClient.Complete(ctx, buildCategoryRequest(desc))
	if err != nil {
		slog.Error("模型调用失败", "kind", "category", "latency", time.Since(start), "error", err)
		return model.CategoryOther, categoryUnavailableNote
	}

	// 严格白名单匹配，不认识的输出一律归 Other
	return model.NormalizeCategory(raw), ""
}

// AnswerQuestion 基于消费窗口回答用户的自由提问
// 这里不做空窗口短路：没有数据时模型也能解释"你还没记账"
func (s *InsightService) AnswerQuestion(ctx context.Context, userID, question string) string {
	records, err := s.fetchWindow(ctx, userID)
	if err != nil {
		slog.Error("读取消费窗口失败", "kind", "answer", "uid", userID, "error", err)
		return fallbackAnswer
	}

	req, err := buildAnswerRequest(question, model.ProjectRecords(records))
	if err != nil {
		slog.Error("构造问答 Prompt 失败", "uid", userID, "error", err)
		return fallbackAnswer
	}

	start := time.Now()
	raw, err := s.llmClient.Complete(ctx, req)
	if err != nil {
		slog.Error("模型调用失败", "kind", "answer", "uid", userID, "latency", time.Since(start), "error", err)
		return fallbackAnswer
	}

	answer, err := parseAnswerResponse(raw)
	if err != nil {
		slog.Error("模型回复无法解析", "kind", "answer", "uid", userID, "latency", time.Since(start), "error", err)
		return fallbackAnswer
	}
	return answer
}

// welcomeInsights 零记录时的固定欢迎内容
// confidence 1.0 表示"这是策略默认值"，和模型输出区分开
func welcomeInsights() []model.AIInsight {
	return []model.AIInsight{
		{
			ID:         "welcome-1",
			Type:       model.InsightTypeInfo,
			Title:      "欢迎使用 ExpenseTracker AI!",
			Message:    "开始记录你的消费，就能获得针对你消费模式的个性化 AI 结论。",
			Action:     "添加第一笔消费",
			Confidence: 1.0,
		},
		{
			ID:         "welcome-2",
			Type:       model.InsightTypeTip,
			Title:      "坚持定期记录",
			Message:    "最好每天记账。规律的数据能让 AI 给出更精准的结论。",
			Action:     "设置每日提醒",
			Confidence: 1.0,
		},
	}
}

// fallbackInsights 模型调用或解析失败时的固定兜底
func fallbackInsights() []model.AIInsight {
	return []model.AIInsight{
		{
			ID:         "fallback-1",
			Type:       model.InsightTypeWarning,
			Title:      "AI 结论暂时不可用",
			Message:    "当前无法分析你的消费数据，请过几分钟再试。",
			Action:     "重试分析",
			Confidence: 0.5,
		},
	}
}
