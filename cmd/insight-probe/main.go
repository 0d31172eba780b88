// insight-probe 对着真实的模型服务跑一遍三类 AI 调用，验证 Prompt 和解析链路
// 用内置的假数据，不碰数据库
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rody-huancas/expense-tracker-api/internal/config"
	"github.com/rody-huancas/expense-tracker-api/internal/infrastructure/llm"
	"github.com/rody-huancas/expense-tracker-api/internal/model"
	"github.com/rody-huancas/expense-tracker-api/internal/service"
)

// cannedRepo 返回固定的消费窗口，让 probe 不依赖 MySQL
type cannedRepo struct {
	records []model.ExpenseRecord
}

func (r *cannedRepo) Create(ctx context.Context, record *model.ExpenseRecord) error { return nil }
func (r *cannedRepo) GetByID(ctx context.Context, id string) (*model.ExpenseRecord, error) {
	return nil, fmt.Errorf("not implemented")
}
func (r *cannedRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.ExpenseRecord, error) {
	return r.records, nil
}
func (r *cannedRepo) ListAllByUser(ctx context.Context, userID string) ([]model.ExpenseRecord, error) {
	return r.records, nil
}
func (r *cannedRepo) ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]model.ExpenseRecord, error) {
	return r.records, nil
}
func (r *cannedRepo) Delete(ctx context.Context, id string) error { return nil }

func day(offset int) time.Time {
	t := time.Now().UTC().AddDate(0, 0, offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	if conf.OpenRouter.APIKey == "" {
		log.Fatal("请在配置或环境变量里设置 openrouter.api_key")
	}

	llmClient := llm.NewOpenRouterClient(conf.OpenRouter.APIKey, conf.OpenRouter.BaseURL, conf.OpenRouter.Model)

	repo := &cannedRepo{records: []model.ExpenseRecord{
		{ID: "p1", UserID: "probe", Description: "超市采购", Amount: 86.50, Category: "Food", OccurredAt: day(-1)},
		{ID: "p2", UserID: "probe", Description: "打车上班", Amount: 23.00, Category: "Transportation", OccurredAt: day(-1)},
		{ID: "p3", UserID: "probe", Description: "电影票两张", Amount: 98.00, Category: "Entertainment", OccurredAt: day(-3)},
		{ID: "p4", UserID: "probe", Description: "电费", Amount: 210.40, Category: "Bills", OccurredAt: day(-6)},
	}}
	svc := service.NewInsightService(llmClient, repo, conf.Insights.WindowDays, conf.Insights.MaxRecords)

	ctx := context.Background()

	fmt.Println("-------- 结论生成 --------")
	start := time.Now()
	for _, ins := range svc.GenerateInsights(ctx, "probe") {
		fmt.Printf("[%s] %s (%.1f)\n  %s\n", ins.Type, ins.Title, ins.Confidence, ins.Message)
		if ins.Action != "" {
			fmt.Printf("  -> %s\n", ins.Action)
		}
	}
	fmt.Printf("耗时 %v\n", time.Since(start))

	fmt.Println("\n-------- 分类建议 --------")
	for _, desc := range []string{"星巴克拿铁", "地铁月卡", "看牙医", "x"} {
		category, note := svc.SuggestCategory(ctx, desc)
		fmt.Printf("%-12s => %s", desc, category)
		if note != "" {
			fmt.Printf("  (%s)", note)
		}
		fmt.Println()
	}

	fmt.Println("\n-------- 自由问答 --------")
	fmt.Println(svc.AnswerQuestion(ctx, "probe", "我这个月在吃上花了多少？有什么省钱建议？"))
}
