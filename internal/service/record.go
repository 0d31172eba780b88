package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rody-huancas/expense-tracker-api/internal/model"
	"github.com/rody-huancas/expense-tracker-api/internal/repository"
	"gorm.io/gorm"
)

// ErrRecordNotFound 记录不存在，或者不属于当前用户
// 越权访问也按"不存在"报，不向调用方暴露别人的记录是否存在
var ErrRecordNotFound = errors.New("记录不存在")

// RecordInput 新增记录的原始参数 (DTO)，字段齐全性由 API 层的 binding 把关
type RecordInput struct {
	Description string
	Amount      float64
	Category    string
	Date        string // YYYY-MM-DD
}

// UserStats 用户的消费总览
type UserStats struct {
	Total           float64 `json:"total"`
	DaysWithRecords int     `json:"days_with_records"`
}

// RecordService 消费记录的增删查与统计
type RecordService struct {
	repo      repository.RecordRepo
	listLimit int
}

// NewRecordService 构造函数 (依赖注入)
func NewRecordService(repo repository.RecordRepo, listLimit int) *RecordService {
	return &RecordService{repo: repo, listLimit: listLimit}
}

// AddRecord 校验并落库一笔新记录
// 日期归一化为 UTC 正午，分类按白名单清洗后再入库
func (s *RecordService) AddRecord(ctx context.Context, userID string, input RecordInput) (*model.ExpenseRecord, error) {
	occurredAt, err := model.ParseEntryDate(input.Date)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	record := &model.ExpenseRecord{
		ID:          id.String(),
		UserID:      userID,
		Description: input.Description,
		Amount:      input.Amount,
		Category:    model.NormalizeCategory(input.Category),
		OccurredAt:  occurredAt,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("写入记录失败: %w", err)
	}

	slog.Info("新增消费记录", "uid", userID, "id", record.ID, "amount", record.Amount, "category", record.Category)
	return record, nil
}

// ListRecords 首页列表：按记账日倒序的最近若干条
func (s *RecordService) ListRecords(ctx context.Context, userID string) ([]model.ExpenseRecord, error) {
	return s.repo.ListByUser(ctx, userID, s.listLimit)
}

// ChartData 图表数据：全量记录按天聚合
func (s *RecordService) ChartData(ctx context.Context, userID string) ([]AggregatedDay, error) {
	records, err := s.repo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return AggregateByDate(records), nil
}

// DeleteRecord 删除记录 (带归属权校验)
func (s *RecordService) DeleteRecord(ctx context.Context, userID, recordID string) error {
	// 1. 先查出来，确认存在
	existing, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("查询记录失败: %w", err)
	}

	// 2. 安全核心：检查这条记录是不是这个人的
	if existing.UserID != userID {
		return ErrRecordNotFound
	}

	return s.repo.Delete(ctx, recordID)
}

// Stats 总支出和有消费的记录数
func (s *RecordService) Stats(ctx context.Context, userID string) (*UserStats, error) {
	records, err := s.repo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &UserStats{}
	for _, r := range records {
		stats.Total += r.Amount
		if r.Amount > 0 {
			stats.DaysWithRecords++
		}
	}
	return stats, nil
}
