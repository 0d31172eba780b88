package repository

import (
	"context"
	"time"

	"github.com/rody-huancas/expense-tracker-api/internal/model"
	"gorm.io/gorm"
)

// RecordRepo 定义接口 (为了方便 Mock)
// 所有读和删都必须带上 userID 过滤，用户间的隔离就落实在这一层
type RecordRepo interface {
	Create(ctx context.Context, record *model.ExpenseRecord) error
	GetByID(ctx context.Context, id string) (*model.ExpenseRecord, error)
	// ListByUser 按记账日倒序返回最近 limit 条，给首页列表用
	ListByUser(ctx context.Context, userID string, limit int) ([]model.ExpenseRecord, error)
	// ListAllByUser 返回全部记录，给图表聚合和统计用
	ListAllByUser(ctx context.Context, userID string) ([]model.ExpenseRecord, error)
	// ListRecent 返回 since 之后创建的记录，按创建时间倒序、最多 limit 条
	// 这是 AI 窗口的唯一数据来源
	ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]model.ExpenseRecord, error)
	Delete(ctx context.Context, id string) error
}

// recordRepo 实现
type recordRepo struct {
	db *gorm.DB
}

// NewRecordRepo 构造函数
func NewRecordRepo(db *gorm.DB) RecordRepo {
	return &recordRepo{db: db}
}

// Create 插入一条记录
func (r *recordRepo) Create(ctx context.Context, record *model.ExpenseRecord) error {
	// WithContext 确保请求超时能传递到数据库层
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *recordRepo) GetByID(ctx context.Context, id string) (*model.ExpenseRecord, error) {
	var record model.ExpenseRecord
	// 没找到返回 gorm.ErrRecordNotFound，由上层翻译成用户可读的错误
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *recordRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.ExpenseRecord, error) {
	var records []model.ExpenseRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *recordRepo) ListAllByUser(ctx context.Context, userID string) ([]model.ExpenseRecord, error) {
	var records []model.ExpenseRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error
	return records, err
}

func (r *recordRepo) ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]model.ExpenseRecord, error) {
	var records []model.ExpenseRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *recordRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ExpenseRecord{}, "id = ?", id).Error
}
