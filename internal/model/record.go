package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate 手动录入的日期串无法按 YYYY-MM-DD 解析
var ErrInvalidDate = errors.New("日期格式无效")

// ExpenseRecord 是映射数据库表的结构体
// 记录一旦创建就不再修改（产品上没有"编辑账单"功能），只能由本人删除
type ExpenseRecord struct {
	ID     string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID string `gorm:"type:varchar(64);index" json:"user_id"`

	Description string  `gorm:"type:text" json:"description"`
	Amount      float64 `gorm:"type:decimal(10,2)" json:"amount"`
	Category    string  `gorm:"type:varchar(64)" json:"category"`

	// OccurredAt 统一存为记账日的 UTC 正午
	// 这样不管客户端在哪个时区，按天聚合和星期几分析都不会出现日期漂移
	OccurredAt time.Time `gorm:"index" json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName 强制指定表名
func (ExpenseRecord) TableName() string {
	return "expense_records"
}

// DateKey 返回记录归属的 UTC 日历日，格式 YYYY-MM-DD
func (r ExpenseRecord) DateKey() string {
	return r.OccurredAt.UTC().Format("2006-01-02")
}

// ParseEntryDate 解析前端传来的 "YYYY-MM-DD" 日期串
// 解析成功后归一化为当天的 UTC 正午（见 OccurredAt 的注释），失败返回用户可读的错误
func ParseEntryDate(input string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}
