package model

// InsightType 结论的类型标签，前端据此决定图标和配色
type InsightType string

const (
	InsightTypeWarning InsightType = "warning"
	InsightTypeInfo    InsightType = "info"
	InsightTypeSuccess InsightType = "success"
	InsightTypeTip     InsightType = "tip"
)

// AIInsight 是返回给前端的单条 AI 结论
// ID 在每次生成时临时分配，跨请求不保证稳定，也不落库
type AIInsight struct {
	ID      string      `json:"id"`
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	// Action 可选的行动建议，模型没给就整个省略
	Action string `json:"action,omitempty"`
	// Confidence 取值 [0,1]。1.0 只出现在策略默认内容上，
	// 用来和真正的模型输出区分开
	Confidence float64 `json:"confidence"`
}

// ExpenseProjection 是喂给模型的消费数据投影
// 只含金额、分类、描述、日期四个字段，内部 ID 绝不出境
type ExpenseProjection struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// ProjectRecords 把记录窗口投影成模型可见的精简结构
func ProjectRecords(records []ExpenseRecord) []ExpenseProjection {
	out := make([]ExpenseProjection, 0, len(records))
	for _, r := range records {
		out = append(out, ExpenseProjection{
			Amount:      r.Amount,
			Category:    r.Category,
			Description: r.Description,
			Date:        r.OccurredAt.UTC().Format("2006-01-02"),
		})
	}
	return out
}
