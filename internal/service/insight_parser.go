package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rody-huancas/expense-tracker-api/internal/model"
)

// 结论字段的兜底默认值，模型漏字段时在解析边界统一补齐
const (
	defaultInsightTitle   = "AI 结论"
	defaultInsightMessage = "分析完成"
	defaultConfidence     = 0.8
)

// rawInsight 模型返回的单条结论，字段全部可缺省
// 模型输出不可信，这里宁可全零值也不能解析崩掉
type rawInsight struct {
	Type       string  `json:"type"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
}

// stripCodeFence 去掉模型偶尔包裹的 Markdown 代码块标记
// 认识 "```json" 和裸的 "```" 两种前缀，其余情况原样返回
func stripCodeFence(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```json") {
		out = strings.TrimPrefix(out, "```json")
	} else if strings.HasPrefix(out, "```") {
		out = strings.TrimPrefix(out, "```")
	} else {
		return out
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}

// parseInsightResponse 把模型的原始回复解析成结构化的结论列表
// 任何结构性问题（空回复、不是 JSON、不是数组）都返回错误，交给降级策略兜底
// ID 用时间戳加序号现场生成，只要求同一批内不重复
func parseInsightResponse(raw string) ([]model.AIInsight, error) {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil, errors.New("模型回复为空")
	}

	var items []rawInsight
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("模型回复不是合法的 JSON 数组: %w", err)
	}
	if items == nil {
		// "null" 也能通过 Unmarshal，但不是我们要的数组
		return nil, errors.New("模型回复不是 JSON 数组")
	}

	batch := time.Now().UnixMilli()
	insights := make([]model.AIInsight, 0, len(items))
	for i, item := range items {
		insight := model.AIInsight{
			ID:         fmt.Sprintf("ai-%d-%d", batch, i),
			Type:       model.InsightType(item.Type),
			Title:      item.Title,
			Message:    item.Message,
			Action:     item.Action,
			Confidence: item.Confidence,
		}
		if insight.Type == "" {
			insight.Type = model.InsightTypeInfo
		}
		if insight.Title == "" {
			insight.Title = defaultInsightTitle
		}
		if insight.Message == "" {
			insight.Message = defaultInsightMessage
		}
		// 缺省和 0 都按默认置信度处理，有些模型会直接省掉这个字段
		if insight.Confidence == 0 {
			insight.Confidence = defaultConfidence
		}
		insights = append(insights, insight)
	}
	return insights, nil
}

// parseAnswerResponse 自由问答只做最低限度的校验：去空白、非空
func parseAnswerResponse(raw string) (string, error) {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return "", errors.New("模型回复为空")
	}
	return answer, nil
}
