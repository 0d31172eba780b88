package model

import (
	"strings"
)

// PredefinedCategories 固定的消费分类集合
// 既是表单里的候选项，也是 AI 分类调用唯一允许的输出
var PredefinedCategories = []string{
	"Food", "Transportation", "Entertainment", "Shopping",
	"Bills", "Healthcare", "Other",
}

// CategoryOther 所有无法归类的消费的兜底分类
const CategoryOther = "Other"

// GetCategoryPrompt 生成 Prompt 用的分类提示词
func GetCategoryPrompt() string {
	return strings.Join(PredefinedCategories, ", ")
}

// NormalizeCategory 严格白名单匹配：去掉首尾空白后必须和某个标签完全一致
// 其余一律归入 Other——不做大小写折叠，也不做模糊匹配，
// 模型输出"像某个分类但不在列表里"的值同样按 Other 处理
func NormalizeCategory(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, c := range PredefinedCategories {
		if trimmed == c {
			return c
		}
	}
	return CategoryOther
}
