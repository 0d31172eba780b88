package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"合法标签原样通过", "Food", "Food"},
		{"首尾空白被去掉", "  Transportation \n", "Transportation"},
		{"Other 本身", "Other", "Other"},
		{"空串", "", "Other"},
		{"小写变体", "food", "Other"},
		{"全大写变体", "FOOD", "Other"},
		{"貌似合理但不在列表", "Groceries", "Other"},
		{"无关文本", "我觉得这属于餐饮", "Other"},
		{"多个标签", "Food, Bills", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCategory(tt.input))
		})
	}
}

func TestGetCategoryPrompt(t *testing.T) {
	prompt := GetCategoryPrompt()
	for _, c := range PredefinedCategories {
		assert.Contains(t, prompt, c)
	}
}
