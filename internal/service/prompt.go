package service

import (
	"encoding/json"
	"fmt"

	"github.com/rody-huancas/expense-tracker-api/internal/infrastructure/llm"
	"github.com/rody-huancas/expense-tracker-api/internal/model"
)

// 三类调用各自的生成参数
// 分类要求近乎确定性的输出所以用低温；结论和问答允许一定发散
const (
	insightTemperature float32 = 0.7
	insightMaxTokens           = 1000

	categoryTemperature float32 = 0.1
	categoryMaxTokens           = 20

	answerTemperature float32 = 0.7
	answerMaxTokens           = 200
)

// System Prompt 固定模型的人设和输出协议
const (
	insightSystemPrompt = `你是一个分析消费模式并给出可执行结论的 AI 财务助手。永远只回复合法的 JSON，不要任何其他内容。`

	answerSystemPrompt = `你是一个基于消费数据给出具体、可执行建议的 AI 财务助手。回答要简洁但完整。`
)

// categorySystemPrompt 分类调用的人设
// 分类标签固定用英文枚举值，前端和数据库都按这套标签对齐
func categorySystemPrompt() string {
	return fmt.Sprintf(`你是一个消费分类助手。把消费归入以下标签之一: %s。只回复标签本身，不要任何其他内容。`, model.GetCategoryPrompt())
}

// buildInsightRequest 构造结论生成调用
// 窗口数据以 JSON 投影嵌入 user prompt，要求模型返回结论对象数组
func buildInsightRequest(window []model.ExpenseProjection) (llm.Request, error) {
	data, err := json.MarshalIndent(window, "", "  ")
	if err != nil {
		return llm.Request{}, fmt.Errorf("序列化消费窗口失败: %w", err)
	}

	user := fmt.Sprintf(`分析以下消费数据，给出 3-4 条可执行的财务结论。
返回一个 JSON 数组，每个元素符合这个结构：
{
  "type": "warning|info|success|tip",
  "title": "简短标题",
  "message": "带具体数字的详细结论",
  "action": "可执行的建议",
  "confidence": 0.8
}

消费数据：
%s

重点关注：
1. 消费模式（星期几、分类集中度）
2. 预算警报（高消费的分类）
3. 省钱机会
4. 对好习惯的正向鼓励

只返回合法的 JSON 数组，不要附加任何文字。`, data)

	return llm.Request{
		System:      insightSystemPrompt,
		User:        user,
		Temperature: insightTemperature,
		MaxTokens:   insightMaxTokens,
	}, nil
}

// buildCategoryRequest 构造分类建议调用
func buildCategoryRequest(description string) llm.Request {
	return llm.Request{
		System:      categorySystemPrompt(),
		User:        fmt.Sprintf(`给这笔消费分类: %q`, description),
		Temperature: categoryTemperature,
		MaxTokens:   categoryMaxTokens,
	}
}

// buildAnswerRequest 构造自由问答调用，窗口数据作为回答的证据
func buildAnswerRequest(question string, window []model.ExpenseProjection) (llm.Request, error) {
	data, err := json.MarshalIndent(window, "", "  ")
	if err != nil {
		return llm.Request{}, fmt.Errorf("序列化消费窗口失败: %w", err)
	}

	user := fmt.Sprintf(`基于以下消费数据，详细回答这个问题: %q

消费数据：
%s

回答要求：
1. 直接回答问题本身
2. 尽量引用数据里的具体数字
3. 给出可执行的建议
4. 控制在 2-3 句话，简洁但有信息量

只返回回答的正文，不要任何额外格式。`, question, data)

	return llm.Request{
		System:      answerSystemPrompt,
		User:        user,
		Temperature: answerTemperature,
		MaxTokens:   answerMaxTokens,
	}, nil
}
