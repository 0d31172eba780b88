package llm

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

// OpenRouterClient 通过 OpenAI 兼容协议调用 OpenRouter 上托管的模型
// 换成任何兼容 /chat/completions 的服务只需要改 baseUrl
type OpenRouterClient struct {
	modelName string
	client    *openai.Client
}

func NewOpenRouterClient(apiKey, baseUrl, modelName string) *OpenRouterClient {
	config := openai.DefaultConfig(apiKey)
	if baseUrl != "" {
		config.BaseURL = baseUrl
	}

	return &OpenRouterClient{
		modelName: modelName,
		client:    openai.NewClientWithConfig(config),
	}
}

// Complete 一次非流式补全
// 不在这里设置超时：请求整体的超时策略由上层的 ctx 决定
func (c *OpenRouterClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("模型没有返回任何内容")
	}
	return resp.Choices[0].Message.Content, nil
}
