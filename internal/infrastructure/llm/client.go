package llm

import "context"

// Request 一次对话补全所需的全部参数
// 三类调用（结论/分类/问答）各自有不同的温度和输出上限
type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Provider 定义了托管大模型的通用行为
// 上层只依赖这个接口，测试时注入假实现即可
type Provider interface {
	// Complete 发起一次补全调用，返回模型的原始文本
	// 这一层不做重试：一次用户操作最多触发一次上游调用，
	// 失败交给上层的降级策略统一兜底（固定的延迟/成本上界，不是疏漏）
	Complete(ctx context.Context, req Request) (string, error)
}
