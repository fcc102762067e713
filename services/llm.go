package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// LLMClient 大模型客户端，所有文本/图像理解请求共用一个连接
type LLMClient struct {
	Chat llms.Model
}

func NewLLMClient(apiKey, apiEndpoint, model string) (*LLMClient, error) {
	if model == "" {
		model = "gpt-4o-mini"
	}
	chat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &LLMClient{
		Chat: chat,
	}, nil
}
