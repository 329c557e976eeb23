// Package assistant wraps the DeepSeek chat API for reminder classification
// and daily summaries.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-deepseek/deepseek"
	"github.com/go-deepseek/deepseek/request"
	"github.com/go-deepseek/deepseek/response"
)

// Categories are the labels the classifier may assign.
var Categories = []string{"研發", "行政", "個人", "其他"}

// CategoryFallback is assigned when classification fails or returns an
// unrecognised label.
const CategoryFallback = "其他"

const classifySystemPrompt = "你是一個提醒事項分類助手。請將使用者提供的提醒內容分類為以下其中一類:研發、行政、個人、其他。只回覆分類名稱,不要加任何其他文字。"

const summarizeSystemPrompt = "你是一個貼心的個人助理。請根據使用者今天的提醒事項清單,用繁體中文寫一段簡短的摘要,點出今天的重點安排。"

// chatCaller is the narrow SDK surface used by the client, extracted so tests
// can substitute a fake.
type chatCaller interface {
	CallChatCompletionsChat(ctx context.Context, req *request.ChatCompletionsRequest) (*response.ChatCompletionsResponse, error)
}

// Client issues classification and summary requests against the DeepSeek API.
type Client struct {
	caller  chatCaller
	model   string
	timeout time.Duration
}

// New returns a client authenticated with the given API key. The model name
// selects the DeepSeek chat model; an empty timeout defaults to 15 seconds.
func New(apiKey, model string, timeout time.Duration) (*Client, error) {
	caller, err := deepseek.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("assistant: create client: %w", err)
	}
	return newWithCaller(caller, model, timeout), nil
}

func newWithCaller(caller chatCaller, model string, timeout time.Duration) *Client {
	if model == "" {
		model = "deepseek-chat"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{caller: caller, model: model, timeout: timeout}
}

// Classify assigns one of the known category labels to the reminder content.
// An unrecognised model reply is an error; callers fall back to
// CategoryFallback.
func (c *Client) Classify(ctx context.Context, content string) (string, error) {
	reply, err := c.chat(ctx, classifySystemPrompt, content)
	if err != nil {
		return "", err
	}

	label := strings.TrimSpace(reply)
	for _, category := range Categories {
		if label == category {
			return category, nil
		}
	}
	return "", fmt.Errorf("assistant: unrecognised category %q", label)
}

// Summarize produces a short natural-language summary of today's reminders.
func (c *Client) Summarize(ctx context.Context, items []string) (string, error) {
	if len(items) == 0 {
		return "今天沒有任何提醒事項,好好放鬆一下吧!", nil
	}

	var prompt strings.Builder
	prompt.WriteString("今天的提醒事項:\n")
	for _, item := range items {
		prompt.WriteString("- ")
		prompt.WriteString(item)
		prompt.WriteString("\n")
	}

	reply, err := c.chat(ctx, summarizeSystemPrompt, prompt.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

func (c *Client) chat(ctx context.Context, system, user string) (string, error) {
	req := &request.ChatCompletionsRequest{
		Model: c.model,
		Messages: []*request.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Stream: false,
	}

	resp, err := c.caller.CallChatCompletionsChat(ctx, req)
	if err != nil {
		return "", fmt.Errorf("assistant: chat request: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("assistant: empty chat response")
	}
	return resp.Choices[0].Message.Content, nil
}
