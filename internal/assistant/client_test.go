package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-deepseek/deepseek/request"
	"github.com/go-deepseek/deepseek/response"
)

type fakeCaller struct {
	reply    string
	err      error
	lastUser string
	lastSys  string
}

func (f *fakeCaller) CallChatCompletionsChat(ctx context.Context, req *request.ChatCompletionsRequest) (*response.ChatCompletionsResponse, error) {
	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			f.lastSys = msg.Content
		case "user":
			f.lastUser = msg.Content
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &response.ChatCompletionsResponse{
		Choices: []*response.Choice{
			{Message: &response.Message{Role: "assistant", Content: f.reply}},
		},
	}, nil
}

func TestClassifyReturnsKnownLabel(t *testing.T) {
	caller := &fakeCaller{reply: " 研發 \n"}
	client := newWithCaller(caller, "deepseek-chat", time.Second)

	category, err := client.Classify(context.Background(), "修掉登入頁面的 bug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category != "研發" {
		t.Fatalf("expected 研發, got %q", category)
	}
	if caller.lastUser != "修掉登入頁面的 bug" {
		t.Fatalf("expected reminder content as user message, got %q", caller.lastUser)
	}
}

func TestClassifyRejectsUnknownLabel(t *testing.T) {
	caller := &fakeCaller{reply: "這應該是研發類的工作"}
	client := newWithCaller(caller, "deepseek-chat", time.Second)

	if _, err := client.Classify(context.Background(), "修 bug"); err == nil {
		t.Fatalf("expected error for unrecognised label")
	}
}

func TestClassifyPropagatesAPIError(t *testing.T) {
	caller := &fakeCaller{err: errors.New("rate limited")}
	client := newWithCaller(caller, "deepseek-chat", time.Second)

	if _, err := client.Classify(context.Background(), "修 bug"); err == nil {
		t.Fatalf("expected API error to propagate")
	}
}

func TestSummarizeIncludesEveryItem(t *testing.T) {
	caller := &fakeCaller{reply: "今天有兩件事要做。"}
	client := newWithCaller(caller, "deepseek-chat", time.Second)

	summary, err := client.Summarize(context.Background(), []string{"交週報", "買牛奶"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "今天有兩件事要做。" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	for _, item := range []string{"交週報", "買牛奶"} {
		if !strings.Contains(caller.lastUser, item) {
			t.Fatalf("expected prompt to contain %q, got %q", item, caller.lastUser)
		}
	}
}

func TestSummarizeEmptyDaySkipsAPI(t *testing.T) {
	caller := &fakeCaller{err: errors.New("must not be called")}
	client := newWithCaller(caller, "deepseek-chat", time.Second)

	summary, err := client.Summarize(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary == "" {
		t.Fatalf("expected a canned summary for an empty day")
	}
}
