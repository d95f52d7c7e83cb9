package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/onconav/oncograph/backend/pkg/ai"
)

func TestCheckCredentials(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		key     string
		wantErr bool
	}{
		{name: "empty key", url: "", key: "", wantErr: true},
		{name: "whitespace key", url: "", key: "   ", wantErr: true},
		{name: "placeholder key on default endpoint", url: "", key: "your-api-key-here", wantErr: true},
		{name: "sk key on default endpoint", url: "", key: "sk-test-123", wantErr: false},
		{name: "gateway key format allowed on custom endpoint", url: "https://llm.example.com/v1", key: "gw_abc123", wantErr: false},
		{name: "empty key still rejected on custom endpoint", url: "https://llm.example.com/v1", key: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := NewGraphOpenAIClient(NewGraphOpenAIClientParams{
				ChatModel: "gpt-4o-mini",
				ChatURL:   tc.url,
				ChatKey:   tc.key,
			})
			err := client.checkCredentials()
			if tc.wantErr && !errors.Is(err, ai.ErrMissingAPIKey) {
				t.Errorf("checkCredentials() = %v, want ErrMissingAPIKey", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("checkCredentials() = %v, want nil", err)
			}
		})
	}
}

// A missing key must short-circuit before any network traffic; the methods
// return the config error without a usable transport client.
func TestGenerationShortCircuitsWithoutKey(t *testing.T) {
	client := NewGraphOpenAIClient(NewGraphOpenAIClientParams{
		ChatModel: "gpt-4o-mini",
	})
	if client.ChatClient != nil {
		t.Fatalf("expected no transport client for an empty key")
	}

	ctx := context.Background()

	if _, err := client.GenerateCompletion(ctx, "hello"); !errors.Is(err, ai.ErrMissingAPIKey) {
		t.Errorf("GenerateCompletion() = %v, want ErrMissingAPIKey", err)
	}
	if _, err := client.GenerateChat(ctx, []ai.ChatMessage{{Role: "user", Message: "hello"}}); !errors.Is(err, ai.ErrMissingAPIKey) {
		t.Errorf("GenerateChat() = %v, want ErrMissingAPIKey", err)
	}
	var out struct {
		Title string `json:"title"`
	}
	if err := client.GenerateCompletionWithFormat(ctx, "t", "d", "hello", &out); !errors.Is(err, ai.ErrMissingAPIKey) {
		t.Errorf("GenerateCompletionWithFormat() = %v, want ErrMissingAPIKey", err)
	}
}

func TestMetricsAccumulation(t *testing.T) {
	client := NewGraphOpenAIClient(NewGraphOpenAIClientParams{ChatKey: "sk-test"})

	client.modifyMetrics(ai.ModelMetrics{InputTokens: 100, OutputTokens: 50, TotalTokens: 150, DurationMs: 1000})
	client.modifyMetrics(ai.ModelMetrics{InputTokens: 10, OutputTokens: 5, TotalTokens: 15, DurationMs: 100})

	got := client.GetMetrics()
	if got.TotalTokens != 165 || got.DurationMs != 1100 {
		t.Errorf("GetMetrics() = %+v, want accumulated totals", got)
	}
	if got.TokenPerSecond <= 0 {
		t.Errorf("TokenPerSecond = %v, want positive", got.TokenPerSecond)
	}

	client.ResetMetrics()
	if got := client.GetMetrics(); got.TotalTokens != 0 {
		t.Errorf("GetMetrics() after reset = %+v, want zero", got)
	}
}
