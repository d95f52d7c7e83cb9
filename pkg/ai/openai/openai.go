package openai

import (
	"errors"
	"math"
	"net/url"
	"strings"
	"sync"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/onconav/oncograph/backend/pkg/ai"
)

// GraphOpenAIClient implements ai.GraphAIClient against an OpenAI-compatible
// chat completion endpoint. A GraphOpenAIClient should be created using
// NewGraphOpenAIClient.
type GraphOpenAIClient struct {
	chatModel string

	chatURL string
	chatKey string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewGraphOpenAIClientParams defines the configuration for creating a new
// GraphOpenAIClient. ChatURL may be empty to target the default OpenAI
// endpoint; ChatKey is the bearer credential.
type NewGraphOpenAIClientParams struct {
	ChatModel string

	ChatURL string
	ChatKey string
}

// NewGraphOpenAIClient creates a client configured with the provided
// parameters. An empty key yields a client whose requests fail locally with
// ai.ErrMissingAPIKey instead of reaching the network.
func NewGraphOpenAIClient(params NewGraphOpenAIClientParams) *GraphOpenAIClient {
	return &GraphOpenAIClient{
		chatModel: params.ChatModel,

		chatURL: params.ChatURL,
		chatKey: params.ChatKey,

		metricsLock: sync.Mutex{},
		metrics:     ai.ModelMetrics{},

		ChatClient: newOpenaiClient(params.ChatURL, params.ChatKey),
	}
}

func newOpenaiClient(baseURL string, apiKey string) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}

// checkCredentials validates the configured key before any network call.
// The "sk-" prefix check only applies when targeting the default OpenAI
// endpoint; compatible gateways use other key formats.
func (c *GraphOpenAIClient) checkCredentials() error {
	key := strings.TrimSpace(c.chatKey)
	if c.ChatClient == nil || key == "" {
		return ai.ErrMissingAPIKey
	}
	if c.chatURL == "" && !strings.HasPrefix(key, "sk-") {
		return ai.ErrMissingAPIKey
	}
	return nil
}

// classifyError maps provider and transport failures onto the ai error
// taxonomy while preserving the original error text.
func classifyError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return errors.Join(ai.ErrUnauthorized, err)
		case apiErr.StatusCode == 429:
			return errors.Join(ai.ErrRateLimited, err)
		case apiErr.StatusCode >= 500:
			return errors.Join(ai.ErrUpstream, err)
		}
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return errors.Join(ai.ErrNetwork, err)
	}

	return err
}

// ResetMetrics clears all accumulated token and timing metrics to zero.
func (c *GraphOpenAIClient) ResetMetrics() {
	c.metricsLock.Lock()
	c.metrics = ai.ModelMetrics{}
	c.metricsLock.Unlock()
}

// GetMetrics returns the accumulated token usage and timing metrics since
// the last reset.
func (c *GraphOpenAIClient) GetMetrics() ai.ModelMetrics {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	return c.metrics
}

func (c *GraphOpenAIClient) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs

	if c.metrics.DurationMs > 0 {
		tokensPerSecond := (float64(c.metrics.TotalTokens) * 1000.0) / float64(c.metrics.DurationMs)
		c.metrics.TokenPerSecond = float32(math.Round(tokensPerSecond*100) / 100)
	}
}
