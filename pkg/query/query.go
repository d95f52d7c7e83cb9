// Package query orchestrates a single question-answer turn: classify the
// question, extract a bounded subgraph from the knowledge graph, and forward
// both to the configured model.
package query

import (
	"context"
	"fmt"

	"github.com/onconav/oncograph/backend/pkg/ai"
	"github.com/onconav/oncograph/backend/pkg/kg"
)

// QueryOptions holds per-client configuration for question answering.
type QueryOptions struct {
	Model    string // Model identifier, empty uses the adapter default
	Thinking string // Extended thinking mode, empty disables it
}

// QueryOption is a functional option for configuring a QueryClient.
type QueryOption func(*QueryOptions)

// WithModel sets the model used for answer generation.
func WithModel(model string) QueryOption {
	return func(o *QueryOptions) {
		o.Model = model
	}
}

// WithThinking enables extended thinking mode for answer generation.
func WithThinking(thinking string) QueryOption {
	return func(o *QueryOptions) {
		o.Thinking = thinking
	}
}

// QueryClient answers questions against a knowledge graph store using an
// AI client. Each question is handled as an independent single-shot turn;
// no conversation history is sent to the model.
type QueryClient struct {
	aiClient ai.GraphAIClient
	store    *kg.Store
	options  QueryOptions
}

// NewQueryClient creates a QueryClient bound to the given store and AI
// client.
func NewQueryClient(
	aiClient ai.GraphAIClient,
	store *kg.Store,
	opts ...QueryOption,
) *QueryClient {
	options := QueryOptions{}
	for _, o := range opts {
		o(&options)
	}

	return &QueryClient{
		aiClient: aiClient,
		store:    store,
		options:  options,
	}
}

// Answer is the result of one question-answer turn.
type Answer struct {
	Text          string      `json:"text"`
	Subgraph      kg.Subgraph `json:"subgraph"`
	ContextTokens int         `json:"context_tokens"`
}

// GraphSummary is a structured model-generated summary of a subgraph.
type GraphSummary struct {
	Title       string   `json:"title" jsonschema_description:"Short title for the subgraph"`
	KeyFindings []string `json:"key_findings" jsonschema_description:"2-5 self-contained finding sentences"`
}

// Retrieve runs classification and extraction for a question without
// calling the model.
func (c *QueryClient) Retrieve(question string) (kg.Intent, kg.Subgraph) {
	intent := kg.ClassifyIntent(question, c.store.Lexicon())
	return intent, c.store.Extract(question, intent)
}

// Query answers a single question. The extracted subgraph is embedded in
// the system prompt and the question is sent as the only user message. When
// nothing relevant is found in the graph the model is told so explicitly
// and asked not to speculate.
func (c *QueryClient) Query(ctx context.Context, question string) (Answer, error) {
	_, sub := c.Retrieve(question)

	contextBlock := kg.FormatContext(sub, c.store.ContextHeader())

	text, err := c.aiClient.GenerateChat(
		ctx,
		[]ai.ChatMessage{{Role: "user", Message: question}},
		c.generateOptions(fmt.Sprintf(ai.AnswerPrompt, contextBlock))...,
	)
	if err != nil {
		return Answer{}, err
	}

	return Answer{
		Text:          text,
		Subgraph:      sub,
		ContextTokens: kg.CountTokens(contextBlock),
	}, nil
}

// Summarize generates a structured summary of a subgraph for display next
// to the graph visualization.
func (c *QueryClient) Summarize(ctx context.Context, sub kg.Subgraph) (GraphSummary, error) {
	contextBlock := kg.FormatContext(sub, c.store.ContextHeader())

	var out GraphSummary
	err := c.aiClient.GenerateCompletionWithFormat(
		ctx,
		"graph_summary",
		"A structured summary of a knowledge graph excerpt",
		fmt.Sprintf(ai.SummaryPrompt, contextBlock),
		&out,
		c.generateOptions()...,
	)
	if err != nil {
		return GraphSummary{}, err
	}

	return out, nil
}

func (c *QueryClient) generateOptions(systemPrompts ...string) []ai.GenerateOption {
	opts := []ai.GenerateOption{}
	if len(systemPrompts) > 0 {
		opts = append(opts, ai.WithSystemPrompts(systemPrompts...))
	}
	if c.options.Model != "" {
		opts = append(opts, ai.WithModel(c.options.Model))
	}
	if c.options.Thinking != "" {
		opts = append(opts, ai.WithThinking(c.options.Thinking))
	}
	return opts
}
