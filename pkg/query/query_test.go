package query

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/onconav/oncograph/backend/pkg/ai"
	"github.com/onconav/oncograph/backend/pkg/kg"
)

// fakeAIClient records the last request it saw and returns canned output.
type fakeAIClient struct {
	reply   string
	err     error
	lastMsg []ai.ChatMessage
	lastOpt ai.GenerateOptions
}

func (f *fakeAIClient) GenerateCompletion(ctx context.Context, prompt string, opts ...ai.GenerateOption) (string, error) {
	for _, o := range opts {
		o(&f.lastOpt)
	}
	return f.reply, f.err
}

func (f *fakeAIClient) GenerateCompletionWithFormat(ctx context.Context, name, description, prompt string, out any, opts ...ai.GenerateOption) error {
	for _, o := range opts {
		o(&f.lastOpt)
	}
	if f.err != nil {
		return f.err
	}
	return ai.UnmarshalFlexible(f.reply, out)
}

func (f *fakeAIClient) GenerateChat(ctx context.Context, messages []ai.ChatMessage, opts ...ai.GenerateOption) (string, error) {
	f.lastMsg = messages
	for _, o := range opts {
		o(&f.lastOpt)
	}
	return f.reply, f.err
}

func (f *fakeAIClient) ResetMetrics() {}

func (f *fakeAIClient) GetMetrics() ai.ModelMetrics { return ai.ModelMetrics{} }

func testStore() *kg.Store {
	graph := kg.Graph{
		Meta: kg.Meta{Description: "It is a test graph."},
		Nodes: []kg.Node{
			{ID: "egfr", Label: "EGFR", Type: kg.NodeGene},
			{ID: "lung_cancer", Label: "Lung cancer", Type: kg.NodeDisease},
			{ID: "erlotinib", Label: "Erlotinib", Type: kg.NodeDrug},
		},
		Edges: []kg.Edge{
			{Source: "egfr", Target: "lung_cancer", Relation: "associated_with"},
			{Source: "erlotinib", Target: "egfr", Relation: "targets"},
		},
	}
	return kg.NewStore(graph, kg.DefaultLexicon())
}

func TestQueryPairsAnswerWithSubgraph(t *testing.T) {
	fake := &fakeAIClient{reply: "EGFR is associated with lung cancer."}
	qc := NewQueryClient(fake, testStore())

	answer, err := qc.Query(context.Background(), "Tell me about EGFR")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if answer.Text != fake.reply {
		t.Errorf("Text = %q, want the model reply", answer.Text)
	}
	if len(answer.Subgraph.Nodes) == 0 {
		t.Errorf("Subgraph is empty, want the extracted nodes")
	}
	if kg.CountTokens("EGFR") > 0 && answer.ContextTokens <= 0 {
		t.Errorf("ContextTokens = %d, want positive", answer.ContextTokens)
	}

	// Single-shot: exactly one user message, no history.
	if len(fake.lastMsg) != 1 || fake.lastMsg[0].Role != "user" {
		t.Fatalf("messages = %+v, want a single user message", fake.lastMsg)
	}
	// The extracted context rides in the system prompt.
	if len(fake.lastOpt.SystemPrompts) != 1 {
		t.Fatalf("system prompts = %d, want 1", len(fake.lastOpt.SystemPrompts))
	}
	if !strings.Contains(fake.lastOpt.SystemPrompts[0], "EGFR (egfr)") {
		t.Errorf("system prompt does not carry the extracted entities:\n%s", fake.lastOpt.SystemPrompts[0])
	}
}

func TestQueryEmptySubgraphSendsFixedSentence(t *testing.T) {
	fake := &fakeAIClient{reply: "I could not find anything."}
	qc := NewQueryClient(fake, testStore())

	answer, err := qc.Query(context.Background(), "How is the weather today?")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(answer.Subgraph.Nodes) != 0 {
		t.Errorf("Subgraph = %+v, want empty", answer.Subgraph)
	}
	if !strings.Contains(fake.lastOpt.SystemPrompts[0], kg.NoContextMessage) {
		t.Errorf("system prompt missing the fixed no-information sentence")
	}
}

func TestQueryPropagatesModelError(t *testing.T) {
	fake := &fakeAIClient{err: ai.ErrRateLimited}
	qc := NewQueryClient(fake, testStore())

	answer, err := qc.Query(context.Background(), "Tell me about EGFR")
	if !errors.Is(err, ai.ErrRateLimited) {
		t.Fatalf("Query() error = %v, want ErrRateLimited", err)
	}
	if len(answer.Subgraph.Nodes) != 0 || answer.Text != "" {
		t.Errorf("Query() on error = %+v, want zero answer", answer)
	}
}

func TestQueryOptionsForwarded(t *testing.T) {
	fake := &fakeAIClient{reply: "ok"}
	qc := NewQueryClient(fake, testStore(), WithModel("gpt-4o"), WithThinking("low"))

	if _, err := qc.Query(context.Background(), "Tell me about EGFR"); err != nil {
		t.Fatal(err)
	}
	if fake.lastOpt.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", fake.lastOpt.Model)
	}
	if fake.lastOpt.Thinking != "low" {
		t.Errorf("Thinking = %q, want low", fake.lastOpt.Thinking)
	}
}

func TestSummarize(t *testing.T) {
	fake := &fakeAIClient{reply: `{"title":"EGFR neighborhood","key_findings":["EGFR is associated with lung cancer.","Erlotinib targets EGFR."]}`}
	qc := NewQueryClient(fake, testStore())

	sub := kg.Subgraph{
		Nodes: []kg.Node{{ID: "egfr", Label: "EGFR", Type: kg.NodeGene}},
	}
	summary, err := qc.Summarize(context.Background(), sub)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.Title != "EGFR neighborhood" || len(summary.KeyFindings) != 2 {
		t.Errorf("Summarize() = %+v, want parsed structured output", summary)
	}
}
