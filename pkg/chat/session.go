// Package chat keeps in-memory chat transcripts. Sessions live for the
// lifetime of the process; nothing is persisted.
package chat

import (
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/onconav/oncograph/backend/pkg/kg"
)

// Message is a single chat bubble: either a user question or a bot answer.
// Bot messages carry the subgraph that backed the answer so the client can
// render it next to the text; user messages have no graph data.
type Message struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	IsUser    bool         `json:"is_user"`
	Timestamp time.Time    `json:"timestamp"`
	GraphData *kg.Subgraph `json:"graph_data,omitempty"`
}

// NewMessage creates a message with a fresh id and the current time.
func NewMessage(text string, isUser bool, graphData *kg.Subgraph) Message {
	return Message{
		ID:        gonanoid.Must(),
		Text:      text,
		IsUser:    isUser,
		Timestamp: time.Now(),
		GraphData: graphData,
	}
}

// SessionStore holds transcripts keyed by session id. Transcripts are
// append-only; messages are never edited or removed.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]Message
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[string][]Message{},
	}
}

// NewSession registers a new empty session and returns its id.
func (s *SessionStore) NewSession() string {
	id := gonanoid.Must()

	s.mu.Lock()
	s.sessions[id] = []Message{}
	s.mu.Unlock()

	return id
}

// Append adds a message to the session transcript, creating the session if
// it does not exist yet.
func (s *SessionStore) Append(sessionID string, msg Message) {
	s.mu.Lock()
	s.sessions[sessionID] = append(s.sessions[sessionID], msg)
	s.mu.Unlock()
}

// Messages returns a copy of the transcript for a session. The second
// return value reports whether the session exists.
func (s *SessionStore) Messages(sessionID string) ([]Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}

	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out, true
}
