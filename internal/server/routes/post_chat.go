package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onconav/oncograph/backend/internal/server/middleware"
	"github.com/onconav/oncograph/backend/pkg/ai"
	"github.com/onconav/oncograph/backend/pkg/chat"
	"github.com/onconav/oncograph/backend/pkg/logger"
	"github.com/onconav/oncograph/backend/pkg/query"
)

// PostChatHandler runs one full chat turn: record the user message,
// retrieve a subgraph for it, ask the model, and record the bot reply.
//
// Model failures are not HTTP errors. The failure is translated into a
// fixed user-facing sentence and returned as a regular bot message with no
// graph data, so the client renders it as a chat bubble.
func PostChatHandler(c echo.Context) error {
	type chatBody struct {
		Message   string `json:"message" validate:"required"`
		SessionID string `json:"session_id"`
		Model     string `json:"model"`
		Think     string `json:"think"`
	}

	type chatResponse struct {
		Message    string          `json:"message,omitempty"`
		SessionID  string          `json:"session_id,omitempty"`
		Reply      *chat.Message   `json:"reply,omitempty"`
		ErrorKind  string          `json:"error_kind,omitempty"`
		ContextTok int             `json:"context_tokens,omitempty"`
		Metrics    ai.ModelMetrics `json:"metrics"`
	}

	data := new(chatBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, chatResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, chatResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	sessionID := data.SessionID
	if sessionID == "" {
		sessionID = app.Sessions.NewSession()
	}
	app.Sessions.Append(sessionID, chat.NewMessage(data.Message, true, nil))

	opts := []query.QueryOption{}
	if data.Model != "" {
		opts = append(opts, query.WithModel(data.Model))
	}
	if data.Think != "" {
		opts = append(opts, query.WithThinking(data.Think))
	}
	qc := query.NewQueryClient(app.AiClient, app.Store, opts...)

	answer, err := qc.Query(ctx, data.Message)
	if err != nil {
		logger.Error("Chat turn failed", "session", sessionID, "kind", ai.ErrorKind(err), "err", err)
		reply := chat.NewMessage(ai.UserMessage(err), false, nil)
		app.Sessions.Append(sessionID, reply)
		return c.JSON(http.StatusOK, chatResponse{
			SessionID: sessionID,
			Reply:     &reply,
			ErrorKind: ai.ErrorKind(err),
			Metrics:   app.AiClient.GetMetrics(),
		})
	}

	reply := chat.NewMessage(answer.Text, false, &answer.Subgraph)
	app.Sessions.Append(sessionID, reply)

	return c.JSON(http.StatusOK, chatResponse{
		SessionID:  sessionID,
		Reply:      &reply,
		ContextTok: answer.ContextTokens,
		Metrics:    app.AiClient.GetMetrics(),
	})
}
