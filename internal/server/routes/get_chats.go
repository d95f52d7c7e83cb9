package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onconav/oncograph/backend/internal/server/middleware"
	"github.com/onconav/oncograph/backend/pkg/chat"
)

// GetChatHandler returns the full transcript of a chat session.
func GetChatHandler(c echo.Context) error {
	type chatTranscriptResponse struct {
		Message   string         `json:"message,omitempty"`
		SessionID string         `json:"session_id,omitempty"`
		Messages  []chat.Message `json:"messages,omitempty"`
	}

	sessionID := c.Param("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, chatTranscriptResponse{
			Message: "Missing session id",
		})
	}

	app := c.(*middleware.AppContext).App
	msgs, ok := app.Sessions.Messages(sessionID)
	if !ok {
		return c.JSON(http.StatusNotFound, chatTranscriptResponse{
			Message: "Session not found",
		})
	}

	return c.JSON(http.StatusOK, chatTranscriptResponse{
		SessionID: sessionID,
		Messages:  msgs,
	})
}
