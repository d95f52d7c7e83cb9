package server

import (
	"github.com/labstack/echo/v4"

	"github.com/onconav/oncograph/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Graph routes
	apiRoutes.GET("/graph", routes.GetGraphHandler)
	apiRoutes.POST("/graph/query", routes.QueryGraphHandler)
	apiRoutes.POST("/graph/summary", routes.SummarizeGraphHandler)

	// Chat routes
	apiRoutes.POST("/chat", routes.PostChatHandler)
	apiRoutes.GET("/chats/:session_id", routes.GetChatHandler)

	// Export route
	apiRoutes.POST("/export", routes.ExportGraphHandler)
}
