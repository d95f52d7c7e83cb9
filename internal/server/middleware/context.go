package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/onconav/oncograph/backend/pkg/ai"
	"github.com/onconav/oncograph/backend/pkg/chat"
	"github.com/onconav/oncograph/backend/pkg/kg"
)

// App bundles the process-wide dependencies handlers need: the loaded
// knowledge graph store, the AI client, and the in-memory chat sessions.
type App struct {
	Store    *kg.Store
	AiClient ai.GraphAIClient
	Sessions *chat.SessionStore
}

type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware wraps every request context with the shared App so
// handlers can reach the store, AI client, and sessions without globals.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
