package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onconav/oncograph/backend/internal/server/middleware"
	"github.com/onconav/oncograph/backend/pkg/kg"
)

// GetGraphHandler returns the full knowledge graph for the initial render.
func GetGraphHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	return c.JSON(http.StatusOK, app.Store.Graph())
}

// QueryGraphHandler runs classification and extraction for a question and
// returns the resulting subgraph without calling the model. The renderer
// uses this to refresh the graph view independently of a chat turn.
func QueryGraphHandler(c echo.Context) error {
	type queryGraphBody struct {
		Query string `json:"query" validate:"required"`
	}

	type queryGraphResponse struct {
		Message  string      `json:"message,omitempty"`
		Subgraph kg.Subgraph `json:"subgraph"`
	}

	data := new(queryGraphBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, queryGraphResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, queryGraphResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	intent := kg.ClassifyIntent(data.Query, app.Store.Lexicon())
	sub := app.Store.Extract(data.Query, intent)

	return c.JSON(http.StatusOK, queryGraphResponse{
		Subgraph: sub,
	})
}
