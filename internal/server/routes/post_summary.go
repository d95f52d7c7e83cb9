package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onconav/oncograph/backend/internal/server/middleware"
	"github.com/onconav/oncograph/backend/pkg/ai"
	"github.com/onconav/oncograph/backend/pkg/kg"
	"github.com/onconav/oncograph/backend/pkg/logger"
	"github.com/onconav/oncograph/backend/pkg/query"
)

// SummarizeGraphHandler generates a structured summary of a subgraph for
// display next to the graph visualization.
func SummarizeGraphHandler(c echo.Context) error {
	type summaryBody struct {
		Nodes []kg.Node `json:"nodes" validate:"required,min=1"`
		Edges []kg.Edge `json:"edges"`
		Model string    `json:"model"`
	}

	type summaryResponse struct {
		Message   string             `json:"message,omitempty"`
		ErrorKind string             `json:"error_kind,omitempty"`
		Summary   *query.GraphSummary `json:"summary,omitempty"`
	}

	data := new(summaryBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, summaryResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, summaryResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	opts := []query.QueryOption{}
	if data.Model != "" {
		opts = append(opts, query.WithModel(data.Model))
	}
	qc := query.NewQueryClient(app.AiClient, app.Store, opts...)

	sub := kg.Subgraph{Nodes: data.Nodes, Edges: data.Edges}.WithClosedEdges()
	summary, err := qc.Summarize(ctx, sub)
	if err != nil {
		logger.Error("Subgraph summary failed", "kind", ai.ErrorKind(err), "err", err)
		return c.JSON(http.StatusOK, summaryResponse{
			Message:   ai.UserMessage(err),
			ErrorKind: ai.ErrorKind(err),
		})
	}

	return c.JSON(http.StatusOK, summaryResponse{
		Summary: &summary,
	})
}
