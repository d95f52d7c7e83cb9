package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/onconav/oncograph/backend/pkg/kg"
)

// ExportGraphHandler returns the posted subgraph as a downloadable JSON
// attachment. Subgraphs with edges pointing outside their own node set are
// rejected; the renderer would produce a broken file from them.
func ExportGraphHandler(c echo.Context) error {
	type exportBody struct {
		Nodes []kg.Node `json:"nodes"`
		Edges []kg.Edge `json:"edges"`
	}

	type exportError struct {
		Message string `json:"message"`
	}

	data := new(exportBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, exportError{
			Message: "Invalid request body",
		})
	}

	sub := kg.Subgraph{Nodes: data.Nodes, Edges: data.Edges}
	if len(sub.Nodes) == 0 {
		return c.JSON(http.StatusBadRequest, exportError{
			Message: "Nothing to export",
		})
	}

	included := map[string]bool{}
	for _, n := range sub.Nodes {
		included[n.ID] = true
	}
	for _, e := range sub.Edges {
		if !included[e.Source] || !included[e.Target] {
			return c.JSON(http.StatusBadRequest, exportError{
				Message: fmt.Sprintf("Edge %s %s %s references a node outside the export", e.Source, e.Relation, e.Target),
			})
		}
	}

	filename := fmt.Sprintf("oncograph-export-%s.json", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.JSON(http.StatusOK, sub)
}
