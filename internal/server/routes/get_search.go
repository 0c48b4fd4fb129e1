package routes

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/corpgraph/backend/internal/server/middleware"
	"github.com/corpgraph/backend/pkg/registry"
)

const (
	searchItemsMin = 5
	searchItemsMax = 50
)

func SearchCompaniesHandler(c echo.Context) error {
	type response struct {
		Query string                  `json:"query"`
		Total int                     `json:"total"`
		Items []registry.SearchResult `json:"items"`
	}

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "query parameter q is required"})
	}

	app := c.(*middleware.AppContext).App

	items := app.SearchMaxResults
	if raw := c.QueryParam("items"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "items must be an integer"})
		}
		items = parsed
	}
	if items < searchItemsMin {
		items = searchItemsMin
	}
	if items > searchItemsMax {
		items = searchItemsMax
	}

	results, err := app.Registry.SearchCompanies(c.Request().Context(), query, items)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	// Zero matches is a valid outcome, distinct from the 502 above.
	return c.JSON(http.StatusOK, response{
		Query: query,
		Total: len(results),
		Items: results,
	})
}
