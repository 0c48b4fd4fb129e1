package routes

import (
	"net/http"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	"github.com/corpgraph/backend/internal/server/middleware"
)

func BuildNetworkHandler(c echo.Context) error {
	type request struct {
		Query        string `json:"query" validate:"required"`
		MaxCompanies int    `json:"max_companies" validate:"omitempty,min=1,max=10"`
	}

	var req request
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	app := c.(*middleware.AppContext).App
	if req.MaxCompanies == 0 {
		req.MaxCompanies = app.NetworkMaxCompanies
	}

	graph, err := app.Builder.Build(c.Request().Context(), req.Query, req.MaxCompanies)
	if err != nil {
		// Build only fails on context cancellation; registry failures
		// degrade to a smaller (possibly empty) graph.
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, graph)
}
