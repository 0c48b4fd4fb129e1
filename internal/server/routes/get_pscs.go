package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corpgraph/backend/internal/server/middleware"
	"github.com/corpgraph/backend/pkg/registry"
)

func GetPSCsHandler(c echo.Context) error {
	type response struct {
		CompanyNumber string         `json:"company_number"`
		Total         int            `json:"total"`
		Items         []registry.PSC `json:"items"`
	}

	number := c.Param("number")
	app := c.(*middleware.AppContext).App

	pscs, err := app.Registry.GetPSCs(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			pscs = []registry.PSC{}
		} else {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
	}

	return c.JSON(http.StatusOK, response{
		CompanyNumber: number,
		Total:         len(pscs),
		Items:         pscs,
	})
}
