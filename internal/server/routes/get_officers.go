package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corpgraph/backend/internal/server/middleware"
	"github.com/corpgraph/backend/pkg/registry"
)

func GetOfficersHandler(c echo.Context) error {
	type response struct {
		CompanyNumber string             `json:"company_number"`
		Total         int                `json:"total"`
		Items         []registry.Officer `json:"items"`
	}

	number := c.Param("number")
	app := c.(*middleware.AppContext).App

	officers, err := app.Registry.GetOfficers(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			// A company with no officer list is rendered as empty, not
			// as a failure.
			officers = []registry.Officer{}
		} else {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
	}

	return c.JSON(http.StatusOK, response{
		CompanyNumber: number,
		Total:         len(officers),
		Items:         officers,
	})
}
