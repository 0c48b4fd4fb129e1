package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corpgraph/backend/internal/server/middleware"
	"github.com/corpgraph/backend/pkg/registry"
	"github.com/corpgraph/backend/pkg/sic"
)

func GetCompanyHandler(c echo.Context) error {
	type response struct {
		registry.CompanyProfile
		SICDescriptions []string `json:"sic_descriptions,omitempty"`
	}

	number := c.Param("number")
	app := c.(*middleware.AppContext).App

	profile, err := app.Registry.GetCompanyProfile(c.Request().Context(), number)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "company not found"})
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, response{
		CompanyProfile:  *profile,
		SICDescriptions: sic.DescribeAll(profile.SICCodes),
	})
}
