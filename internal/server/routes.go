package server

import (
	"github.com/labstack/echo/v4"

	"github.com/corpgraph/backend/internal/server/middleware"
	"github.com/corpgraph/backend/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Company lookup routes
	apiRoutes.GET("/search", routes.SearchCompaniesHandler)
	apiRoutes.GET("/companies/:number", routes.GetCompanyHandler)
	apiRoutes.GET("/companies/:number/officers", routes.GetOfficersHandler)
	apiRoutes.GET("/companies/:number/pscs", routes.GetPSCsHandler)

	// Network build route
	apiRoutes.POST("/network", routes.BuildNetworkHandler)
}
