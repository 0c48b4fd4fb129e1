package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/labstack/echo/v4"

	"github.com/corpgraph/backend/pkg/network"
	"github.com/corpgraph/backend/pkg/registry"
)

// App holds the shared clients and request-scoped configuration every
// handler needs. Key is nil when JWT auth is not configured.
type App struct {
	Registry *registry.Client
	Builder  *network.Builder

	Key          *keyfunc.Keyfunc
	MasterAPIKey string

	SearchMaxResults    int
	NetworkMaxCompanies int
}

// AppContext wraps the echo context with the shared App. It is the
// per-request context handlers read from; nothing is held globally
// across sessions.
type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{Context: c, App: app})
		}
	}
}
