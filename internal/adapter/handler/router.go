package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayflowhq/stayflow/pkg/config"
	"github.com/stayflowhq/stayflow/pkg/jwt"
)

// Router holds all handlers
type Router struct {
	cfg        *config.Config
	automation *AutomationController
	jwtManager *jwt.Manager
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, automationController *AutomationController, jwtManager *jwt.Manager) *Router {
	return &Router{
		cfg:        cfg,
		automation: automationController,
		jwtManager: jwtManager,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")
	rt.setupSessionRoutes(v1)
}

// setupSessionRoutes configures the session-scoped automation routes
func (rt *Router) setupSessionRoutes(g *echo.Group) {
	sessions := g.Group("/sessions", JWTAuth(rt.jwtManager))

	sessions.POST("/:id/automation/run", rt.automation.RunAutomation)
	sessions.GET("/:id/tasks/open", rt.automation.ListOpenTasks)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
