package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	meetingHandler  *Meeting
	templateHandler *Template
	webhookHandler  *Webhook
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, templateHandler *Template, webhookHandler *Webhook) *Router {
	return &Router{
		cfg:             cfg,
		meetingHandler:  meetingHandler,
		templateHandler: templateHandler,
		webhookHandler:  webhookHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupTemplateRoutes(v1)
	rt.setupWebhookRoutes(v1)
}

// setupMeetingRoutes configures meeting and analysis routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.POST("/:id/analyze", rt.meetingHandler.Analyze)
	meetings.GET("/:id/notes", rt.meetingHandler.GetNotes)
	meetings.GET("/:id/notes/markdown", rt.meetingHandler.GetMarkdown)
	meetings.GET("/:id/action-items", rt.meetingHandler.ListActionItems)
	meetings.GET("/:id/score", rt.meetingHandler.GetScore)
	meetings.POST("/:id/score", rt.meetingHandler.RecalculateScore)

	actionItems := g.Group("/action-items")
	actionItems.PATCH("/:id", rt.meetingHandler.UpdateActionItem)
}

// setupTemplateRoutes configures template discovery routes
func (rt *Router) setupTemplateRoutes(g *echo.Group) {
	templates := g.Group("/templates")
	templates.GET("", rt.templateHandler.List)
}

// setupWebhookRoutes configures external callback routes
func (rt *Router) setupWebhookRoutes(g *echo.Group) {
	webhooks := g.Group("/webhooks")
	webhooks.POST("/assemblyai", rt.webhookHandler.AssemblyAI)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "production"
	if rt.cfg != nil && rt.cfg.Server.Environment != "" {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
