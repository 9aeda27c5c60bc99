package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/usecase/template"
)

// Template exposes the available meeting template variants
type Template struct {
	templates *template.Manager
	logger    *zap.Logger
}

// NewTemplateHandler creates a template handler
func NewTemplateHandler(templates *template.Manager, logger *zap.Logger) *Template {
	return &Template{templates: templates, logger: logger}
}

// List returns all registered template variants
func (h *Template) List(c echo.Context) error {
	return HandleSuccess(h.logger, c, h.templates.AvailableTemplates())
}
