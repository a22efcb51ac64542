package render

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

type implRenderer struct {
	video     config.VideoConfig
	render    config.RenderConfig
	logger    logger.Logger
	templates *template.Template
}

// New creates a Renderer that screenshots rendered HTML with headless Chrome
func New(video config.VideoConfig, render config.RenderConfig, log logger.Logger) (Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &implRenderer{
		video:     video,
		render:    render,
		logger:    log,
		templates: templates,
	}, nil
}
