package pipeline

import (
	"time"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/llm"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
	"github.com/NebulaMao/AutoNewsVideo/internal/render"
	"github.com/NebulaMao/AutoNewsVideo/internal/script"
	"github.com/NebulaMao/AutoNewsVideo/internal/tts"
	"github.com/NebulaMao/AutoNewsVideo/internal/video"
)

type implPipeline struct {
	cfg      *config.Config
	llm      llm.Client
	renderer render.Renderer
	tts      tts.Synthesizer
	video    video.Generator
	script   script.Writer // nil disables script export
	logger   logger.Logger
	now      func() time.Time
}

// New creates a Pipeline. scriptWriter may be nil to skip script export.
func New(
	cfg *config.Config,
	llmClient llm.Client,
	renderer render.Renderer,
	synthesizer tts.Synthesizer,
	generator video.Generator,
	scriptWriter script.Writer,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:      cfg,
		llm:      llmClient,
		renderer: renderer,
		tts:      synthesizer,
		video:    generator,
		script:   scriptWriter,
		logger:   log,
		now:      time.Now,
	}
}
