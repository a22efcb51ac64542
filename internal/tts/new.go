package tts

import (
	"fmt"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
	"github.com/NebulaMao/AutoNewsVideo/pkg/executor"
)

// New creates the configured speech synthesizer. Provider choice is invisible
// to callers; both produce an mp3 at the requested path.
func New(cfg config.TTSConfig, exec executor.Executor, log logger.Logger) (Synthesizer, error) {
	switch cfg.Provider {
	case "edge":
		return newEdgeSynthesizer(cfg, exec, log), nil
	case "api":
		return newAPISynthesizer(cfg, log), nil
	default:
		return nil, fmt.Errorf("unsupported tts provider: %q", cfg.Provider)
	}
}
