package llm

import (
	"fmt"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
)

// New creates the configured LLM client
func New(cfg config.LLMConfig, log logger.Logger) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return newOpenAIClient(cfg, log), nil
	case "gemini":
		return newGeminiClient(cfg, log), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
}
