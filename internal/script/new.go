package script

import (
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
)

type implWriter struct {
	logger logger.Logger
}

// New creates a docx script Writer
func New(log logger.Logger) Writer {
	return &implWriter{
		logger: log,
	}
}
