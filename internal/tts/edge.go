package tts

import (
	"context"
	"fmt"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
	"github.com/NebulaMao/AutoNewsVideo/pkg/executor"
)

// edgeSynthesizer shells out to the edge-tts CLI for offline-configured use
type edgeSynthesizer struct {
	cfg      config.TTSConfig
	executor executor.Executor
	logger   logger.Logger
}

func newEdgeSynthesizer(cfg config.TTSConfig, exec executor.Executor, log logger.Logger) *edgeSynthesizer {
	return &edgeSynthesizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

func (s *edgeSynthesizer) Synthesize(ctx context.Context, text, outputPath string) (string, error) {
	args := []string{
		"--text", text,
		"--voice", s.cfg.Voice,
		"--rate=" + s.cfg.Rate,
		"--volume=" + s.cfg.Volume,
		"--write-media", outputPath,
	}

	if _, err := s.executor.Execute(ctx, s.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("edge-tts synthesize: %w", err)
	}

	s.logger.Info(ctx, "Generated audio with edge-tts: %s", outputPath)
	return outputPath, nil
}
