package video

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/NebulaMao/AutoNewsVideo/internal/config"
	"github.com/NebulaMao/AutoNewsVideo/internal/logger"
	"github.com/NebulaMao/AutoNewsVideo/pkg/executor"
)

type implGenerator struct {
	cfg      config.VideoConfig
	paths    config.PathsConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Generator. ffmpeg and ffprobe must be resolvable on PATH.
func New(cfg config.VideoConfig, paths config.PathsConfig, runner executor.Executor, log logger.Logger) (Generator, error) {
	for _, tool := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(tool); err != nil {
			return nil, fmt.Errorf("%w: %s not found in PATH, install FFmpeg and ensure it's available", ErrToolUnavailable, tool)
		}
	}

	if err := os.MkdirAll(paths.Temp, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	return &implGenerator{
		cfg:      cfg,
		paths:    paths,
		executor: runner,
		logger:   log,
	}, nil
}
