package video

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const (
	fallbackAudioDuration = 5.0
	fallbackVideoDuration = 10.0
)

// AudioDuration probes an audio file's duration. A failed probe must never
// abort a run, so it falls back to the configured per-image duration (or a
// fixed default) and logs a warning.
func (g *implGenerator) AudioDuration(ctx context.Context, path string) float64 {
	duration, err := g.probeDuration(ctx, path)
	if err != nil {
		fallback := fallbackAudioDuration
		if g.cfg.ImageDuration > 0 {
			fallback = float64(g.cfg.ImageDuration)
		}
		g.logger.Warn(ctx, "Could not get duration for %s, using default %.1f seconds: %v", path, fallback, err)
		return fallback
	}
	return duration
}

// VideoDuration probes a video file's duration with the same fallback policy
func (g *implGenerator) VideoDuration(ctx context.Context, path string) float64 {
	duration, err := g.probeDuration(ctx, path)
	if err != nil {
		g.logger.Warn(ctx, "Could not get duration for %s, using default %.1f seconds: %v", path, fallbackVideoDuration, err)
		return fallbackVideoDuration
	}
	return duration
}

func (g *implGenerator) probeDuration(ctx context.Context, path string) (float64, error) {
	output, err := g.executor.Execute(ctx, "ffprobe",
		"-i", path,
		"-show_entries", "format=duration",
		"-v", "quiet",
		"-of", "csv=p=0",
	)
	if err != nil {
		return 0, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(output), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(output), err)
	}

	return duration, nil
}

// formatSeconds renders a duration for ffmpeg arguments
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 2, 64)
}
