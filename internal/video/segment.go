package video

import (
	"context"
	"fmt"
)

// CreateSegment renders one still image and one audio track into a clip of
// exactly duration seconds. Audio is authoritative for pacing: when duration
// is not supplied it is resolved from the audio track.
func (g *implGenerator) CreateSegment(ctx context.Context, imagePath, audioPath, outputPath string, duration float64) (string, error) {
	if duration <= 0 {
		duration = g.AudioDuration(ctx, audioPath)
	}

	args := []string{
		"-y",
		"-loop", "1",
		"-i", imagePath,
		"-i", audioPath,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-b:a", "192k",
		"-shortest",
		"-vf", fmt.Sprintf("scale=%d:%d,fps=%d", g.cfg.Width, g.cfg.Height, g.cfg.FPS),
		"-t", formatSeconds(duration),
		"-pix_fmt", "yuv420p",
		outputPath,
	}

	if _, err := g.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", wrapEncode(fmt.Sprintf("create segment %s", outputPath), err)
	}

	g.logger.Debug(ctx, "Created video segment: %s (%.2fs)", outputPath, duration)
	return outputPath, nil
}
