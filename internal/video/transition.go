package video

import (
	"context"
	"fmt"
)

// AddTransition applies the entry/exit transition. "fade" adds a fade-in at
// the start and a fade-out ending exactly at end-of-stream; any other kind
// degrades to a plain container copy so a cosmetic parameter can never block
// video delivery.
func (g *implGenerator) AddTransition(ctx context.Context, videoPath, outputPath, kind string) (string, error) {
	var args []string

	if kind == "fade" {
		fadeDuration := g.cfg.TransitionDuration
		if fadeDuration <= 0 {
			fadeDuration = 1.0
		}
		total := g.VideoDuration(ctx, videoPath)
		fadeOutStart := total - fadeDuration
		if fadeOutStart < 0 {
			fadeOutStart = 0
		}
		args = []string{
			"-y",
			"-i", videoPath,
			"-vf", fmt.Sprintf("fade=t=in:st=0:d=%s,fade=t=out:st=%s:d=%s",
				formatSeconds(fadeDuration), formatSeconds(fadeOutStart), formatSeconds(fadeDuration)),
			"-c:a", "copy",
			outputPath,
		}
	} else {
		args = []string{"-y", "-i", videoPath, "-c", "copy", outputPath}
	}

	if _, err := g.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", wrapEncode("apply transition", err)
	}

	g.logger.Debug(ctx, "Applied %q transition: %s", kind, outputPath)
	return outputPath, nil
}
