package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Concat merges segments in input order into one stream. Segments are
// re-encoded rather than stream-copied: clips may differ in internal
// parameters even when produced by the same synthesis path, and a naive copy
// concat produces broken streams in that case.
func (g *implGenerator) Concat(ctx context.Context, segmentPaths []string, outputPath string) (string, error) {
	if len(segmentPaths) == 0 {
		return "", fmt.Errorf("no segments to concatenate")
	}

	// A single segment skips the concat demuxer entirely; it still gets a
	// re-encode so the output codec parameters are consistent either way.
	if len(segmentPaths) == 1 {
		args := []string{
			"-y",
			"-i", segmentPaths[0],
			"-c:v", "libx264",
			"-c:a", "aac",
			"-b:a", "192k",
			"-pix_fmt", "yuv420p",
			outputPath,
		}
		if _, err := g.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			return "", wrapEncode("re-encode single segment", err)
		}
		return outputPath, nil
	}

	manifestPath, err := g.writeManifest(segmentPaths)
	if err != nil {
		return "", fmt.Errorf("create concat manifest: %w", err)
	}
	defer func() {
		if err := os.Remove(manifestPath); err != nil {
			g.logger.Warn(ctx, "Failed to remove concat manifest %s: %v", manifestPath, err)
		}
	}()

	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", manifestPath,
		"-c:v", "libx264",
		"-c:a", "aac",
		"-b:a", "192k",
		"-pix_fmt", "yuv420p",
		outputPath,
	}

	if _, err := g.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", wrapEncode("concatenate segments", err)
	}

	g.logger.Info(ctx, "Concatenated %d segments into %s", len(segmentPaths), outputPath)
	return outputPath, nil
}

// writeManifest generates the ordered file list the concat demuxer consumes
func (g *implGenerator) writeManifest(segmentPaths []string) (string, error) {
	manifest, err := os.CreateTemp(g.paths.Temp, "concat-*.txt")
	if err != nil {
		return "", err
	}
	defer manifest.Close()

	for _, segment := range segmentPaths {
		absPath, err := filepath.Abs(segment)
		if err != nil {
			os.Remove(manifest.Name())
			return "", err
		}
		if _, err := fmt.Fprintf(manifest, "file '%s'\n", absPath); err != nil {
			os.Remove(manifest.Name())
			return "", err
		}
	}

	return manifest.Name(), nil
}
