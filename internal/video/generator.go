package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CreateFromPairs builds one segment per aligned (image, audio) pair, then
// concatenates them. Every intermediate segment is deleted before returning,
// on both the success and failure paths.
func (g *implGenerator) CreateFromPairs(ctx context.Context, imagePaths, audioPaths []string, outputPath string) (string, error) {
	if len(imagePaths) != len(audioPaths) {
		return "", fmt.Errorf("image/audio count mismatch: %d images, %d audios", len(imagePaths), len(audioPaths))
	}
	if len(imagePaths) == 0 {
		return "", fmt.Errorf("no image/audio pairs to assemble")
	}

	segments := make([]string, 0, len(imagePaths))
	defer func() {
		for _, segment := range segments {
			if err := os.Remove(segment); err != nil && !os.IsNotExist(err) {
				g.logger.Warn(ctx, "Failed to remove temp segment %s: %v", segment, err)
			}
		}
	}()

	for i := range imagePaths {
		segmentPath := filepath.Join(g.paths.Temp, fmt.Sprintf("segment_%d_%d.mp4", i, time.Now().UnixNano()))
		if _, err := g.CreateSegment(ctx, imagePaths[i], audioPaths[i], segmentPath, 0); err != nil {
			return "", fmt.Errorf("segment %d: %w", i, err)
		}
		segments = append(segments, segmentPath)
	}

	if _, err := g.Concat(ctx, segments, outputPath); err != nil {
		return "", err
	}

	return outputPath, nil
}

// CreateFinalVideo assembles the overview segment followed by the news item
// segments, applies the configured transition, and removes the pre-transition
// intermediate file.
func (g *implGenerator) CreateFinalVideo(ctx context.Context, overviewImage, overviewAudio string, newsImages, newsAudios []string, outputPath string) (string, error) {
	images := append([]string{overviewImage}, newsImages...)
	audios := append([]string{overviewAudio}, newsAudios...)

	intermediate := filepath.Join(g.paths.Temp, fmt.Sprintf("sequence_%d.mp4", time.Now().UnixNano()))
	defer func() {
		if err := os.Remove(intermediate); err != nil && !os.IsNotExist(err) {
			g.logger.Warn(ctx, "Failed to remove intermediate video %s: %v", intermediate, err)
		}
	}()

	if _, err := g.CreateFromPairs(ctx, images, audios, intermediate); err != nil {
		return "", err
	}

	if _, err := g.AddTransition(ctx, intermediate, outputPath, g.cfg.Transition); err != nil {
		return "", err
	}

	g.logger.Info(ctx, "Final video created: %s", outputPath)
	return outputPath, nil
}
