package video

import "context"

// Generator builds the final news video from still images and narration audio
type Generator interface {
	// AudioDuration reports the playable duration of an audio file in seconds.
	// Probe failures fall back to a fixed default instead of erroring.
	AudioDuration(ctx context.Context, path string) float64
	// VideoDuration reports the playable duration of a video file in seconds,
	// with the same fallback behavior.
	VideoDuration(ctx context.Context, path string) float64
	// CreateSegment renders one still image plus one audio track into a
	// fixed-duration clip. A non-positive duration is resolved from the audio.
	CreateSegment(ctx context.Context, imagePath, audioPath, outputPath string, duration float64) (string, error)
	// Concat merges the segments, in order, into one consistently encoded stream
	Concat(ctx context.Context, segmentPaths []string, outputPath string) (string, error)
	// CreateFromPairs builds a segment per (image, audio) pair and concatenates
	// them. All intermediate segment files are deleted before it returns.
	CreateFromPairs(ctx context.Context, imagePaths, audioPaths []string, outputPath string) (string, error)
	// AddTransition applies the entry/exit transition to a finished stream
	AddTransition(ctx context.Context, videoPath, outputPath, kind string) (string, error)
	// CreateFinalVideo assembles overview plus news segments and applies the
	// configured transition, cleaning up the pre-transition intermediate.
	CreateFinalVideo(ctx context.Context, overviewImage, overviewAudio string, newsImages, newsAudios []string, outputPath string) (string, error)
}
