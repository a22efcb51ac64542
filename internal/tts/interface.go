package tts

import "context"

// Synthesizer converts narration text into an audio file
type Synthesizer interface {
	// Synthesize writes spoken audio for text to outputPath and returns it
	Synthesize(ctx context.Context, text, outputPath string) (string, error)
}
