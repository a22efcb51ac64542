package script

import (
	"context"

	"github.com/NebulaMao/AutoNewsVideo/internal/llm"
)

// Document holds the narration content of one produced video
type Document struct {
	Date          string
	Summary       string
	Records       []llm.Record
	Introductions []string // aligned with Records
}

// Writer exports the narration script as a shareable document
type Writer interface {
	Write(ctx context.Context, doc Document, outputPath string) error
}
