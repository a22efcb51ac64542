package pipeline

import (
	"context"

	"github.com/NebulaMao/AutoNewsVideo/internal/llm"
	"github.com/NebulaMao/AutoNewsVideo/internal/news"
)

// State names the stages a run moves through, in order
type State string

const (
	StateFetched    State = "fetched"
	StateProcessed  State = "processed"
	StateSummarized State = "summarized"
	StateIntroduced State = "introduced"
	StateImaged     State = "imaged"
	StateNarrated   State = "narrated"
	StateAssembled  State = "assembled"
	StateFinished   State = "finished"
)

// Pipeline turns raw news items into a finished narrated video
type Pipeline interface {
	// Run normalizes raw items and produces a video. An empty outputPath
	// derives a timestamped path under the configured output directory.
	Run(ctx context.Context, items []news.Item, outputPath string) (string, error)
	// RunRecords produces a video from already-normalized records
	RunRecords(ctx context.Context, records []llm.Record, outputPath string) (string, error)
}
