package render

import (
	"context"

	"github.com/NebulaMao/AutoNewsVideo/internal/llm"
)

// OverviewData feeds the overview template
type OverviewData struct {
	Date      string
	Summary   string
	NewsCount int
}

// ItemData feeds the news item template
type ItemData struct {
	Record     llm.Record
	ItemNumber int
	TotalItems int
}

// Renderer turns semantic news records into full-frame images
type Renderer interface {
	Overview(ctx context.Context, data OverviewData, outputPath string) (string, error)
	NewsItem(ctx context.Context, data ItemData, outputPath string) (string, error)
}
