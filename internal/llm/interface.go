package llm

import "context"

// Record is one news item normalized by the language model
type Record struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Category   string   `json:"category"`
	Importance int      `json:"importance"`
	Keywords   []string `json:"keywords"`
	CreatedAt  string   `json:"created_at"`
}

// Client generates the text content the video is built from
type Client interface {
	// FormatItem normalizes one raw news item into a Record
	FormatItem(ctx context.Context, raw string) (Record, error)
	// Summary produces the overview narration for the whole set
	Summary(ctx context.Context, records []Record) (string, error)
	// Introduction produces the narration text for one item
	Introduction(ctx context.Context, record Record) (string, error)
}
