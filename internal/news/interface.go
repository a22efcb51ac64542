package news

import "context"

// Fetcher retrieves the day's news items from the upstream API
type Fetcher interface {
	Fetch(ctx context.Context) ([]Item, error)
}
