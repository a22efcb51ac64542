package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoUsableItems means no raw item survived normalization
	ErrNoUsableItems = errors.New("no usable news items")
	// ErrSummary means the overview narration could not be generated. The
	// overview opens the video, so the run cannot continue without it.
	ErrSummary = errors.New("overview summary failed")
)

func wrapSummary(err error) error {
	return fmt.Errorf("%w: %w", ErrSummary, err)
}
