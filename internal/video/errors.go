package video

import (
	"errors"
	"fmt"
)

var (
	// ErrToolUnavailable marks a missing ffmpeg/ffprobe installation
	ErrToolUnavailable = errors.New("media tool unavailable")
	// ErrEncode marks a fatal ffmpeg encode or concat failure
	ErrEncode = errors.New("encode failed")
)

// wrapEncode tags an ffmpeg failure with the ErrEncode marker while keeping
// the original diagnostic chain intact.
func wrapEncode(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrEncode, op, err)
}
