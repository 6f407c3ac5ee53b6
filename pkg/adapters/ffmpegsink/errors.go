package ffmpegsink

import "errors"

var (
	// ErrFFmpegNotFound is returned when no ffmpeg binary can be located.
	ErrFFmpegNotFound = errors.New("ffmpegsink: ffmpeg not found")

	// ErrUnsupportedCodec is returned for a fourcc with no ffmpeg encoder
	// mapping.
	ErrUnsupportedCodec = errors.New("ffmpegsink: unsupported codec")

	// ErrInvalidRate is returned when the frame rate is not a finite
	// positive number.
	ErrInvalidRate = errors.New("ffmpegsink: frame rate must be finite and positive")

	// ErrInvalidSize is returned for non-positive dimensions.
	ErrInvalidSize = errors.New("ffmpegsink: width and height must be positive")

	// ErrReleased is returned when writing after release.
	ErrReleased = errors.New("ffmpegsink: writer already released")
)
