package recorder

import "errors"

var (
	// ErrEmptyBuffer is returned when an operation that needs at least one
	// buffered frame is invoked on an empty buffer.
	ErrEmptyBuffer = errors.New("recorder: no frames to estimate rate from")

	// ErrNonFiniteRate is returned when the derived frame rate is not a
	// finite positive number and no explicit rate was provided.
	ErrNonFiniteRate = errors.New("recorder: derived frame rate is not finite")

	// ErrSinkClosed is returned when a write is attempted after the sink
	// has been released.
	ErrSinkClosed = errors.New("recorder: sink already released")
)
