package ports

import (
	"image"
)

// VideoSink abstracts the video encoder and container writer.
// An implementation binds a destination file to a fixed resolution,
// frame rate and codec, and serializes a stream of images into it.
type VideoSink interface {
	// Open creates a writer for the given destination path.
	// The fourcc identifies the codec (e.g. "MP4V", "MJPG").
	// Implementations must reject a non-finite or non-positive fps.
	Open(path string, fourcc string, fps float64, width, height int) (SinkWriter, error)
}

// SinkWriter accepts a sequential stream of images bound to the
// parameters the sink was opened with. The caller guarantees every
// image matches the configured dimensions.
type SinkWriter interface {
	// Write encodes a single image.
	Write(img image.Image) error

	// Release finalizes the output file. It must be called exactly once
	// when writing is complete; the file is not valid before release.
	Release() error
}
