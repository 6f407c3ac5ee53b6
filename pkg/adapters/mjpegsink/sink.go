// Package mjpegsink provides a pure-Go video sink that stores frames as
// JPEG samples in an MP4 container. It needs no external encoder, at
// the cost of larger files than a real MPEG-4 or H.264 encode.
package mjpegsink

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"math"

	"golang.org/x/image/draw"

	"github.com/user/camrec/pkg/ports"
)

var (
	// ErrInvalidRate is returned when the frame rate is not a finite
	// positive number.
	ErrInvalidRate = errors.New("mjpegsink: frame rate must be finite and positive")

	// ErrInvalidSize is returned for non-positive dimensions.
	ErrInvalidSize = errors.New("mjpegsink: width and height must be positive")

	// ErrReleased is returned when writing after release.
	ErrReleased = errors.New("mjpegsink: writer already released")
)

// jpegQuality is the encode quality for stored samples.
const jpegQuality = 90

// Sink implements ports.VideoSink with MJPEG-in-MP4 output.
type Sink struct {
	fs ports.FileSystem
}

// New creates a new Sink writing through the given filesystem.
func New(fs ports.FileSystem) *Sink {
	return &Sink{fs: fs}
}

// Open validates the parameters and returns a writer bound to them.
// The fourcc is accepted as-is; this sink always stores JPEG samples.
func (s *Sink) Open(path string, fourcc string, fps float64, width, height int) (ports.SinkWriter, error) {
	if math.IsNaN(fps) || math.IsInf(fps, 0) || fps <= 0 {
		return nil, ErrInvalidRate
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &writer{
		fs:     s.fs,
		path:   path,
		fps:    fps,
		width:  width,
		height: height,
	}, nil
}

type writer struct {
	fs     ports.FileSystem
	path   string
	fps    float64
	width  int
	height int

	samples  [][]byte
	released bool
}

// Write encodes one image as a JPEG sample. Images whose dimensions
// differ from the sink's are scaled to fit rather than rejected.
func (w *writer) Write(img image.Image) error {
	if w.released {
		return ErrReleased
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, w.normalize(img), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return err
	}
	w.samples = append(w.samples, buf.Bytes())
	return nil
}

// Release builds the MP4 container and writes it to the destination
// path. A second release is a no-op.
func (w *writer) Release() error {
	if w.released {
		return nil
	}
	w.released = true

	data, err := w.buildMP4()
	if err != nil {
		return err
	}
	w.samples = nil
	return w.fs.WriteFile(w.path, data)
}

// normalize converts to RGBA at the configured dimensions.
func (w *writer) normalize(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, w.width, w.height))
	if bounds.Dx() == w.width && bounds.Dy() == w.height {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	}
	return dst
}

// Ensure Sink implements ports.VideoSink
var _ ports.VideoSink = (*Sink)(nil)
