// Package recorder buffers captured video frames with their timestamps
// and flushes them to an encoded video file plus timestamp side-files.
package recorder

import (
	"fmt"
	"image"
	"math"
	"path/filepath"

	"github.com/user/camrec/pkg/ports"
	"github.com/user/camrec/pkg/timeseries"
)

// DefaultFourCC is the default codec identifier, MPEG-4 video.
const DefaultFourCC = "MP4V"

// Frame is one captured image plus its capture timestamp in nanoseconds.
// Frames are owned by the recorder once appended and must not be mutated
// afterwards.
type Frame struct {
	Image       image.Image
	TimestampNs int64
}

// Options configures a Recorder. Immutable after construction.
type Options struct {
	VideoName string
	Width     int
	Height    int
	SessionID string

	// FourCC identifies the codec. Defaults to DefaultFourCC.
	FourCC string

	// Calibration and Annotated select the destination folder category.
	// They are mutually exclusive; Annotated takes precedence, and when
	// neither is set the synchronized videos folder is used.
	Calibration bool
	Annotated   bool

	// FrameRate overrides the rate derived from buffered timestamps.
	// Zero means derive the rate at flush time.
	FrameRate float64
}

// sinkState tracks the encoder sink lifecycle. A recorder moves from
// unopened to open on first sink creation and to closed exactly once;
// there is no way back to unopened.
type sinkState int

const (
	stateUnopened sinkState = iota
	stateOpen
	stateClosed
)

// Recorder accumulates frames in arrival order and writes them out as a
// video file with timestamp side-files. It is not safe for concurrent
// use; one logical owner drives append, flush and close.
type Recorder struct {
	opts   Options
	folder string
	path   string

	frames []Frame

	sink ports.VideoSink
	fs   ports.FileSystem
	log  ports.Logger

	state  sinkState
	writer ports.SinkWriter
	rate   float64
}

// New creates a Recorder. It resolves the destination folder for the
// session via paths, creates it if missing, and computes the output
// file path as <folder>/<video name>.mp4.
func New(opts Options, paths ports.SessionPaths, sink ports.VideoSink, fs ports.FileSystem, log ports.Logger) (*Recorder, error) {
	if opts.FourCC == "" {
		opts.FourCC = DefaultFourCC
	}

	var folder string
	switch {
	case opts.Annotated:
		folder = paths.AnnotatedVideos(opts.SessionID)
	case opts.Calibration:
		folder = paths.CalibrationVideos(opts.SessionID)
	default:
		folder = paths.SynchronizedVideos(opts.SessionID)
	}

	if err := fs.MkdirAll(folder); err != nil {
		return nil, fmt.Errorf("create video folder %s: %w", folder, err)
	}

	return &Recorder{
		opts:   opts,
		folder: folder,
		path:   filepath.Join(folder, opts.VideoName+".mp4"),
		sink:   sink,
		fs:     fs,
		log:    log.WithComponent("recorder"),
	}, nil
}

// VideoName returns the configured video name.
func (r *Recorder) VideoName() string { return r.opts.VideoName }

// FolderPath returns the resolved destination folder.
func (r *Recorder) FolderPath() string { return r.folder }

// FilePath returns the resolved output video file path.
func (r *Recorder) FilePath() string { return r.path }

// FrameCount returns the number of buffered frames.
func (r *Recorder) FrameCount() int { return len(r.frames) }

// Append adds one frame to the end of the buffer. Timestamp ordering is
// not validated; frames are accepted in whatever order they arrive.
func (r *Recorder) Append(f Frame) {
	r.frames = append(r.frames, f)
}

// Flush drains the entire buffer into a finalized video file and then
// persists the timestamp series next to it. An empty buffer is not an
// error; a warning is logged and nothing is produced. The sink is
// released on every exit path, and a mid-stream write failure
// propagates to the caller after release.
func (r *Recorder) Flush() error {
	if len(r.frames) == 0 {
		r.log.Warn("No frames to save for %s", r.opts.VideoName)
		return nil
	}

	fps, err := r.resolveRate()
	if err != nil {
		return err
	}

	if err := r.writeBuffered(fps); err != nil {
		return err
	}

	r.persistTimestamps()
	r.writeRecordingInfo(fps)
	return nil
}

// WriteFrame encodes a single frame immediately without buffering it or
// recording its timestamp. The sink is opened lazily on the first call,
// reusing the explicit rate override or the previously resolved rate.
// The caller must call Close when streaming completes; no timestamp
// side-files are produced for this path.
func (r *Recorder) WriteFrame(f Frame) error {
	switch r.state {
	case stateClosed:
		return ErrSinkClosed
	case stateUnopened:
		fps, err := r.resolveRate()
		if err != nil {
			return err
		}
		if err := r.open(fps); err != nil {
			return err
		}
	}

	if err := r.writer.Write(f.Image); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// WriteImages writes a raw ordered image sequence at an explicit frame
// rate. No per-frame timestamps exist for this input shape, so no
// side-files are produced. The release guarantee matches Flush.
func (r *Recorder) WriteImages(images []image.Image, fps float64) (err error) {
	if len(images) == 0 {
		r.log.Warn("No frames to save for %s", r.opts.VideoName)
		return nil
	}
	if !finitePositive(fps) {
		return ErrNonFiniteRate
	}

	if err := r.open(fps); err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for i, img := range images {
		if werr := r.writer.Write(img); werr != nil {
			r.log.Error("Failed writing frame %d to %s: %s", i, r.path, werr)
			return fmt.Errorf("write frame %d: %w", i, werr)
		}
	}
	r.log.Info("Saved video to %s", r.path)
	return nil
}

// Close releases the sink and finalizes the output file. Closing an
// already-closed or never-opened recorder is a no-op, so callers may
// always defer it.
func (r *Recorder) Close() error {
	if r.state != stateOpen {
		return nil
	}
	r.state = stateClosed
	w := r.writer
	r.writer = nil
	if err := w.Release(); err != nil {
		return fmt.Errorf("release sink: %w", err)
	}
	return nil
}

// resolveRate returns the explicit override when configured, otherwise
// the median rate derived from buffered timestamps. The result is
// cached so the streaming path never recomputes it per frame.
func (r *Recorder) resolveRate() (float64, error) {
	if r.opts.FrameRate > 0 {
		return r.opts.FrameRate, nil
	}
	if r.rate != 0 {
		return r.rate, nil
	}
	fps, err := r.MedianFrameRate()
	if err != nil {
		return 0, err
	}
	r.rate = fps
	return fps, nil
}

func (r *Recorder) open(fps float64) error {
	if r.state == stateClosed {
		return ErrSinkClosed
	}
	if !finitePositive(fps) {
		r.log.Error("Refusing to open sink for %s: frame rate %v is unusable", r.path, fps)
		return ErrNonFiniteRate
	}
	w, err := r.sink.Open(r.path, r.opts.FourCC, fps, r.opts.Width, r.opts.Height)
	if err != nil {
		return fmt.Errorf("open sink: %w", err)
	}
	r.writer = w
	r.state = stateOpen
	return nil
}

// writeBuffered streams every buffered image through the sink in buffer
// order. The deferred Close guarantees release whether the loop
// completes or fails partway; a partial file may remain on failure.
func (r *Recorder) writeBuffered(fps float64) (err error) {
	if err := r.open(fps); err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for i := range r.frames {
		if werr := r.writer.Write(r.frames[i].Image); werr != nil {
			r.log.Error("Failed writing frame %d to %s: %s", i, r.path, werr)
			return fmt.Errorf("write frame %d: %w", i, werr)
		}
	}
	r.log.Info("Saved video to %s", r.path)
	return nil
}

// persistTimestamps extracts the timestamp series from the buffer and
// writes both side-files. Failures are aggregated into a single warning
// and never roll back the already-written video.
func (r *Recorder) persistTimestamps() {
	series := timeseries.Series(r.timestamps())
	if err := series.Save(r.fs, r.folder, r.opts.VideoName); err != nil {
		r.log.Warn("Failed saving timestamps for %s: %s", r.opts.VideoName, err)
		return
	}
	r.log.Info("Saved timestamps for %s", r.opts.VideoName)
}

// timestamps extracts the buffered timestamps in buffer order. The raw
// arrival order is preserved, noisy or not, for downstream diagnostics.
func (r *Recorder) timestamps() []int64 {
	ts := make([]int64, len(r.frames))
	for i := range r.frames {
		ts[i] = r.frames[i].TimestampNs
	}
	return ts
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
