// Package ffmpegsink provides a video sink that drives an external
// ffmpeg process, piping raw RGBA frames to its stdin.
package ffmpegsink

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"os"
	"os/exec"
	"runtime"

	"github.com/user/camrec/pkg/ports"
)

// Sink implements ports.VideoSink using ffmpeg.
type Sink struct {
	ffmpegPath string
}

// New creates a new Sink. The ffmpeg binary is located lazily on Open.
func New() *Sink {
	return &Sink{}
}

// SetFFmpegPath overrides ffmpeg binary discovery.
func (s *Sink) SetFFmpegPath(path string) {
	s.ffmpegPath = path
}

// IsAvailable reports whether an ffmpeg binary can be found.
func IsAvailable() bool {
	_, err := findFFmpeg()
	return err == nil
}

// findFFmpeg searches PATH and common install locations.
func findFFmpeg() (string, error) {
	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}

	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// codecFor maps a fourcc onto an ffmpeg encoder name.
func codecFor(fourcc string) (string, error) {
	switch fourcc {
	case "MP4V", "mp4v":
		return "mpeg4", nil
	case "H264", "h264", "AVC1", "avc1":
		return "libx264", nil
	case "MJPG", "mjpg":
		return "mjpeg", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCodec, fourcc)
	}
}

// Open starts an ffmpeg process encoding raw RGBA from stdin into the
// destination file.
func (s *Sink) Open(path string, fourcc string, fps float64, width, height int) (ports.SinkWriter, error) {
	if math.IsNaN(fps) || math.IsInf(fps, 0) || fps <= 0 {
		return nil, ErrInvalidRate
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	codec, err := codecFor(fourcc)
	if err != nil {
		return nil, err
	}

	ffmpegPath := s.ffmpegPath
	if ffmpegPath == "" {
		if ffmpegPath, err = findFFmpeg(); err != nil {
			return nil, err
		}
	}

	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.4f", fps),
		"-i", "pipe:0",
		"-c:v", codec,
		"-pix_fmt", "yuv420p",
		"-movflags", "+faststart",
		path,
	}

	w := &writer{width: width, height: height}
	w.cmd = exec.Command(ffmpegPath, args...)
	w.cmd.Stderr = &w.stderr

	stdin, err := w.cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	w.stdin = stdin

	if err := w.cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}
	return w, nil
}

type writer struct {
	width  int
	height int

	cmd      *exec.Cmd
	stdin    io.WriteCloser
	stderr   bytes.Buffer
	released bool
}

// Write pipes one frame as raw RGBA bytes.
func (w *writer) Write(img image.Image) error {
	if w.released {
		return ErrReleased
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Dx() != w.width || rgba.Bounds().Dy() != w.height {
		converted := image.NewRGBA(image.Rect(0, 0, w.width, w.height))
		draw.Draw(converted, converted.Bounds(), img, img.Bounds().Min, draw.Src)
		rgba = converted
	}

	if _, err := w.stdin.Write(rgba.Pix); err != nil {
		return fmt.Errorf("pipe frame: %w", err)
	}
	return nil
}

// Release closes the pipe and waits for ffmpeg to finalize the file.
// A second release is a no-op.
func (w *writer) Release() error {
	if w.released {
		return nil
	}
	w.released = true

	if err := w.stdin.Close(); err != nil {
		w.cmd.Wait()
		return fmt.Errorf("close pipe: %w", err)
	}
	if err := w.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg: %w (%s)", err, w.stderr.String())
	}
	return nil
}

// Ensure Sink implements ports.VideoSink
var _ ports.VideoSink = (*Sink)(nil)
