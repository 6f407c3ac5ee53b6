// Package smartsink selects the best available video sink for a
// requested codec, with fallback to the pure-Go MJPEG sink.
package smartsink

import (
	"github.com/user/camrec/pkg/adapters/ffmpegsink"
	"github.com/user/camrec/pkg/adapters/mjpegsink"
	"github.com/user/camrec/pkg/ports"
)

// Backend represents the sink backend in use.
type Backend string

const (
	// BackendFFmpeg encodes through an external ffmpeg process.
	BackendFFmpeg Backend = "ffmpeg"
	// BackendMJPEG stores JPEG samples in an MP4 container in-process.
	BackendMJPEG Backend = "mjpeg"
)

// Info describes the selection result.
type Info struct {
	// Backend is the sink backend being used.
	Backend Backend
	// RequestedFourCC is the codec that was originally requested.
	RequestedFourCC string
	// FallbackUsed indicates the requested codec was unavailable.
	FallbackUsed bool
}

// Options configures sink selection.
type Options struct {
	// FFmpegPath is an optional custom path to the ffmpeg binary.
	FFmpegPath string
	// Logger is used to log fallback warnings.
	Logger ports.Logger
}

// New returns a sink for the requested fourcc. When ffmpeg is available
// it handles any supported codec; otherwise the MJPEG sink is used and
// a warning is logged, since the output codec then differs from the
// request.
func New(fourcc string, fs ports.FileSystem, opts Options) (ports.VideoSink, Info) {
	info := Info{RequestedFourCC: fourcc}

	if opts.FFmpegPath != "" || ffmpegsink.IsAvailable() {
		sink := ffmpegsink.New()
		if opts.FFmpegPath != "" {
			sink.SetFFmpegPath(opts.FFmpegPath)
		}
		info.Backend = BackendFFmpeg
		return sink, info
	}

	if opts.Logger != nil {
		opts.Logger.Warn("ffmpeg not available, storing %s video as MJPEG", fourcc)
	}
	info.Backend = BackendMJPEG
	info.FallbackUsed = true
	return mjpegsink.New(fs), info
}
