package recorder

import (
	"path/filepath"

	"github.com/bytedance/sonic"
)

// recordingInfo is the metadata sidecar written next to the video after
// a successful buffered flush.
type recordingInfo struct {
	VideoName        string  `json:"video_name"`
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	FourCC           string  `json:"fourcc"`
	FrameRate        float64 `json:"frame_rate"`
	FrameCount       int     `json:"frame_count"`
	FirstTimestampNs int64   `json:"first_timestamp_ns"`
	LastTimestampNs  int64   `json:"last_timestamp_ns"`
}

// writeRecordingInfo persists <name>_recording_info.json. Best-effort:
// a failure is logged and never fails the flush.
func (r *Recorder) writeRecordingInfo(fps float64) {
	info := recordingInfo{
		VideoName:        r.opts.VideoName,
		Width:            r.opts.Width,
		Height:           r.opts.Height,
		FourCC:           r.opts.FourCC,
		FrameRate:        fps,
		FrameCount:       len(r.frames),
		FirstTimestampNs: r.frames[0].TimestampNs,
		LastTimestampNs:  r.frames[len(r.frames)-1].TimestampNs,
	}

	data, err := sonic.Marshal(info)
	if err != nil {
		r.log.Warn("Failed encoding recording info for %s: %s", r.opts.VideoName, err)
		return
	}

	path := filepath.Join(r.folder, r.opts.VideoName+"_recording_info.json")
	if err := r.fs.WriteFile(path, data); err != nil {
		r.log.Warn("Failed saving recording info to %s: %s", path, err)
	}
}
