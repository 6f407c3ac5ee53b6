package sessionpaths

import (
	"path/filepath"
	"testing"
)

func TestFolderResolution(t *testing.T) {
	p := New("data")

	if got, want := p.SynchronizedVideos("s1"), filepath.Join("data", "s1", "synchronized_videos"); got != want {
		t.Errorf("synchronized: expected %s, got %s", want, got)
	}
	if got, want := p.CalibrationVideos("s1"), filepath.Join("data", "s1", "calibration_videos"); got != want {
		t.Errorf("calibration: expected %s, got %s", want, got)
	}
	if got, want := p.AnnotatedVideos("s1"), filepath.Join("data", "s1", "mediapipe_annotated_videos"); got != want {
		t.Errorf("annotated: expected %s, got %s", want, got)
	}
}

func TestSessionDir(t *testing.T) {
	p := New(filepath.Join("base", "dir"))
	if got, want := p.SessionDir("s2"), filepath.Join("base", "dir", "s2"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
