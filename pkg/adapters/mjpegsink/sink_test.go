package mjpegsink

import (
	"bytes"
	"errors"
	"image"
	"math"
	"testing"

	"github.com/user/camrec/pkg/mocks"
)

func TestOpen_RejectsBadParameters(t *testing.T) {
	s := New(&mocks.FileSystem{})

	if _, err := s.Open("out.mp4", "MP4V", math.NaN(), 64, 48); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("expected ErrInvalidRate for NaN, got %v", err)
	}
	if _, err := s.Open("out.mp4", "MP4V", math.Inf(1), 64, 48); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("expected ErrInvalidRate for +Inf, got %v", err)
	}
	if _, err := s.Open("out.mp4", "MP4V", 0, 64, 48); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("expected ErrInvalidRate for zero, got %v", err)
	}
	if _, err := s.Open("out.mp4", "MP4V", 30, 0, 48); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestWriteAndRelease_ProducesMP4(t *testing.T) {
	fs := &mocks.FileSystem{}
	s := New(fs)

	w, err := s.Open("out.mp4", "MP4V", 30, 64, 48)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := w.Write(image.NewRGBA(image.Rect(0, 0, 64, 48))); err != nil {
			t.Fatalf("Write %d failed: %v", i, err)
		}
	}
	if err := w.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	data, ok := fs.Files["out.mp4"]
	if !ok {
		t.Fatal("expected output file")
	}
	if len(data) < 12 || !bytes.Equal(data[4:8], []byte("ftyp")) {
		t.Errorf("expected mp4 ftyp header, got % x", data[:12])
	}
}

func TestWrite_ScalesMismatchedImage(t *testing.T) {
	fs := &mocks.FileSystem{}
	s := New(fs)

	w, err := s.Open("out.mp4", "MP4V", 30, 64, 48)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	// A frame at a different resolution is scaled, not rejected.
	if err := w.Write(image.NewRGBA(image.Rect(0, 0, 128, 96))); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
}

func TestRelease_Idempotent(t *testing.T) {
	fs := &mocks.FileSystem{}
	s := New(fs)

	w, err := s.Open("out.mp4", "MP4V", 30, 64, 48)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := w.Write(image.NewRGBA(image.Rect(0, 0, 64, 48))); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Release(); err != nil {
		t.Fatalf("first Release failed: %v", err)
	}
	if err := w.Release(); err != nil {
		t.Fatalf("second Release failed: %v", err)
	}

	if err := w.Write(image.NewRGBA(image.Rect(0, 0, 64, 48))); !errors.Is(err, ErrReleased) {
		t.Errorf("expected ErrReleased after release, got %v", err)
	}
}
