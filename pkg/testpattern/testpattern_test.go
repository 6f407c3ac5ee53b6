package testpattern

import (
	"testing"
)

func TestRender_Dimensions(t *testing.T) {
	img := Render(0, 320, 240)
	bounds := img.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 240 {
		t.Errorf("expected 320x240, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestFrames_CountAndSpacing(t *testing.T) {
	frames := Frames(4, 64, 48, 33_333_333)

	if len(frames) != 4 {
		t.Fatalf("expected 4 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if want := int64(i) * 33_333_333; f.TimestampNs != want {
			t.Errorf("frame %d: expected timestamp %d, got %d", i, want, f.TimestampNs)
		}
		if f.Image == nil {
			t.Errorf("frame %d: missing image", i)
		}
	}
}
