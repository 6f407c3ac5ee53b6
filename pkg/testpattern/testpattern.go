// Package testpattern renders synthetic numbered frames for exercising
// the recording pipeline without a camera.
package testpattern

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/user/camrec/pkg/recorder"
)

// Render draws one frame: a moving marker on a dark background with the
// frame index in the corner.
func Render(index, width, height int) image.Image {
	dc := gg.NewContext(width, height)

	dc.SetRGB(0.1, 0.1, 0.18)
	dc.Clear()

	// Marker orbits the center, one revolution per 120 frames.
	angle := 2 * math.Pi * float64(index%120) / 120
	radius := math.Min(float64(width), float64(height)) / 3
	cx := float64(width)/2 + radius*math.Cos(angle)
	cy := float64(height)/2 + radius*math.Sin(angle)

	dc.SetRGB(0.3, 0.85, 0.5)
	dc.DrawCircle(cx, cy, math.Min(float64(width), float64(height))/16)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawStringAnchored(fmt.Sprintf("%06d", index), 10, 10, 0, 1)

	return dc.Image()
}

// Frames renders count frames spaced intervalNs apart, timestamped from
// zero.
func Frames(count, width, height int, intervalNs int64) []recorder.Frame {
	frames := make([]recorder.Frame, 0, count)
	for i := 0; i < count; i++ {
		frames = append(frames, recorder.Frame{
			Image:       Render(i, width, height),
			TimestampNs: int64(i) * intervalNs,
		})
	}
	return frames
}
