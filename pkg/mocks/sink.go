// Package mocks provides mock implementations for testing.
package mocks

import (
	"image"

	"github.com/user/camrec/pkg/ports"
)

// VideoSink is a mock implementation of ports.VideoSink.
type VideoSink struct {
	OpenFunc func(path, fourcc string, fps float64, width, height int) (ports.SinkWriter, error)

	// Recorded calls for verification
	OpenCalls []OpenCall
	Writers   []*SinkWriter
}

// OpenCall records a call to Open.
type OpenCall struct {
	Path   string
	FourCC string
	FPS    float64
	Width  int
	Height int
}

func (m *VideoSink) Open(path, fourcc string, fps float64, width, height int) (ports.SinkWriter, error) {
	m.OpenCalls = append(m.OpenCalls, OpenCall{Path: path, FourCC: fourcc, FPS: fps, Width: width, Height: height})
	if m.OpenFunc != nil {
		return m.OpenFunc(path, fourcc, fps, width, height)
	}
	w := &SinkWriter{}
	m.Writers = append(m.Writers, w)
	return w, nil
}

// SinkWriter is a mock implementation of ports.SinkWriter.
type SinkWriter struct {
	WriteFunc   func(img image.Image) error
	ReleaseFunc func() error

	// Recorded calls for verification
	WriteCalls   []image.Image
	ReleaseCalls int
}

func (m *SinkWriter) Write(img image.Image) error {
	m.WriteCalls = append(m.WriteCalls, img)
	if m.WriteFunc != nil {
		return m.WriteFunc(img)
	}
	return nil
}

func (m *SinkWriter) Release() error {
	m.ReleaseCalls++
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc()
	}
	return nil
}

// Ensure mocks implement the ports
var (
	_ ports.VideoSink  = (*VideoSink)(nil)
	_ ports.SinkWriter = (*SinkWriter)(nil)
)
