package mjpegsink

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
)

// buildMP4 creates a fragmented MP4 with one video track of JPEG
// samples at a constant frame duration. Every sample is a sync sample.
func (w *writer) buildMP4() ([]byte, error) {
	timescale := uint32(w.fps * 1000)
	trackID := uint32(1)

	init := mp4.CreateEmptyInit()
	init.AddEmptyTrack(timescale, "video", "en")

	trak := init.Moov.Trak

	pasp := &mp4.PaspBox{HSpacing: 1, VSpacing: 1}
	entry := mp4.CreateVisualSampleEntryBox("jpeg", uint16(w.width), uint16(w.height), pasp)
	trak.Mdia.Minf.Stbl.Stsd.AddChild(entry)

	trak.Tkhd.Width = mp4.Fixed32(w.width << 16)
	trak.Tkhd.Height = mp4.Fixed32(w.height << 16)

	frag, err := mp4.CreateFragment(1, trackID)
	if err != nil {
		return nil, fmt.Errorf("create fragment: %w", err)
	}

	// Constant per-sample duration in timescale units (timescale is
	// fps*1000, so this is always 1000).
	dur := uint32(float64(timescale) / w.fps)

	for i, sample := range w.samples {
		frag.AddFullSample(mp4.FullSample{
			Sample: mp4.Sample{
				Flags: mp4.SyncSampleFlags,
				Size:  uint32(len(sample)),
				Dur:   dur,
			},
			DecodeTime: uint64(i) * uint64(dur),
			Data:       sample,
		})
	}

	var buf bytes.Buffer

	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "mp41"})
	if err := ftyp.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode ftyp: %w", err)
	}
	if err := init.Moov.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode moov: %w", err)
	}
	if err := frag.Encode(&buf); err != nil {
		return nil, fmt.Errorf("encode fragment: %w", err)
	}

	return buf.Bytes(), nil
}
