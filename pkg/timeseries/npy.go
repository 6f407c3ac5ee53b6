package timeseries

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// NumPy .npy version 1.0 with little-endian int64 payload, so the
// binary side-file loads directly in the analysis tooling downstream
// of the recorder.

const npyMagic = "\x93NUMPY"

// NPY serializes the series as an .npy array of dtype <i8.
func (s Series) NPY() []byte {
	header := fmt.Sprintf("{'descr': '<i8', 'fortran_order': False, 'shape': (%d,), }", len(s))

	// Total preamble (magic + version + header length + header text,
	// newline-terminated) must be a multiple of 64 bytes.
	preamble := len(npyMagic) + 2 + 2
	pad := 64 - (preamble+len(header)+1)%64
	if pad == 64 {
		pad = 0
	}
	header += strings.Repeat(" ", pad) + "\n"

	var buf bytes.Buffer
	buf.WriteString(npyMagic)
	buf.Write([]byte{1, 0})
	binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)
	for _, v := range s {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}

// ParseNPY decodes an .npy int64 array produced by NPY. It accepts only
// the narrow format this package writes: version 1.0, dtype <i8, one
// dimension.
func ParseNPY(data []byte) (Series, error) {
	if len(data) < len(npyMagic)+4 || string(data[:len(npyMagic)]) != npyMagic {
		return nil, fmt.Errorf("not an npy file")
	}
	if data[6] != 1 || data[7] != 0 {
		return nil, fmt.Errorf("unsupported npy version %d.%d", data[6], data[7])
	}

	headerLen := int(binary.LittleEndian.Uint16(data[8:10]))
	if len(data) < 10+headerLen {
		return nil, fmt.Errorf("truncated npy header")
	}
	header := string(data[10 : 10+headerLen])
	if !strings.Contains(header, "'<i8'") {
		return nil, fmt.Errorf("unsupported npy dtype in header %q", strings.TrimSpace(header))
	}

	payload := data[10+headerLen:]
	if len(payload)%8 != 0 {
		return nil, fmt.Errorf("npy payload length %d is not a multiple of 8", len(payload))
	}

	s := make(Series, len(payload)/8)
	for i := range s {
		s[i] = int64(binary.LittleEndian.Uint64(payload[i*8:]))
	}
	return s, nil
}
