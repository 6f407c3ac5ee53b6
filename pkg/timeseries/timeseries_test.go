package timeseries

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/camrec/pkg/mocks"
)

func TestSave_WritesBothSideFiles(t *testing.T) {
	fs := &mocks.FileSystem{}
	s := Series{0, 33_333_333, 66_666_666}

	if err := s.Save(fs, "out", "camera0"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, ok := fs.Files[filepath.Join("out", "camera0"+BinarySuffix)]; !ok {
		t.Error("expected binary side-file")
	}
	if _, ok := fs.Files[filepath.Join("out", "camera0"+CSVSuffix)]; !ok {
		t.Error("expected csv side-file")
	}
}

func TestSave_IndependentFailures(t *testing.T) {
	written := make(map[string][]byte)
	fs := &mocks.FileSystem{
		WriteFileFunc: func(path string, data []byte) error {
			if strings.HasSuffix(path, BinarySuffix) {
				return errors.New("permission denied")
			}
			written[path] = data
			return nil
		},
	}

	s := Series{1, 2, 3}
	err := s.Save(fs, "out", "camera0")
	if err == nil {
		t.Fatal("expected aggregated error")
	}
	if _, ok := written[filepath.Join("out", "camera0"+CSVSuffix)]; !ok {
		t.Error("csv write must still be attempted after binary failure")
	}
}

func TestCSV_Format(t *testing.T) {
	s := Series{100, 200}
	lines := strings.Split(strings.TrimSpace(string(s.CSV())), "\n")

	want := []string{"frame,timestamp_ns", "0,100", "1,200"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestNPY_Roundtrip(t *testing.T) {
	s := Series{0, -5, 1_000_000_000, 33_333_333}

	parsed, err := ParseNPY(s.NPY())
	if err != nil {
		t.Fatalf("ParseNPY failed: %v", err)
	}
	if len(parsed) != len(s) {
		t.Fatalf("expected %d values, got %d", len(s), len(parsed))
	}
	for i := range s {
		if parsed[i] != s[i] {
			t.Errorf("value %d: expected %d, got %d", i, s[i], parsed[i])
		}
	}
}

func TestNPY_EmptySeries(t *testing.T) {
	parsed, err := ParseNPY(Series{}.NPY())
	if err != nil {
		t.Fatalf("ParseNPY failed: %v", err)
	}
	if len(parsed) != 0 {
		t.Errorf("expected empty series, got %d values", len(parsed))
	}
}

func TestNPY_HeaderAlignment(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100} {
		s := make(Series, n)
		data := s.NPY()
		preambleAndHeader := len(data) - 8*n
		if preambleAndHeader%64 != 0 {
			t.Errorf("n=%d: header block length %d not 64-byte aligned", n, preambleAndHeader)
		}
	}
}

func TestParseNPY_Rejects(t *testing.T) {
	if _, err := ParseNPY([]byte("not an npy")); err == nil {
		t.Error("expected error for bad magic")
	}
	if _, err := ParseNPY(nil); err == nil {
		t.Error("expected error for empty input")
	}

	// Unsupported version.
	data := Series{1}.NPY()
	data[6] = 2
	if _, err := ParseNPY(data); err == nil {
		t.Error("expected error for version 2")
	}
}
