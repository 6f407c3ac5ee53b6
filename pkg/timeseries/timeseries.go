// Package timeseries persists a recorder's timestamp series as a binary
// numeric array plus a human-readable CSV, best-effort.
package timeseries

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/user/camrec/pkg/ports"
)

// Side-file suffixes appended to the video name.
const (
	BinarySuffix = "_timestamps_binary.npy"
	CSVSuffix    = "_timestamps_human_readable.csv"
)

// Series is an ordered sequence of capture timestamps in nanoseconds,
// preserved verbatim in arrival order.
type Series []int64

// Save writes both side-files under dir for the given video name. The
// two writes are independent: a failure in one does not prevent the
// other, and failures are aggregated into the returned error.
func (s Series) Save(fs ports.FileSystem, dir, name string) error {
	var errs []error
	if err := fs.WriteFile(filepath.Join(dir, name+BinarySuffix), s.NPY()); err != nil {
		errs = append(errs, fmt.Errorf("binary timestamps: %w", err))
	}
	if err := fs.WriteFile(filepath.Join(dir, name+CSVSuffix), s.CSV()); err != nil {
		errs = append(errs, fmt.Errorf("csv timestamps: %w", err))
	}
	return errors.Join(errs...)
}

// CSV serializes the series as an indexed table: a header row followed
// by one row per timestamp.
func (s Series) CSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"frame", "timestamp_ns"})
	for i, ts := range s {
		w.Write([]string{strconv.Itoa(i), strconv.FormatInt(ts, 10)})
	}
	w.Flush()
	return buf.Bytes()
}
