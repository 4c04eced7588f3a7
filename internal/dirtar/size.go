package dirtar

import (
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// sizeUnits are the display units above bytes, each 1024 of the previous.
var sizeUnits = []string{"KB", "MB", "GB", "TB"} //nolint:gochecknoglobals // Display constant

// FormatSize renders a byte count for display: an integer count below 1 KB,
// one decimal place in the next appropriate unit above.
func FormatSize(size int64) string {
	const step = 1024

	if size < step {
		return fmt.Sprintf("%d B", size)
	}

	value := float64(size)
	unit := ""

	for _, u := range sizeUnits {
		value /= step
		unit = u

		if value < step {
			break
		}
	}

	return fmt.Sprintf("%.1f %s", value, unit)
}

// entrySize sums the regular-file bytes under dir, for progress display only.
// Symlinks are not followed and unreadable paths are skipped.
//
//nolint:varnamelen // d is standard for DirEntry
func entrySize(dir string) int64 {
	var total atomic.Int64

	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	// fastwalk calls back from multiple goroutines, hence the atomic
	_ = fastwalk.Walk(conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		total.Add(info.Size())

		return nil
	})

	return total.Load()
}
