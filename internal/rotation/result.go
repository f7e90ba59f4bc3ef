package rotation

import (
	"fmt"
	"time"
)

// Result records one completed (or, in dry-run mode, hypothetical) rotation.
// Results are immutable once returned.
type Result struct {
	Source       string
	Destination  string
	OriginalSize int64

	// CompressedSize is the archive's on-disk size. It is nil when the
	// codec is identity and for dry-run results.
	CompressedSize *int64

	Timestamp time.Time
}

// StoredSize is the number of bytes the archive occupies, falling back to
// the original size when no compressed size was recorded.
func (r Result) StoredSize() int64 {
	if r.CompressedSize != nil {
		return *r.CompressedSize
	}
	return r.OriginalSize
}

// Summary aggregates a batch of rotation results. The engine keeps no
// history of its own; callers fold the slices returned by Rotate.
type Summary struct {
	Rotated       int
	OriginalBytes int64
	StoredBytes   int64
}

func Summarize(results []Result) Summary {
	var s Summary
	s.Rotated = len(results)
	for _, r := range results {
		s.OriginalBytes += r.OriginalSize
		s.StoredBytes += r.StoredSize()
	}
	return s
}

// SpaceSaved is the percentage saved by compression, 0 for an empty batch.
func (s Summary) SpaceSaved() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return (1 - float64(s.StoredBytes)/float64(s.OriginalBytes)) * 100
}

func (s Summary) String() string {
	const mb = 1024 * 1024
	return fmt.Sprintf(
		"Rotated %d file(s)\nOriginal total: %.2f MB\nCompressed total: %.2f MB\nSpace saved: %.1f%%",
		s.Rotated,
		float64(s.OriginalBytes)/mb,
		float64(s.StoredBytes)/mb,
		s.SpaceSaved(),
	)
}
