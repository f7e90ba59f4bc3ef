package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func int64p(v int64) *int64 { return &v }

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Rotated)
	assert.Equal(t, int64(0), s.OriginalBytes)
	assert.Equal(t, int64(0), s.StoredBytes)
	assert.Equal(t, 0.0, s.SpaceSaved(), "empty history must not divide by zero")

	want := "Rotated 0 file(s)\nOriginal total: 0.00 MB\nCompressed total: 0.00 MB\nSpace saved: 0.0%"
	assert.Equal(t, want, s.String())
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	results := []Result{
		{
			Source:         "/var/log/a.log",
			Destination:    "/var/log/a.20260823_101500.log.gz",
			OriginalSize:   4 * mib,
			CompressedSize: int64p(1 * mib),
			Timestamp:      now,
		},
		{
			// identity rotation: stored size falls back to original
			Source:       "/var/log/b.log",
			Destination:  "/var/log/b.20260823_101500.log",
			OriginalSize: 4 * mib,
			Timestamp:    now,
		},
	}

	s := Summarize(results)
	assert.Equal(t, 2, s.Rotated)
	assert.Equal(t, int64(8*mib), s.OriginalBytes)
	assert.Equal(t, int64(5*mib), s.StoredBytes)
	assert.InDelta(t, 37.5, s.SpaceSaved(), 0.001)

	want := "Rotated 2 file(s)\nOriginal total: 8.00 MB\nCompressed total: 5.00 MB\nSpace saved: 37.5%"
	assert.Equal(t, want, s.String())
}

func TestStoredSize(t *testing.T) {
	withCompression := Result{OriginalSize: 100, CompressedSize: int64p(40)}
	assert.Equal(t, int64(40), withCompression.StoredSize())

	identity := Result{OriginalSize: 100}
	assert.Equal(t, int64(100), identity.StoredSize())
}
