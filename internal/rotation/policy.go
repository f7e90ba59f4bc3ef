package rotation

import (
	"fmt"
	"time"

	"github.com/jy02140251/log-rotator/internal/compress"
)

// DefaultTimestampFormat names archives down to the second.
const DefaultTimestampFormat = "20060102_150405"

// CollisionMode decides what happens when a rotation lands on a
// destination name that already exists.
type CollisionMode int

const (
	// CollisionOverwrite replaces the existing archive. Two rotations of
	// the same file within one timestamp-format tick keep only the latest.
	CollisionOverwrite CollisionMode = iota

	// CollisionSequence inserts a numeric component after the timestamp
	// until the name is free.
	CollisionSequence
)

// ParseCollisionMode maps a configured name to a CollisionMode.
// An empty name defaults to CollisionOverwrite.
func ParseCollisionMode(name string) (CollisionMode, error) {
	switch name {
	case "", "overwrite":
		return CollisionOverwrite, nil
	case "sequence":
		return CollisionSequence, nil
	default:
		return CollisionOverwrite, fmt.Errorf("unknown collision mode %q (want overwrite or sequence)", name)
	}
}

// Policy is the immutable rotation configuration. It is built and
// validated by the caller (see internal/config); the engine trusts it.
type Policy struct {
	// MaxSizeBytes is the size at or above which a file is rotated.
	MaxSizeBytes int64

	// MaxAge is the retention window for the age sweep. Archives whose
	// modification time is strictly older than now-MaxAge are deleted.
	MaxAge time.Duration

	// Compression selects the archive codec.
	Compression compress.Codec

	// TimestampFormat is the Go reference layout interpolated into
	// archive names. Empty means DefaultTimestampFormat.
	TimestampFormat string

	// BackupCount is the number of archives kept per source file by the
	// count-based prune. Zero or negative disables pruning.
	BackupCount int

	// OnCollision picks the destination-name collision strategy.
	OnCollision CollisionMode
}

// DefaultPolicy mirrors the defaults the config layer documents.
func DefaultPolicy() Policy {
	return Policy{
		MaxSizeBytes:    100 * 1024 * 1024,
		MaxAge:          30 * 24 * time.Hour,
		Compression:     compress.Gzip,
		TimestampFormat: DefaultTimestampFormat,
		BackupCount:     10,
		OnCollision:     CollisionOverwrite,
	}
}
