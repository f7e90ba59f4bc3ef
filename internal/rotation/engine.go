// Package rotation implements size-based log rotation with pluggable
// compression, plus the age- and count-based retention sweeps over the
// archives it produces.
package rotation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jy02140251/log-rotator/internal/compress"
	"github.com/jy02140251/log-rotator/internal/fs"
	"github.com/jy02140251/log-rotator/internal/logging"
)

// Engine rotates live log files into timestamped archives.
type Engine struct {
	policy Policy
	fs     fs.FS
	log    logging.Logger
}

// New creates an engine for the given policy. A nil filesystem falls back
// to the local OS filesystem; a nil logger discards output.
func New(policy Policy, log logging.Logger, filesystem fs.FS) *Engine {
	if filesystem == nil {
		filesystem = fs.New()
	}
	if log == nil {
		log = logging.Nop{}
	}
	if policy.TimestampFormat == "" {
		policy.TimestampFormat = DefaultTimestampFormat
	}
	return &Engine{
		policy: policy,
		fs:     filesystem,
		log:    log,
	}
}

// ShouldRotate reports whether path is due for rotation. Missing paths and
// non-regular files are simply not due; this never errors.
func (e *Engine) ShouldRotate(path string) bool {
	info, err := e.fs.Stat(path)
	if err != nil || !info.Regular {
		return false
	}
	return info.Size >= e.policy.MaxSizeBytes
}

// RotateFile rotates a single file into a timestamped archive and truncates
// the source in place, so a process holding the file open keeps writing to
// the same inode.
//
// A missing or non-regular path returns (nil, nil). If the archive cannot
// be written the source is left untouched and the error is returned. If the
// archive was written but the truncate failed, both the Result and the
// error are returned: the data is safe, the source just was not cleared.
func (e *Engine) RotateFile(ctx context.Context, path string, dryRun bool) (*Result, error) {
	info, err := e.fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Regular {
		return nil, nil
	}

	now := time.Now()
	dest := e.destinationFor(path, now)

	res := &Result{
		Source:       path,
		Destination:  dest,
		OriginalSize: info.Size,
		Timestamp:    now,
	}

	if dryRun {
		e.log.Info("dry run: would rotate", "source", path, "destination", dest, "bytes", info.Size)
		return res, nil
	}

	stored, err := e.writeArchive(ctx, path, dest)
	if err != nil {
		return nil, fmt.Errorf("archiving %s: %w", path, err)
	}
	if e.policy.Compression != compress.None {
		res.CompressedSize = &stored
	}

	if err := e.fs.Truncate(path, 0); err != nil {
		// The archive is durable; the source still holds the rotated bytes.
		// The next rotation pass will pick it up again.
		return res, fmt.Errorf("truncating %s after archive: %w", path, err)
	}

	e.log.Info("rotated", "source", path, "destination", dest, "bytes", info.Size)
	return res, nil
}

// Rotate expands pattern, rotates every match that is due, and returns the
// results in lexicographic path order. Individual failures are logged and
// do not stop the batch; files that vanish mid-batch are skipped.
func (e *Engine) Rotate(ctx context.Context, pattern string, dryRun bool) ([]Result, error) {
	matches, err := e.fs.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	var results []Result
	for _, path := range matches {
		if !e.ShouldRotate(path) {
			continue
		}
		res, err := e.RotateFile(ctx, path, dryRun)
		if err != nil {
			e.log.Error("rotation failed", "path", path, "error", err)
		}
		if res != nil {
			results = append(results, *res)
		}
	}
	return results, nil
}

// destinationFor builds `<stem>.<timestamp><ext><codec-suffix>` next to the
// source, applying the collision strategy when the name is taken.
func (e *Engine) destinationFor(path string, now time.Time) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	ts := now.Format(e.policy.TimestampFormat)
	suffix := e.policy.Compression.Suffix()

	dest := filepath.Join(dir, stem+"."+ts+ext+suffix)
	if e.policy.OnCollision != CollisionSequence {
		return dest
	}

	for seq := 1; e.exists(dest); seq++ {
		dest = filepath.Join(dir, fmt.Sprintf("%s.%s.%d%s%s", stem, ts, seq, ext, suffix))
	}
	return dest
}

func (e *Engine) exists(path string) bool {
	_, err := e.fs.Stat(path)
	return err == nil
}
