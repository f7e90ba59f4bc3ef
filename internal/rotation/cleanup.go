package rotation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jy02140251/log-rotator/internal/compress"
)

// CleanupOld deletes archives in dir whose modification time is strictly
// older than now minus the policy's MaxAge, and returns how many were
// removed (or would be, in dry-run mode). Only names carrying a known
// codec suffix are considered: an uncompressed archive cannot be told
// apart from a live log by suffix, so the age sweep leaves it alone and
// Prune covers it instead.
//
// Deletion failures are logged and skipped; the sweep never aborts on one
// bad entry, so the returned count may undercount what was eligible.
func (e *Engine) CleanupOld(ctx context.Context, dir string, dryRun bool) (int, error) {
	cutoff := time.Now().Add(-e.policy.MaxAge)

	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading archive directory: %w", err)
	}

	removed := 0
	for _, ent := range entries {
		if !ent.Regular || !hasArchiveSuffix(ent.Path) {
			continue
		}
		if !ent.MTime.Before(cutoff) {
			continue
		}

		if dryRun {
			e.log.Info("dry run: would delete", "path", ent.Path, "modified", ent.MTime)
			removed++
			continue
		}

		if err := e.fs.Remove(ctx, ent.Path); err != nil {
			e.log.Error("deleting archive failed", "path", ent.Path, "error", err)
			continue
		}
		e.log.Debug("deleted expired archive", "path", ent.Path, "modified", ent.MTime)
		removed++
	}

	return removed, nil
}

func hasArchiveSuffix(name string) bool {
	for _, s := range compress.Suffixes() {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
