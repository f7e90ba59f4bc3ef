package rotation

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jy02140251/log-rotator/internal/compress"
	"github.com/jy02140251/log-rotator/internal/fs"
)

// Prune keeps only the newest BackupCount archives per source file in dir,
// deleting the rest regardless of age, and returns how many were removed
// (or would be, in dry-run mode). Archives are grouped by the name the
// rotation produced them under, so `app.<ts>.log.gz` and `app.<ts>.err.gz`
// count against separate budgets. Unlike the age sweep this also covers
// uncompressed archives, since the embedded timestamp identifies them.
//
// A BackupCount of zero or less disables pruning.
func (e *Engine) Prune(ctx context.Context, dir string, dryRun bool) (int, error) {
	keep := e.policy.BackupCount
	if keep <= 0 {
		return 0, nil
	}

	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading archive directory: %w", err)
	}

	groups := map[string][]fs.FileInfo{}
	for _, ent := range entries {
		if !ent.Regular {
			continue
		}
		key, ok := archiveGroupKey(filepath.Base(ent.Path), e.policy.TimestampFormat)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], ent)
	}

	removed := 0
	for key, archives := range groups {
		if len(archives) <= keep {
			continue
		}

		// newest first
		sort.Slice(archives, func(i, j int) bool {
			return archives[i].MTime.After(archives[j].MTime)
		})

		for _, ent := range archives[keep:] {
			if dryRun {
				e.log.Info("dry run: would prune", "path", ent.Path, "group", key)
				removed++
				continue
			}

			if err := e.fs.Remove(ctx, ent.Path); err != nil {
				e.log.Error("pruning archive failed", "path", ent.Path, "error", err)
				continue
			}
			e.log.Debug("pruned archive", "path", ent.Path, "group", key)
			removed++
		}
	}

	return removed, nil
}

// archiveGroupKey recovers the source file name an archive was rotated
// from by locating the embedded timestamp, e.g. `app.20260823_101500.log.gz`
// maps to `app.log`. Reports false for names that do not look like
// rotation output.
func archiveGroupKey(name, layout string) (string, bool) {
	rest := name
	for _, s := range compress.Suffixes() {
		if strings.HasSuffix(rest, s) {
			rest = strings.TrimSuffix(rest, s)
			break
		}
	}

	parts := strings.Split(rest, ".")
	for i := 1; i < len(parts); i++ {
		if _, err := time.Parse(layout, parts[i]); err != nil {
			continue
		}

		tail := parts[i+1:]
		if len(tail) > 0 && isDigits(tail[0]) {
			// collision-sequence component
			tail = tail[1:]
		}

		key := append([]string{strings.Join(parts[:i], ".")}, tail...)
		return strings.Join(key, "."), true
	}

	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
