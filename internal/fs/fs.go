// Package fs defines the filesystem abstraction used by log-rotator.
// It provides the FS interface and the FileInfo type shared across the system.
package fs

import (
	"context"
	"time"
)

type FileInfo struct {
	Path    string
	Size    int64
	MTime   time.Time
	Inode   uint64
	Regular bool
}

type FS interface {
	Stat(path string) (FileInfo, error)
	Glob(pattern string) ([]string, error)
	ReadDir(dir string) ([]FileInfo, error)
	Rename(ctx context.Context, oldPath, newPath string) error
	Remove(ctx context.Context, path string) error
	Truncate(path string, size int64) error
}
