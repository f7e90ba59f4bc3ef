package fs

import (
	"context"
	"os"
	"path/filepath"
)

type OSFS struct{}

// the concrete implementation of FS backed by the local OS filesystem.
// Platform-specific details (such as inode extraction) are handled in build-tagged files.

func New() *OSFS {
	return &OSFS{}
}

func (o *OSFS) Stat(path string) (FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}

	return FileInfo{
		Path:    path,
		Size:    st.Size(),
		MTime:   st.ModTime(),
		Inode:   inodeOf(st),
		Regular: st.Mode().IsRegular(),
	}, nil
}

func (o *OSFS) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

func (o *OSFS) ReadDir(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, ent := range entries {
		st, err := ent.Info()
		if err != nil {
			// entry vanished between ReadDir and Info
			continue
		}
		infos = append(infos, FileInfo{
			Path:    filepath.Join(dir, ent.Name()),
			Size:    st.Size(),
			MTime:   st.ModTime(),
			Inode:   inodeOf(st),
			Regular: st.Mode().IsRegular(),
		})
	}
	return infos, nil
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return retry(ctx, "rename", func() error {
		return os.Rename(oldPath, newPath)
	})
}

func (o *OSFS) Remove(ctx context.Context, path string) error {
	return retry(ctx, "remove", func() error {
		return os.Remove(path)
	})
}

func (o *OSFS) Truncate(path string, size int64) error {
	return os.Truncate(path, size)
}
