package rotation

import (
	"context"
	"fmt"
	"io"
	"os"
)

// writeArchive streams src through the policy's codec into dst and returns
// the archive's on-disk size. The bytes go to a temporary sibling first and
// are renamed into place once complete, so a partial archive never appears
// under the final name. On failure the temporary file is removed and src is
// untouched.
func (e *Engine) writeArchive(ctx context.Context, src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	tmp := dst + ".tmp"
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, fmt.Errorf("creating archive: %w", err)
	}

	abort := func() {
		_ = out.Close()
		_ = os.Remove(tmp)
	}

	enc, err := e.policy.Compression.NewWriter(out)
	if err != nil {
		abort()
		return 0, fmt.Errorf("initializing %s encoder: %w", e.policy.Compression, err)
	}

	if _, err := io.Copy(enc, in); err != nil {
		abort()
		return 0, fmt.Errorf("copying: %w", err)
	}
	if err := enc.Close(); err != nil {
		abort()
		return 0, fmt.Errorf("flushing encoder: %w", err)
	}
	if err := out.Sync(); err != nil {
		abort()
		return 0, fmt.Errorf("syncing archive: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("closing archive: %w", err)
	}

	if err := e.fs.Rename(ctx, tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("finalizing archive: %w", err)
	}

	info, err := e.fs.Stat(dst)
	if err != nil {
		return 0, fmt.Errorf("stat archive: %w", err)
	}
	return info.Size, nil
}
