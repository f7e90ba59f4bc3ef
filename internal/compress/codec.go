// Package compress defines the archive codecs used when rotating log files.
// A Codec is a closed set of variants; adding a format means adding a
// constant here plus its suffix/writer/reader arms, nothing engine-side.
package compress

import (
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type Codec int

const (
	// None stores the archive as a byte-for-byte copy with no suffix.
	None Codec = iota
	Gzip
	Bzip2
	Zstd
)

// Parse maps a configured compression name to a Codec.
// An empty name defaults to None; unknown names are rejected.
func Parse(name string) (Codec, error) {
	switch name {
	case "", "none":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "bzip2", "bz2":
		return Bzip2, nil
	case "zstd", "zst":
		return Zstd, nil
	default:
		return None, fmt.Errorf("unknown compression %q (want none, gzip, bzip2 or zstd)", name)
	}
}

func (c Codec) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Suffix returns the file-name suffix appended to archives, empty for None.
func (c Codec) Suffix() string {
	switch c {
	case Gzip:
		return ".gz"
	case Bzip2:
		return ".bz2"
	case Zstd:
		return ".zst"
	default:
		return ""
	}
}

// Suffixes lists every non-empty archive suffix. The retention sweep uses
// this to recognize archives; uncompressed copies are deliberately not
// covered (they are indistinguishable from live files by suffix alone).
func Suffixes() []string {
	return []string{Gzip.Suffix(), Bzip2.Suffix(), Zstd.Suffix()}
}

// NewWriter wraps w with the codec's streaming encoder. The caller must
// Close the returned writer before relying on the output being complete.
// For None the bytes pass through and Close does not close w.
func (c Codec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Bzip2:
		return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
	case Zstd:
		return zstd.NewWriter(w)
	default:
		return nil, fmt.Errorf("codec %d has no writer", c)
	}
}

// NewReader wraps r with the codec's streaming decoder.
func (c Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	switch c {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return gzip.NewReader(r)
	case Bzip2:
		return bzip2.NewReader(r, nil)
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("codec %d has no reader", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
