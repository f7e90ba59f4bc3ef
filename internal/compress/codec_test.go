package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Codec
		wantErr bool
	}{
		{name: "empty defaults to none", input: "", want: None},
		{name: "none", input: "none", want: None},
		{name: "gzip", input: "gzip", want: Gzip},
		{name: "gz alias", input: "gz", want: Gzip},
		{name: "bzip2", input: "bzip2", want: Bzip2},
		{name: "bz2 alias", input: "bz2", want: Bzip2},
		{name: "zstd", input: "zstd", want: Zstd},
		{name: "zst alias", input: "zst", want: Zstd},
		{name: "unknown rejected", input: "lzma", wantErr: true},
		{name: "case sensitive", input: "GZIP", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "", None.Suffix())
	assert.Equal(t, ".gz", Gzip.Suffix())
	assert.Equal(t, ".bz2", Bzip2.Suffix())
	assert.Equal(t, ".zst", Zstd.Suffix())
}

func TestSuffixes(t *testing.T) {
	suffixes := Suffixes()
	assert.ElementsMatch(t, []string{".gz", ".bz2", ".zst"}, suffixes)
	for _, s := range suffixes {
		assert.NotEmpty(t, s)
	}
}

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 2048)

	for _, codec := range []Codec{None, Gzip, Bzip2, Zstd} {
		t.Run(codec.String(), func(t *testing.T) {
			var buf bytes.Buffer

			w, err := codec.NewWriter(&buf)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			if codec == None {
				assert.Equal(t, payload, buf.Bytes(), "identity output must be byte-identical")
			} else {
				assert.Less(t, buf.Len(), len(payload), "compressed output should shrink this payload")
			}

			r, err := codec.NewReader(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			decoded, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())

			assert.Equal(t, payload, decoded)
		})
	}
}
