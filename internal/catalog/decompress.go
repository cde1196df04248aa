package catalog

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// maxCatalogBytes caps decompressed catalog size; a paint database is a few
// hundred rows, so anything near this limit is a decompression bomb.
const maxCatalogBytes = 32 * 1024 * 1024

// decompress expands a compressed catalog payload based on the file
// extension and returns the payload plus the remaining base filename (the
// path with the compression suffix stripped) used for format dispatch.
func decompress(data []byte, path string) ([]byte, string, error) {
	base := filepath.Base(path)

	var reader io.Reader
	switch {
	case strings.HasSuffix(base, ".gz"):
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		reader = gzr
		base = strings.TrimSuffix(base, ".gz")
	case strings.HasSuffix(base, ".bz2"):
		reader = bzip2.NewReader(bytes.NewReader(data))
		base = strings.TrimSuffix(base, ".bz2")
	case strings.HasSuffix(base, ".xz"):
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("failed to create xz reader: %w", err)
		}
		reader = xzr
		base = strings.TrimSuffix(base, ".xz")
	default:
		return data, base, nil
	}

	expanded, err := io.ReadAll(newLimitedReader(reader, maxCatalogBytes))
	if err != nil {
		return nil, "", err
	}
	return expanded, base, nil
}

// limitedReader bounds the bytes read from a decompression stream so a
// crafted payload cannot exhaust memory.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func newLimitedReader(r io.Reader, maxBytes int64) *limitedReader {
	return &limitedReader{r: r, remaining: maxBytes}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, fmt.Errorf("decompression size limit exceeded")
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
