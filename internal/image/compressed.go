package image

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/ulikunitz/xz"
)

// MaxDecompressedBytes caps how much a compressed image may expand to.
const MaxDecompressedBytes = 128 << 20

var errDecompressedTooLarge = errors.New("decompressed image exceeds size limit")

// compressedExtensions maps compression suffixes to their reader.
var compressedExtensions = map[string]func(io.Reader) (io.Reader, error){
	".gz":  func(r io.Reader) (io.Reader, error) { return gzip.NewReader(r) },
	".xz":  func(r io.Reader) (io.Reader, error) { return xz.NewReader(r) },
	".bz2": func(r io.Reader) (io.Reader, error) { return bzip2.NewReader(r), nil },
}

// compressionExt returns the compression suffix of a path or URL, or ""
// when the location is not compressed.
func compressionExt(location string) string {
	if IsURL(location) {
		if u, err := url.Parse(location); err == nil {
			location = u.Path
		}
	}
	ext := strings.ToLower(path.Ext(location))
	if _, ok := compressedExtensions[ext]; ok {
		return ext
	}
	return ""
}

// decompress wraps r in a decompressor chosen by the location's suffix,
// e.g. wallpaper.png.xz. Uncompressed locations pass through unchanged.
func decompress(location string, r io.Reader) (io.Reader, error) {
	ext := compressionExt(location)
	if ext == "" {
		return r, nil
	}
	zr, err := compressedExtensions[ext](r)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s stream: %w", strings.TrimPrefix(ext, "."), err)
	}
	return &limitedReader{r: zr, remaining: MaxDecompressedBytes}, nil
}

// limitedReader fails once more than remaining bytes have been read.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, errDecompressedTooLarge
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
