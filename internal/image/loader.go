// Package image loads images from local files or HTTP(S) URLs so a primary
// colour can be derived from them.
package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/jmylchreest/tonal/internal/util/http"
)

// Loader loads an image from a location.
type Loader interface {
	Load(ctx context.Context, location string) (image.Image, error)
}

// SupportedImageExtensions returns the file extensions the loader can decode.
// Any of them may carry a further .gz, .xz or .bz2 suffix.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// IsURL reports whether location is an HTTP(S) URL.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// Load opens and decodes the image at path.
func (FileLoader) Load(_ context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	r, err := decompress(path, file)
	if err != nil {
		return nil, err
	}
	return decode(r)
}

// SmartLoader loads images from local files and HTTP(S) URLs.
type SmartLoader struct {
	// CacheDir, when set, keeps downloaded images so repeated runs against
	// the same URL skip the network.
	CacheDir string

	files  FileLoader
	fetch  func(ctx context.Context, url string, opts httputil.FetchOptions) ([]byte, error)
	logger hclog.Logger
}

// NewSmartLoader creates a SmartLoader. A nil logger discards output.
func NewSmartLoader(logger hclog.Logger) *SmartLoader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SmartLoader{
		fetch:  httputil.Fetch,
		logger: logger.Named("image"),
	}
}

// Load loads an image from a local path or an HTTP(S) URL.
func (l *SmartLoader) Load(ctx context.Context, location string) (image.Image, error) {
	var (
		img image.Image
		err error
	)

	switch {
	case IsURL(location) && l.CacheDir != "":
		var cachedPath string
		cachedPath, err = l.cached(ctx, l.CacheDir, location)
		if err != nil {
			return nil, err
		}
		img, err = l.files.Load(ctx, cachedPath)
	case IsURL(location):
		l.logger.Debug("fetching image", "url", location)
		var data []byte
		data, err = l.fetch(ctx, location, httputil.FetchOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
		}
		var r io.Reader
		r, err = decompress(location, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		img, err = decode(r)
	default:
		l.logger.Debug("loading image", "path", location)
		img, err = l.files.Load(ctx, location)
	}
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	l.logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())
	return img, nil
}

func decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}
