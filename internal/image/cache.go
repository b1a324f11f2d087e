package image

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"

	httputil "github.com/jmylchreest/tonal/internal/util/http"
)

// DefaultCacheDir returns the directory remote images are cached in.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "tonal", "images"), nil
	}
	return filepath.Join(cacheDir, "tonal", "images"), nil
}

// cacheFilename derives a stable filename from a URL, keeping its
// extensions so the cached file decodes and decompresses like the original.
func cacheFilename(location string) string {
	hash := sha256.Sum256([]byte(location))
	name := fmt.Sprintf("%x", hash[:16])

	p := location
	if u, err := url.Parse(location); err == nil {
		p = u.Path
	}
	ext := path.Ext(p)
	if compressionExt(p) != "" {
		ext = path.Ext(p[:len(p)-len(ext)]) + ext
	}
	if ext == "" || len(ext) > 10 {
		ext = ".img"
	}
	return name + ext
}

// cached returns a local copy of the image at location, downloading it
// into dir on first use.
func (l *SmartLoader) cached(ctx context.Context, dir, location string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	cachedPath := filepath.Join(dir, cacheFilename(location))
	if _, err := os.Stat(cachedPath); err == nil {
		l.logger.Debug("using cached image", "url", location, "path", cachedPath)
		return cachedPath, nil
	}

	data, err := l.fetch(ctx, location, httputil.FetchOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch image from URL: %w", err)
	}
	if err := os.WriteFile(cachedPath, data, 0o644); err != nil { // #nosec G306 - Cache files need standard read permissions
		return "", fmt.Errorf("failed to write cached image: %w", err)
	}
	l.logger.Debug("cached image", "url", location, "path", cachedPath, "bytes", len(data))
	return cachedPath, nil
}
