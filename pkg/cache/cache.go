// Package cache stores rendered previews between runs.
//
// Rendering a slide through Graphviz is the slowest step of the preview
// command, and the same snapshot is often previewed again after an
// unrelated edit to another slide. Entries are keyed by a hash of the
// render input, so a cache hit always returns the bytes that rendering
// would have produced.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/shapealign/pkg/config"
)

// DefaultTTL is how long a rendered preview is kept.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// Dir returns the cache directory, honoring XDG_CACHE_HOME.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, config.AppName), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, config.AppName), nil
}
