package preview

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/shapealign/pkg/cache"
	"github.com/matzehuels/shapealign/pkg/layout"
)

// mapCache is an in-memory cache.Cache.
type mapCache struct {
	data map[string][]byte
	sets int
}

func (m *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.data[key] = data
	m.sets++
	return nil
}

func (m *mapCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mapCache) Close() error { return nil }

func TestRendererCacheHit(t *testing.T) {
	s, c := testSlide(), layout.DefaultCanvas()
	dot := ToDOT(s, c, Options{})
	store := &mapCache{data: map[string][]byte{
		cache.RenderKey("svg", dot): []byte("<svg>cached</svg>"),
	}}

	r := &Renderer{Cache: store}
	out, err := r.Render(context.Background(), s, c, "svg", Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(out) != "<svg>cached</svg>" {
		t.Errorf("Render() = %q, want the cached SVG", out)
	}
	if store.sets != 0 {
		t.Errorf("cache written %d times on a hit", store.sets)
	}
}

func TestRendererCacheMissStores(t *testing.T) {
	s, c := testSlide(), layout.DefaultCanvas()
	store := &mapCache{data: map[string][]byte{}}

	r := &Renderer{Cache: store, TTL: time.Hour}
	first, err := r.Render(context.Background(), s, c, "svg", Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if store.sets != 1 {
		t.Fatalf("cache written %d times, want 1", store.sets)
	}

	second, err := r.Render(context.Background(), s, c, "svg", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) || store.sets != 1 {
		t.Error("second render did not come from the cache")
	}
}

func TestRendererDOTSkipsCache(t *testing.T) {
	store := &mapCache{data: map[string][]byte{}}
	r := &Renderer{Cache: store}
	if _, err := r.Render(context.Background(), testSlide(), layout.DefaultCanvas(), "dot", Options{}); err != nil {
		t.Fatal(err)
	}
	if store.sets != 0 {
		t.Error("DOT output should not be cached")
	}
}
