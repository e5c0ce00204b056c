// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about arrangement runs and preview rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Hook interfaces per event category
//   - No-op default implementations
//   - Registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the engine and the
// pipeline stay free of any observability backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetPreviewHooks(&myPreviewHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnArrangeStart(ctx, runID, mode, len(shapes))
//	// ... place shapes ...
//	observability.Pipeline().OnArrangeComplete(ctx, runID, stats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// ArrangeStats summarizes one completed arrangement.
type ArrangeStats struct {
	Mode       string
	Placed     int  // slots placed, duplicates included
	Unresolved int  // order entries that matched no shape
	Overflow   bool // shapes did not fit the usable canvas
	Notice     string
}

// PipelineHooks receives events from arrangement runs.
type PipelineHooks interface {
	// Arrange events
	OnArrangeStart(ctx context.Context, runID, mode string, shapeCount int)
	OnArrangeComplete(ctx context.Context, runID string, stats ArrangeStats, duration time.Duration, err error)

	// Batch events
	OnBatchStart(ctx context.Context, jobs, concurrency int)
	OnBatchComplete(ctx context.Context, jobs, failed int, duration time.Duration)
}

// =============================================================================
// Preview Hooks
// =============================================================================

// PreviewHooks receives events from preview rendering.
type PreviewHooks interface {
	// OnRenderStart records the start of a render.
	OnRenderStart(ctx context.Context, format string, shapeCount int)

	// OnRenderComplete records a finished render and its output size in bytes.
	OnRenderComplete(ctx context.Context, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnArrangeStart(context.Context, string, string, int) {}
func (NoopPipelineHooks) OnArrangeComplete(context.Context, string, ArrangeStats, time.Duration, error) {
}
func (NoopPipelineHooks) OnBatchStart(context.Context, int, int)                     {}
func (NoopPipelineHooks) OnBatchComplete(context.Context, int, int, time.Duration) {}

// NoopPreviewHooks is a no-op implementation of PreviewHooks.
type NoopPreviewHooks struct{}

func (NoopPreviewHooks) OnRenderStart(context.Context, string, int)                        {}
func (NoopPreviewHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	previewHooks  PreviewHooks  = NoopPreviewHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any arrangement.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetPreviewHooks registers custom preview hooks.
func SetPreviewHooks(h PreviewHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		previewHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Preview returns the registered preview hooks.
func Preview() PreviewHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return previewHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	previewHooks = NoopPreviewHooks{}
}
