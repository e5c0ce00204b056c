package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapealign/pkg/observability"
)

// logHooks reports pipeline and preview events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.PreviewHooks  = (*logHooks)(nil)
)

func (h *logHooks) OnArrangeStart(_ context.Context, runID, mode string, shapeCount int) {
	h.logger.Debug("arrange start", "run", runID, "mode", mode, "shapes", shapeCount)
}

func (h *logHooks) OnArrangeComplete(_ context.Context, runID string, st observability.ArrangeStats, d time.Duration, err error) {
	h.logger.Debug("arrange complete",
		"run", runID,
		"placed", st.Placed,
		"unresolved", st.Unresolved,
		"overflow", st.Overflow,
		"notice", st.Notice,
		"duration", d,
		"error", err)
}

func (h *logHooks) OnBatchStart(_ context.Context, jobs, concurrency int) {
	h.logger.Debug("batch start", "jobs", jobs, "concurrency", concurrency)
}

func (h *logHooks) OnBatchComplete(_ context.Context, jobs, failed int, d time.Duration) {
	h.logger.Debug("batch complete", "jobs", jobs, "failed", failed, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string, shapeCount int) {
	h.logger.Debug("render start", "format", format, "shapes", shapeCount)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.logger.Debug("render complete", "format", format, "bytes", size, "duration", d, "error", err)
}
