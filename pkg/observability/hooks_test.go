package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnArrangeStart(ctx, "run", "horizontal_distribute", 3)
	p.OnArrangeComplete(ctx, "run", ArrangeStats{Mode: "horizontal_distribute", Placed: 3}, time.Millisecond, nil)
	p.OnBatchStart(ctx, 10, 4)
	p.OnBatchComplete(ctx, 10, 1, time.Second)

	r := NoopPreviewHooks{}
	r.OnRenderStart(ctx, "svg", 3)
	r.OnRenderComplete(ctx, "svg", 2048, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Preview().(NoopPreviewHooks); !ok {
		t.Error("Preview() should return NoopPreviewHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customPreview := &testPreviewHooks{}
	SetPreviewHooks(customPreview)
	if Preview() != customPreview {
		t.Error("SetPreviewHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Preview().(NoopPreviewHooks); !ok {
		t.Error("Reset() should restore NoopPreviewHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should keep the current hooks")
	}

	SetPreviewHooks(nil)
	if _, ok := Preview().(NoopPreviewHooks); !ok {
		t.Error("SetPreviewHooks(nil) should keep the current hooks")
	}
}

func TestHooksConcurrentAccess(t *testing.T) {
	Reset()
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetPipelineHooks(&testPipelineHooks{})
		}()
		go func() {
			defer wg.Done()
			Pipeline().OnArrangeStart(context.Background(), "run", "vertical_center", 2)
		}()
	}
	wg.Wait()
}

type testPipelineHooks struct {
	mu     sync.Mutex
	starts int
}

func (h *testPipelineHooks) OnArrangeStart(context.Context, string, string, int) {
	h.mu.Lock()
	h.starts++
	h.mu.Unlock()
}
func (h *testPipelineHooks) OnArrangeComplete(context.Context, string, ArrangeStats, time.Duration, error) {
}
func (h *testPipelineHooks) OnBatchStart(context.Context, int, int)                     {}
func (h *testPipelineHooks) OnBatchComplete(context.Context, int, int, time.Duration) {}

type testPreviewHooks struct{}

func (testPreviewHooks) OnRenderStart(context.Context, string, int)                        {}
func (testPreviewHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}
