package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLayoutStart(ctx, 100)
	p.OnLayoutComplete(ctx, 100, 42, time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "layout")
	c.OnCacheMiss(ctx, "layout")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/v1/layouts")
	h.OnResponse(ctx, "POST", "/v1/layouts", 200, time.Second)
	h.OnError(ctx, "POST", "/v1/layouts", nil)
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Errorf("HTTP() = %T, want NoopHTTPHooks", HTTP())
	}

	p := &testPipelineHooks{}
	SetPipelineHooks(p)
	SetPipelineHooks(nil)
	if Pipeline() != p {
		t.Error("SetPipelineHooks(nil) replaced registered hooks")
	}

	c := &testCacheHooks{}
	SetCacheHooks(c)
	if Cache() != c {
		t.Error("SetCacheHooks did not register hooks")
	}

	h := &testHTTPHooks{}
	SetHTTPHooks(h)
	if HTTP() != h {
		t.Error("SetHTTPHooks did not register hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() did not restore NoopPipelineHooks")
	}
}

func TestSetAll(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	s := NewStats()
	SetAll(s)
	if Pipeline() != s || Cache() != s || HTTP() != s {
		t.Error("SetAll did not register hooks for every category")
	}
	SetAll(nil)
	if Pipeline() != s {
		t.Error("SetAll(nil) replaced registered hooks")
	}
}

func TestTee(t *testing.T) {
	ctx := context.Background()
	a, b := NewStats(), NewStats()
	tee := Tee{a, b}

	tee.OnLayoutStart(ctx, 3)
	tee.OnLayoutComplete(ctx, 3, 7, time.Millisecond, nil)
	tee.OnRenderStart(ctx, []string{"svg"})
	tee.OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, errors.New("boom"))
	tee.OnCacheHit(ctx, "layout")
	tee.OnCacheMiss(ctx, "artifact")
	tee.OnCacheSet(ctx, "artifact", 10)
	tee.OnRequest(ctx, "GET", "/healthz")
	tee.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)
	tee.OnError(ctx, "GET", "/healthz", nil)

	for name, s := range map[string]*Stats{"a": a, "b": b} {
		got := s.Snapshot()
		if got.Layouts != 1 || got.RectsPlaced != 3 || got.RenderErrors != 1 || got.CacheBytes != 10 || got.Requests != 1 {
			t.Errorf("%s snapshot = %+v, want every event counted once", name, got)
		}
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
