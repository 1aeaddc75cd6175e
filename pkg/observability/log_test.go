package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	ctx := context.Background()

	h.OnLayoutStart(ctx, 10)
	h.OnLayoutComplete(ctx, 10, 7, time.Millisecond, nil)
	h.OnRenderComplete(ctx, []string{"png"}, time.Millisecond, errors.New("boom"))
	h.OnCacheHit(ctx, "layout")
	h.OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)

	out := buf.String()
	for _, want := range []string{
		"layout started",
		"layout complete",
		"radius=7",
		"render failed",
		"err=boom",
		"cache hit",
		"status=200",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksRegistered(t *testing.T) {
	Reset()
	defer Reset()

	h := NewLogHooks(nil)
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)

	if Pipeline() != PipelineHooks(h) || Cache() != CacheHooks(h) || HTTP() != HTTPHooks(h) {
		t.Error("LogHooks should be usable for every hook category")
	}
}
