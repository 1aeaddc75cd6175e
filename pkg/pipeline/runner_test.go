package pipeline

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/geometry"
	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/observability"
)

func quietRunner(t *testing.T, c cache.Cache) *Runner {
	t.Helper()
	return NewRunner(c, nil, log.NewWithOptions(io.Discard, log.Options{}))
}

func fileCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	return c
}

func TestLayoutFromSizes(t *testing.T) {
	ctx := context.Background()
	sizes := []geometry.Size{{Width: 5, Height: 5}, {Width: 1, Height: 1}}

	l, err := LayoutFromSizes(ctx, geometry.Pt(0, 0), sizes, 0)
	if err != nil {
		t.Fatalf("LayoutFromSizes() error = %v", err)
	}
	want := []geometry.Rectangle{geometry.Rect(-3, -3, 5, 5), geometry.Rect(2, 1, 1, 1)}
	if len(l.Rectangles) != len(want) {
		t.Fatalf("got %d rectangles, want %d", len(l.Rectangles), len(want))
	}
	for i := range want {
		if l.Rectangles[i] != want[i] {
			t.Errorf("rectangle %d = %v, want %v", i, l.Rectangles[i], want[i])
		}
	}
	if l.ID == "" {
		t.Error("layout should get an ID")
	}
	if l.Radius != 2 {
		t.Errorf("Radius = %d, want 2", l.Radius)
	}
}

func TestLayoutFromSizesExhausted(t *testing.T) {
	sizes := []geometry.Size{{Width: 10, Height: 10}, {Width: 10, Height: 10}}
	_, err := LayoutFromSizes(context.Background(), geometry.Pt(0, 0), sizes, 2)
	if !errors.Is(err, errors.ErrCodePlacementExhausted) {
		t.Fatalf("error = %v, want PLACEMENT_EXHAUSTED", err)
	}
	if !strings.Contains(err.Error(), "place rectangle 1") {
		t.Errorf("error %q should name the failing index", err)
	}
}

func TestLayoutFromSizesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := LayoutFromSizes(ctx, geometry.Pt(0, 0), []geometry.Size{{Width: 1, Height: 1}}, 0)
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGenerateLayoutReproducible(t *testing.T) {
	ctx := context.Background()
	opts := Options{Count: 40, Seed: 7}
	if err := opts.ValidateForLayout(); err != nil {
		t.Fatal(err)
	}

	a, err := GenerateLayout(ctx, opts)
	if err != nil {
		t.Fatalf("GenerateLayout() error = %v", err)
	}
	b, _ := GenerateLayout(ctx, opts)

	if a.ID == b.ID {
		t.Error("each generated layout should get its own ID")
	}
	ha, _ := LayoutHash(a)
	hb, _ := LayoutHash(b)
	if ha != hb {
		t.Error("same seed should produce the same cloud")
	}
	if len(a.Rectangles) != 40 || a.Seed != 7 {
		t.Errorf("got %d rectangles with seed %d, want 40 with seed 7", len(a.Rectangles), a.Seed)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("generated layout invalid: %v", err)
	}
}

func TestRunnerLayoutCache(t *testing.T) {
	ctx := context.Background()
	r := quietRunner(t, fileCache(t))
	defer r.Close()

	opts := Options{Count: 20}
	first, hit, err := r.GenerateLayoutWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("first call error = %v", err)
	}
	if hit {
		t.Error("first call should miss")
	}

	second, hit, err := r.GenerateLayoutWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatalf("second call error = %v", err)
	}
	if !hit {
		t.Error("second call should hit")
	}
	if first.ID != second.ID {
		t.Error("cached layout should keep its ID")
	}

	opts.Refresh = true
	third, hit, _ := r.GenerateLayoutWithCacheInfo(ctx, opts)
	if hit || third.ID == first.ID {
		t.Error("refresh should recompute the layout")
	}
}

func TestRunnerRenderCache(t *testing.T) {
	ctx := context.Background()
	r := quietRunner(t, fileCache(t))

	l, err := LayoutFromSizes(ctx, geometry.Pt(0, 0), []geometry.Size{{Width: 4, Height: 2}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Formats: []string{FormatSVG, FormatJSON, FormatDOT}, Width: 64, Height: 64}

	arts, hit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		t.Fatalf("RenderWithCacheInfo() error = %v", err)
	}
	if hit {
		t.Error("first render should miss")
	}
	for _, f := range opts.Formats {
		if len(arts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}
	if !bytes.HasPrefix(arts[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact is not SVG")
	}
	if _, err := layout.UnmarshalLayout(arts[FormatJSON]); err != nil {
		t.Errorf("json artifact invalid: %v", err)
	}

	// A re-identified copy of the same cloud shares artifacts.
	l.ID = "other"
	_, hit, err = r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("second render should hit")
	}
}

func TestRunnerExecute(t *testing.T) {
	r := quietRunner(t, nil)

	res, err := r.Execute(context.Background(), Options{Count: 30, Formats: []string{FormatSVG, FormatPNG}, Width: 200, Height: 200})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if res.Stats.RectCount != 30 {
		t.Errorf("RectCount = %d, want 30", res.Stats.RectCount)
	}
	if res.LayoutHash == "" {
		t.Error("LayoutHash should be set")
	}
	if len(res.Artifacts) != 2 {
		t.Errorf("got %d artifacts, want 2", len(res.Artifacts))
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Error("null cache should never hit")
	}
}

func TestRunnerExecuteInvalid(t *testing.T) {
	r := quietRunner(t, nil)
	_, err := r.Execute(context.Background(), Options{Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	observability.NoopCacheHooks
	events []string
}

func (h *recordingHooks) OnLayoutComplete(_ context.Context, placed, _ int, _ time.Duration, err error) {
	h.events = append(h.events, "layout")
}

func (h *recordingHooks) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, _ error) {
	h.events = append(h.events, "render")
}

func (h *recordingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.events = append(h.events, "hit:"+keyType)
}

func TestRunnerEmitsHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	h := &recordingHooks{}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)

	r := quietRunner(t, fileCache(t))
	opts := Options{Count: 5, Width: 32, Height: 32}
	ctx := context.Background()
	if _, err := r.Execute(ctx, opts); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Execute(ctx, opts); err != nil {
		t.Fatal(err)
	}

	want := []string{"layout", "render", "hit:layout", "hit:artifact"}
	if strings.Join(h.events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", h.events, want)
	}
}
