package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Stats counts events in memory. It implements Hooks, so it can be
// registered with SetAll or combined with LogHooks in a Tee. The server
// exposes a Snapshot at /v1/stats.
type Stats struct {
	layouts      atomic.Int64
	layoutErrors atomic.Int64
	rectsPlaced  atomic.Int64
	maxRadius    atomic.Int64
	renders      atomic.Int64
	renderErrors atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	cacheBytes   atomic.Int64
	requests     atomic.Int64
	clientErrors atomic.Int64
	serverErrors atomic.Int64
	layoutNanos  atomic.Int64
	requestNanos atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Layouts      int64         `json:"layouts"`
	LayoutErrors int64         `json:"layout_errors"`
	RectsPlaced  int64         `json:"rects_placed"`
	MaxRadius    int64         `json:"max_radius"`
	Renders      int64         `json:"renders"`
	RenderErrors int64         `json:"render_errors"`
	CacheHits    int64         `json:"cache_hits"`
	CacheMisses  int64         `json:"cache_misses"`
	CacheBytes   int64         `json:"cache_bytes_written"`
	Requests     int64         `json:"requests"`
	ClientErrors int64         `json:"client_errors"`
	ServerErrors int64         `json:"server_errors"`
	LayoutTime   time.Duration `json:"layout_time_ns"`
	RequestTime  time.Duration `json:"request_time_ns"`
}

// NewStats returns zeroed counters.
func NewStats() *Stats { return &Stats{} }

// Snapshot copies the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Layouts:      s.layouts.Load(),
		LayoutErrors: s.layoutErrors.Load(),
		RectsPlaced:  s.rectsPlaced.Load(),
		MaxRadius:    s.maxRadius.Load(),
		Renders:      s.renders.Load(),
		RenderErrors: s.renderErrors.Load(),
		CacheHits:    s.cacheHits.Load(),
		CacheMisses:  s.cacheMisses.Load(),
		CacheBytes:   s.cacheBytes.Load(),
		Requests:     s.requests.Load(),
		ClientErrors: s.clientErrors.Load(),
		ServerErrors: s.serverErrors.Load(),
		LayoutTime:   time.Duration(s.layoutNanos.Load()),
		RequestTime:  time.Duration(s.requestNanos.Load()),
	}
}

func (s *Stats) OnLayoutStart(context.Context, int) {}

func (s *Stats) OnLayoutComplete(_ context.Context, placed, radius int, d time.Duration, err error) {
	s.layouts.Add(1)
	if err != nil {
		s.layoutErrors.Add(1)
	}
	s.rectsPlaced.Add(int64(placed))
	s.layoutNanos.Add(int64(d))
	for {
		cur := s.maxRadius.Load()
		if int64(radius) <= cur || s.maxRadius.CompareAndSwap(cur, int64(radius)) {
			return
		}
	}
}

func (s *Stats) OnRenderStart(context.Context, []string) {}

func (s *Stats) OnRenderComplete(_ context.Context, _ []string, _ time.Duration, err error) {
	s.renders.Add(1)
	if err != nil {
		s.renderErrors.Add(1)
	}
}

func (s *Stats) OnCacheHit(context.Context, string)  { s.cacheHits.Add(1) }
func (s *Stats) OnCacheMiss(context.Context, string) { s.cacheMisses.Add(1) }

func (s *Stats) OnCacheSet(_ context.Context, _ string, size int) {
	s.cacheBytes.Add(int64(size))
}

func (s *Stats) OnRequest(context.Context, string, string) {}

func (s *Stats) OnResponse(_ context.Context, _, _ string, status int, d time.Duration) {
	s.requests.Add(1)
	s.requestNanos.Add(int64(d))
	switch {
	case status >= 500:
		s.serverErrors.Add(1)
	case status >= 400:
		s.clientErrors.Add(1)
	}
}

func (s *Stats) OnError(context.Context, string, string, error) {}

var _ Hooks = (*Stats)(nil)
var _ Hooks = (*LogHooks)(nil)
var _ Hooks = Tee(nil)
