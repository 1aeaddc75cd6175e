// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution, cache operations, and HTTP
// requests served by the API.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so library packages never
// import a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(observability.NewLogHooks(logger))
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLayoutStart(ctx, count)
//	// ... place rectangles ...
//	observability.Pipeline().OnLayoutComplete(ctx, placed, radius, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the layout pipeline.
type PipelineHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, count int)
	OnLayoutComplete(ctx context.Context, placed, radius int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records a handler error.
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Combined Hooks
// =============================================================================

// Hooks implements every hook category. LogHooks and Stats satisfy it.
type Hooks interface {
	PipelineHooks
	CacheHooks
	HTTPHooks
}

// Tee fans every event out to each of its hooks in order.
type Tee []Hooks

func (t Tee) OnLayoutStart(ctx context.Context, count int) {
	for _, h := range t {
		h.OnLayoutStart(ctx, count)
	}
}

func (t Tee) OnLayoutComplete(ctx context.Context, placed, radius int, d time.Duration, err error) {
	for _, h := range t {
		h.OnLayoutComplete(ctx, placed, radius, d, err)
	}
}

func (t Tee) OnRenderStart(ctx context.Context, formats []string) {
	for _, h := range t {
		h.OnRenderStart(ctx, formats)
	}
}

func (t Tee) OnRenderComplete(ctx context.Context, formats []string, d time.Duration, err error) {
	for _, h := range t {
		h.OnRenderComplete(ctx, formats, d, err)
	}
}

func (t Tee) OnCacheHit(ctx context.Context, keyType string) {
	for _, h := range t {
		h.OnCacheHit(ctx, keyType)
	}
}

func (t Tee) OnCacheMiss(ctx context.Context, keyType string) {
	for _, h := range t {
		h.OnCacheMiss(ctx, keyType)
	}
}

func (t Tee) OnCacheSet(ctx context.Context, keyType string, size int) {
	for _, h := range t {
		h.OnCacheSet(ctx, keyType, size)
	}
}

func (t Tee) OnRequest(ctx context.Context, method, path string) {
	for _, h := range t {
		h.OnRequest(ctx, method, path)
	}
}

func (t Tee) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	for _, h := range t {
		h.OnResponse(ctx, method, path, status, d)
	}
}

func (t Tee) OnError(ctx context.Context, method, path string, err error) {
	for _, h := range t {
		h.OnError(ctx, method, path, err)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pipeline = NoopPipelineHooks{}
	r.cache = NoopCacheHooks{}
	r.http = NoopHTTPHooks{}
}

var global = func() *registry {
	r := &registry{}
	r.reset()
	return r
}()

// SetPipelineHooks registers pipeline hooks. Call it at startup, before any
// layout runs. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h == nil {
		return
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.pipeline = h
}

// SetCacheHooks registers cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h == nil {
		return
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.cache = h
}

// SetHTTPHooks registers HTTP hooks. Call it before serving requests.
// A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.http = h
}

// SetAll registers h for every hook category.
func SetAll(h Hooks) {
	if h == nil {
		return
	}
	global.mu.Lock()
	defer global.mu.Unlock()
	global.pipeline, global.cache, global.http = h, h, h
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.pipeline
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.cache
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.http
}

// Reset restores all hooks to their no-op defaults. Tests use it.
func Reset() {
	global.reset()
}
