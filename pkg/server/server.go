package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/tagcloud/pkg/observability"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/render"
)

// Defaults for Config fields left zero.
const (
	DefaultMaxRadius = 2048
	DefaultMaxRects  = 10000
	DefaultMaxPixels = 16 << 20
	DefaultTimeout   = 30 * time.Second
	maxBodyBytes     = 4 << 20
)

// Config bounds the work a single request may ask for.
type Config struct {
	// MaxRadius is applied to requests that do not set max_radius.
	MaxRadius int
	// MaxRects caps explicit sizes and generated counts.
	MaxRects int
	// MaxPixels caps width*height*scale² of rendered output.
	MaxPixels int
	// Timeout bounds each request.
	Timeout time.Duration
	// Stats, when set, is served at GET /v1/stats. Register it with
	// observability.SetAll (or in a Tee) for it to count anything.
	Stats *observability.Stats
}

func (c Config) withDefaults() Config {
	if c.MaxRadius <= 0 {
		c.MaxRadius = DefaultMaxRadius
	}
	if c.MaxRects <= 0 {
		c.MaxRects = DefaultMaxRects
	}
	if c.MaxPixels <= 0 || c.MaxPixels > render.MaxPixels {
		c.MaxPixels = DefaultMaxPixels
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	cfg    Config
	router chi.Router
}

// New builds a server around runner. A nil logger uses log.Default().
func New(runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
		cfg:    cfg.withDefaults(),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layouts", s.handleCreateLayout)
		r.Get("/layouts/{id}", s.handleGetLayout)
		r.Post("/layouts/{id}/render", s.handleRenderLayout)
		r.Post("/render", s.handleRender)
		if s.cfg.Stats != nil {
			r.Get("/stats", s.handleStats)
		}
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, notFound("no route for %s %s", r.Method, r.URL.Path))
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
