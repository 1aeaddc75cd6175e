package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/tagcloud/pkg/buildinfo"
	"github.com/matzehuels/tagcloud/pkg/cache"
	"github.com/matzehuels/tagcloud/pkg/errors"
	"github.com/matzehuels/tagcloud/pkg/layout"
	"github.com/matzehuels/tagcloud/pkg/pipeline"
	"github.com/matzehuels/tagcloud/pkg/render"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Stats.Snapshot())
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.decodeOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	l, hit, err := s.runner.GenerateLayoutWithCacheInfo(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.remember(r.Context(), l)

	cacheHeader(w, hit)
	w.Header().Set("Location", "/v1/layouts/"+l.ID)
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.lookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleRenderLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.lookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	opts, format, err := s.renderOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	artifacts, hit, err := s.runner.RenderWithCacheInfo(r.Context(), l, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	cacheHeader(w, hit)
	w.Header().Set("X-Layout-ID", l.ID)
	writeArtifact(w, format, artifacts[format])
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, format, err := s.renderOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.remember(r.Context(), res.Layout)

	cacheHeader(w, res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit)
	w.Header().Set("X-Layout-ID", res.Layout.ID)
	writeArtifact(w, format, res.Artifacts[format])
}

// decodeOptions reads pipeline options from the body and applies server
// limits. An empty body means all defaults.
func (s *Server) decodeOptions(r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil && !stderrors.Is(err, io.EOF) {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "decode request body")
	}

	if len(opts.Sizes) > s.cfg.MaxRects || opts.Count > s.cfg.MaxRects {
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidArgument,
			"too many rectangles (max %d per request)", s.cfg.MaxRects)
	}
	if opts.MaxRadius == 0 {
		opts.MaxRadius = s.cfg.MaxRadius
	}
	opts.Logger = s.logger
	return opts, nil
}

// renderOptions decodes options for a render request and checks the output
// size against the server's pixel budget.
func (s *Server) renderOptions(r *http.Request) (pipeline.Options, string, error) {
	opts, err := s.decodeOptions(r)
	if err != nil {
		return pipeline.Options{}, "", err
	}
	format, err := selectFormat(r, &opts)
	if err != nil {
		return pipeline.Options{}, "", err
	}
	sized := opts
	sized.SetRenderDefaults()
	if err := render.CheckPixels(sized.Width, sized.Height, sized.Scale, s.cfg.MaxPixels); err != nil {
		return pipeline.Options{}, "", err
	}
	return opts, format, nil
}

// selectFormat resolves the single output format from ?format= or the body.
func selectFormat(r *http.Request, opts *pipeline.Options) (string, error) {
	if f := r.URL.Query().Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	switch len(opts.Formats) {
	case 0:
		opts.Formats = []string{pipeline.FormatSVG}
	case 1:
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "exactly one format per request, got %d", len(opts.Formats))
	}
	if err := pipeline.ValidateFormat(opts.Formats[0]); err != nil {
		return "", err
	}
	return opts.Formats[0], nil
}

var marshalLayout = layout.MarshalLayout

// remember stores the layout under its ID so later requests can fetch it.
func (s *Server) remember(ctx context.Context, l layout.Layout) {
	data, err := marshalLayout(l)
	if err != nil {
		s.logger.Warn("encode layout failed", "id", l.ID, "err", err)
		return
	}
	if err := s.runner.Cache.Set(ctx, s.runner.Keyer.LayoutIDKey(l.ID), data, cache.TTLLayout); err != nil {
		s.logger.Warn("store layout failed", "id", l.ID, "err", err)
	}
}

func (s *Server) lookup(ctx context.Context, id string) (layout.Layout, error) {
	if _, err := uuid.Parse(id); err != nil {
		return layout.Layout{}, errors.New(errors.ErrCodeInvalidArgument, "invalid layout id %q", id)
	}
	data, hit, err := s.runner.Cache.Get(ctx, s.runner.Keyer.LayoutIDKey(id))
	if err != nil {
		return layout.Layout{}, errors.Wrap(errors.ErrCodeInternal, err, "load layout %s", id)
	}
	if !hit {
		return layout.Layout{}, notFound("layout %s not found", id)
	}
	return layout.UnmarshalLayout(data)
}
