// Package server exposes the tag cloud pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz                      liveness and build version
//	POST /v1/layouts                   place rectangles, returns layout JSON
//	GET  /v1/layouts/{id}              fetch a previously computed layout
//	POST /v1/layouts/{id}/render       render a stored layout (?format=svg)
//	POST /v1/render                    layout and render in one call (?format=svg)
//	GET  /v1/stats                     event counters, when Config.Stats is set
//
// Request bodies are pipeline options in JSON:
//
//	{"center": {"x": 0, "y": 0}, "sizes": [{"width": 40, "height": 12}], "max_radius": 500}
//
// Errors are returned as {"code": "...", "message": "..."}. Validation
// failures map to 400, PLACEMENT_EXHAUSTED to 422 and unknown layouts to 404.
//
// Requests without a max_radius get the server's default bound, so a single
// request cannot search forever.
package server
