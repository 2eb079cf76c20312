// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"wordwarden/internal/core/lintrc"
	"wordwarden/internal/core/version"
	"wordwarden/internal/modkit/dictkit"
	"wordwarden/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Dict        dictkit.Provider
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/checker", h.checker)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"wordwarden-api"`
	Started string `json:"started"  example:"2026-08-23T13:00:00Z"`
	Now     string `json:"now"      example:"2026-08-23T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"dictionary"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"no dictionary for language \"xx_XX\""`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-23T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"wordwarden-api"`
	Started string `json:"started" example:"2026-08-23T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// CheckerResponse reports checker defaults and build info
type CheckerResponse struct {
	DefaultLanguage string            `json:"default_language" example:"en_US"`
	SuggestionMode  string            `json:"suggestion_mode" example:"fast"`
	MinWordLength   int               `json:"min_word_length" example:"5"`
	MaxSuggestions  int               `json:"max_suggestions" example:"3"`
	Build           version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(stdctx.Background(), 2*time.Second)
	defer cancel()

	dict := ReadyCheck{Name: "dictionary", Status: "skipped"}
	if h.deps.Dict != nil {
		dict.Status = "ok"
		if _, err := h.deps.Dict.Dictionary(ctx, lintrc.DefaultLanguage); err != nil {
			dict.Status = "fail"
			dict.Error = err.Error()
		}
	}

	overall := "ok"
	if dict.Status != "ok" {
		overall = "degraded"
		if dict.Status == "fail" {
			overall = "fail"
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{dict},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/checker Meta metaChecker
// @Summary Checker defaults and build
// @Tags Meta
// @Produce json
// @Success 200 type CheckerResponse ok
// @Router /meta/checker [get]
func (h *handlers) checker(_ *http.Request) (any, error) {
	return CheckerResponse{
		DefaultLanguage: lintrc.DefaultLanguage,
		SuggestionMode:  lintrc.DefaultSuggestionMode,
		MinWordLength:   lintrc.DefaultMinWordLength,
		MaxSuggestions:  lintrc.DefaultMaxSuggestions,
		Build:           version.Info(),
	}, nil
}
