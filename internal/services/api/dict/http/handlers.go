// Package http provides http transport for dictionary lookups
package http

import (
	stdhttp "net/http"
	"strings"
	"time"

	"wordwarden/internal/core/lintrc"
	"wordwarden/internal/modkit/dictkit"
	"wordwarden/internal/modkit/httpkit"
	perr "wordwarden/internal/platform/errors"
	"wordwarden/internal/services/api/dict/domain"
)

// Register mounts dictionary endpoints on the given router
func Register(r httpkit.Router, p dictkit.Provider) {
	h := &handlers{provider: p}
	httpkit.Get(r, "/info", h.info)
	httpkit.PostJSON[domain.LookupInput](r, "/lookup", h.lookup)
}

type handlers struct{ provider dictkit.Provider }

// swagger:route GET /dict/info Dict dictInfo
// @Summary Resolved dictionary details and available languages
// @Tags Dict
// @Produce json
// @Param lang query string false "Language tag" default(en_US)
// @Success 200 {object} domain.InfoResponse "ok"
// @Failure 400 {object} httpkit.Envelope "unknown language"
// @Router /dict/info [get]
func (h *handlers) info(r *stdhttp.Request) (any, error) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = lintrc.DefaultLanguage
	}
	d, err := h.provider.Dictionary(r.Context(), lang)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "resolve dictionary")
	}
	info := d.Info()
	return domain.InfoResponse{
		Language:  info.Language,
		Words:     info.Words,
		Mode:      info.Mode,
		Source:    info.Source,
		LoadedAt:  info.LoadedAt.UTC().Format(time.RFC3339),
		Languages: h.provider.Languages(),
	}, nil
}

// swagger:route POST /dict/lookup Dict dictLookup
// @Summary Check one word and suggest corrections when it misses
// @Tags Dict
// @Accept json
// @Produce json
// @Param payload body domain.LookupInput true "Lookup"
// @Success 200 {object} domain.LookupResult "ok"
// @Failure 400 {object} httpkit.Envelope "missing word or unknown language"
// @Router /dict/lookup [post]
func (h *handlers) lookup(r *stdhttp.Request, in domain.LookupInput) (any, error) {
	word := strings.TrimSpace(in.Word)
	if word == "" {
		return nil, perr.InvalidArgf("word required")
	}
	lang := in.Language
	if lang == "" {
		lang = lintrc.DefaultLanguage
	}

	d, err := h.provider.Dictionary(r.Context(), lang)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "resolve dictionary")
	}

	max := in.MaxSuggestions
	if max <= 0 {
		max = lintrc.DefaultMaxSuggestions
	}

	out := domain.LookupResult{
		Word:     word,
		Language: d.Info().Language,
		Found:    d.Check(word),
	}
	if !out.Found {
		out.Suggestions = d.Suggest(word, max)
	}
	return out, nil
}
