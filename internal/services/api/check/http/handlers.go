// Package http provides http transport for diff checks
package http

import (
	stdhttp "net/http"

	"wordwarden/internal/modkit/httpkit"
	"wordwarden/internal/services/api/check/domain"
	checkdom "wordwarden/internal/services/check/domain"
)

// Register mounts check endpoints on the given router
func Register(r httpkit.Router, checker checkdom.CheckerPort) {
	h := &handlers{checker: checker}
	httpkit.PostJSON[domain.CheckInput](r, "/diff", h.diff)
}

type handlers struct{ checker checkdom.CheckerPort }

// swagger:route POST /check/diff Check checkDiff
// @Summary Spell check the added lines of a unified diff
// @Tags Check
// @Accept json
// @Produce json
// @Param payload body domain.CheckInput true "Diff"
// @Success 200 {object} checkdom.Report "ok"
// @Failure 400 {object} httpkit.Envelope "malformed diff"
// @Router /check/diff [post]
func (h *handlers) diff(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.checker.CheckDiff(r.Context(), checkdom.Input{
		Diff:     in.Diff,
		Language: in.Language,
		Symbols:  in.Symbols,
	})
}
