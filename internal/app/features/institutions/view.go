// internal/app/features/institutions/view.go
package institutions

import (
	"net/http"

	"github.com/dalemusser/institutionhub/internal/app/system/respond"
	"github.com/dalemusser/institutionhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeView returns one institution with classrooms, director and
// auxiliaries.
//
// Route: GET /api/v1/institutions/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "get institution with users")
	defer cancel()

	out, err := h.Svc.GetCompleteWithUsers(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "institution found", out)
}

// ServeComplete returns one institution with its classrooms only.
//
// Route: GET /api/v1/institutions/{id}/complete
func (h *Handler) ServeComplete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get institution")
	defer cancel()

	out, err := h.Svc.GetComplete(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "institution found", out)
}
