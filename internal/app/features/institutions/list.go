// internal/app/features/institutions/list.go
package institutions

import (
	"context"
	"net/http"

	"github.com/dalemusser/institutionhub/internal/app/orchestrator"
	"github.com/dalemusser/institutionhub/internal/app/system/respond"
	"github.com/dalemusser/institutionhub/internal/app/system/timeouts"
)

// ServeList returns every institution with its classrooms.
//
// Route: GET /api/v1/institutions
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, "institutions listed", h.Svc.ListAllComplete)
}

// Route: GET /api/v1/institutions/active
func (h *Handler) ServeListActive(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, "active institutions listed", h.Svc.ListActiveComplete)
}

// Route: GET /api/v1/institutions/inactive
func (h *Handler) ServeListInactive(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, "inactive institutions listed", h.Svc.ListInactiveComplete)
}

// ServeListWithUsers returns every institution with classrooms, director
// and auxiliaries.
//
// Route: GET /api/v1/institutions/with-users-classrooms
func (h *Handler) ServeListWithUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "list institutions with users")
	defer cancel()

	out, err := h.Svc.ListAllWithUsersAndClassrooms(ctx)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "institutions with users and classrooms listed", out)
}

func (h *Handler) serveList(w http.ResponseWriter, r *http.Request, msg string, list func(context.Context) ([]orchestrator.InstitutionComplete, error)) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, msg)
	defer cancel()

	out, err := list(ctx)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, msg, out)
}
