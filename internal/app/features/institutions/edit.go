// internal/app/features/institutions/edit.go
package institutions

import (
	"net/http"

	"github.com/dalemusser/institutionhub/internal/app/orchestrator"
	"github.com/dalemusser/institutionhub/internal/app/system/inputval"
	"github.com/dalemusser/institutionhub/internal/app/system/respond"
	"github.com/dalemusser/institutionhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleUpdate overwrites an institution and, when the director changes,
// relinks directors in the user service.
//
// Route: PUT /api/v1/institutions/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req orchestrator.UpdateInstitutionRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if err := inputval.Struct(req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "update institution")
	defer cancel()

	inst, err := h.Svc.UpdateInstitution(ctx, id, req)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "institution updated", inst)
}
