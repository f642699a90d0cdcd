// internal/app/features/institutions/delete.go
package institutions

import (
	"net/http"

	"github.com/dalemusser/institutionhub/internal/app/system/respond"
	"github.com/dalemusser/institutionhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete soft-deletes an institution.
//
// Route: DELETE /api/v1/institutions/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete institution")
	defer cancel()

	inst, err := h.Svc.DeleteInstitution(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Info("institution deleted", zap.String("institution_id", id))
	respond.OK(w, "institution deleted", inst)
}

// HandleRestore reverses a soft delete.
//
// Route: PUT /api/v1/institutions/{id}/restore
func (h *Handler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "restore institution")
	defer cancel()

	inst, err := h.Svc.RestoreInstitution(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Info("institution restored", zap.String("institution_id", id))
	respond.OK(w, "institution restored", inst)
}
