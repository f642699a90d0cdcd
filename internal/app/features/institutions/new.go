// internal/app/features/institutions/new.go
package institutions

import (
	"net/http"

	"github.com/dalemusser/institutionhub/internal/app/orchestrator"
	"github.com/dalemusser/institutionhub/internal/app/system/inputval"
	"github.com/dalemusser/institutionhub/internal/app/system/respond"
	"github.com/dalemusser/institutionhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleCreate creates an institution together with its director and
// initial classrooms.
//
// Route: POST /api/v1/institutions/with-users
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req orchestrator.CreateInstitutionRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if err := inputval.Struct(req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "create institution with users")
	defer cancel()

	inst, err := h.Svc.CreateWithUsers(ctx, req)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Info("institution created",
		zap.String("institution_id", inst.ID),
		zap.String("director_id", inst.DirectorID))
	respond.JSON(w, http.StatusCreated, "institution created", inst)
}
