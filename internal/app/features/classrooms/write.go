// internal/app/features/classrooms/write.go
package classrooms

import (
	"net/http"

	"github.com/dalemusser/institutionhub/internal/app/orchestrator"
	"github.com/dalemusser/institutionhub/internal/app/system/inputval"
	"github.com/dalemusser/institutionhub/internal/app/system/respond"
	"github.com/dalemusser/institutionhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func idParam(r *http.Request) string { return chi.URLParam(r, "id") }

// HandleCreate saves a classroom and links it to its institution. A missing
// institution yields 404 even though the classroom was saved.
//
// Route: POST /api/v1/classrooms
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req orchestrator.CreateClassroomRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if err := inputval.Struct(req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create classroom")
	defer cancel()

	cl, err := h.Svc.CreateClassroom(ctx, req)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Info("classroom created",
		zap.String("classroom_id", cl.ID),
		zap.String("institution_id", cl.InstitutionID))
	respond.JSON(w, http.StatusCreated, "classroom created", cl)
}

// Route: PUT /api/v1/classrooms/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req orchestrator.UpdateClassroomRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if err := inputval.Struct(req); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update classroom")
	defer cancel()

	cl, err := h.Svc.UpdateClassroom(ctx, idParam(r), req)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "classroom updated", cl)
}

// Route: DELETE /api/v1/classrooms/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete classroom")
	defer cancel()

	cl, err := h.Svc.DeleteClassroom(ctx, idParam(r))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "classroom deleted", cl)
}

// Route: PATCH /api/v1/classrooms/{id}/restore
func (h *Handler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "restore classroom")
	defer cancel()

	cl, err := h.Svc.RestoreClassroom(ctx, idParam(r))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "classroom restored", cl)
}
