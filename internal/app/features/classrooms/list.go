// internal/app/features/classrooms/list.go
package classrooms

import (
	"context"
	"net/http"

	"github.com/dalemusser/institutionhub/internal/app/system/respond"
	"github.com/dalemusser/institutionhub/internal/app/system/timeouts"
	"github.com/dalemusser/institutionhub/internal/domain/models"
)

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, "classrooms listed", h.Svc.ListAllClassrooms)
}

func (h *Handler) ServeListActive(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, "active classrooms listed", h.Svc.ListActiveClassrooms)
}

func (h *Handler) ServeListInactive(w http.ResponseWriter, r *http.Request) {
	h.serveList(w, r, "inactive classrooms listed", h.Svc.ListInactiveClassrooms)
}

func (h *Handler) serveList(w http.ResponseWriter, r *http.Request, msg string, list func(context.Context) ([]models.Classroom, error)) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, msg)
	defer cancel()

	out, err := list(ctx)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, msg, out)
}

// ServeView returns a classroom unless it has been soft-deleted.
//
// Route: GET /api/v1/classrooms/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get classroom")
	defer cancel()

	cl, err := h.Svc.GetClassroom(ctx, idParam(r))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "classroom found", cl)
}
