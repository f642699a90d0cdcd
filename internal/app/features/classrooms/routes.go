// internal/app/features/classrooms/routes.go
package classrooms

import "github.com/go-chi/chi/v5"

// Routes mounts the classroom endpoints (under /api/v1/classrooms).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/active", h.ServeListActive)
	r.Get("/inactive", h.ServeListInactive)
	r.Post("/", h.HandleCreate)

	r.Get("/{id}", h.ServeView)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Patch("/{id}/restore", h.HandleRestore)

	return r
}
