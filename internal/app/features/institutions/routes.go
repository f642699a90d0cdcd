// internal/app/features/institutions/routes.go
package institutions

import "github.com/go-chi/chi/v5"

// Routes mounts the institution endpoints (under /api/v1/institutions).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/active", h.ServeListActive)
	r.Get("/inactive", h.ServeListInactive)
	r.Get("/with-users-classrooms", h.ServeListWithUsers)
	r.Post("/with-users", h.HandleCreate)

	r.Get("/{id}", h.ServeView)
	r.Get("/{id}/complete", h.ServeComplete)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Put("/{id}/restore", h.HandleRestore)

	return r
}
