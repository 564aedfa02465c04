// internal/app/features/meetups/routes.go
package meetups

import "github.com/go-chi/chi/v5"

// Routes serves the admin endpoints, mounted under /admin.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/meetups/{date}", h.ServeByDate)
	r.Get("/missed-meetups", h.ServeMissed)
	return r
}
