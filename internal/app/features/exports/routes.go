// internal/app/features/exports/routes.go
package exports

import "github.com/go-chi/chi/v5"

// Routes serves the export endpoints, mounted under /export.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/csv/{collection}", h.ServeCSV)
	r.Get("/pdf/members/{leaderID}", h.ServeMembersPDF)
	return r
}
