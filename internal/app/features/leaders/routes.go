// internal/app/features/leaders/routes.go
package leaders

import "github.com/go-chi/chi/v5"

// Routes serves the root-level endpoints: the service banner plus leader
// registration and login.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeStatus)
	r.Post("/register-leader", h.HandleRegister)
	r.Post("/leader-login", h.HandleLogin)
	return r
}
