// internal/app/features/profile/routes.go
package profile

import (
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeEdit)
		pr.Post("/", h.HandleUpdate)
		pr.Get("/{userID}", h.ServeView)
	})

	return r
}
