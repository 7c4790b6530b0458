// internal/app/features/asks/routes.go
package asks

import (
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/{askID}", h.ServeDetail)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("student"))
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
	})

	return r
}
