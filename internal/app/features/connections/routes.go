// internal/app/features/connections/routes.go
package connections

import (
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves the connections list page. Mounted at /connections.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Get("/{connectionID}", h.ServeDetail)
	})

	return r
}

// APIRoutes serves the connection actions. Mounted at /api/connections.
func APIRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/", h.HandleRequest)
		pr.Post("/{connectionID}/status", h.HandleStatus)
		pr.Post("/{connectionID}/workspace", h.HandleWorkspace)
		pr.Post("/{connectionID}/kudos", h.HandleKudos)
	})

	return r
}
