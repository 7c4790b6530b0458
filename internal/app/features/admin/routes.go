// internal/app/features/admin/routes.go
package admin

import (
	"net/http"

	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves the admin pages. Mounted at /admin.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))
		pr.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/admin/tags", http.StatusSeeOther)
		})
		pr.Get("/tags", h.ServeTagReport)
	})

	return r
}

// APIRoutes serves the admin JSON endpoints. Mounted at /api/admin.
func APIRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))
		pr.Get("/tags", h.ServeTagReportJSON)
	})

	return r
}
