package home

import (
	"net/http"

	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/campusconnect/mentorlink/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot handles GET /. Signed-in users go straight to their
// dashboard; visitors get the landing page.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Welcome", "/"),
	}

	templates.Render(w, r, "home", data)
}
