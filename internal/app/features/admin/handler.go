// internal/app/features/admin/handler.go
package admin

import (
	"context"
	"encoding/json"
	"net/http"

	uierrors "github.com/campusconnect/mentorlink/internal/app/features/errors"
	"github.com/campusconnect/mentorlink/internal/app/store/queries/tagstats"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler serves the admin analytics views.
type Handler struct {
	TagStats *tagstats.Queries
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(stats *tagstats.Queries, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{TagStats: stats, ErrLog: errLog, Log: logger}
}

type tagsData struct {
	viewdata.BaseVM
	Report tagstats.Report
}

// ServeTagReport handles GET /admin/tags: tag supply vs demand so
// admins can see where mentors are missing.
func (h *Handler) ServeTagReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	report, err := h.TagStats.TopTags(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "tag report failed", err)
		return
	}

	data := tagsData{
		BaseVM: viewdata.NewBaseVM(r, "Tag supply & demand", "/dashboard"),
		Report: report,
	}
	templates.Render(w, r, "admin_tags", data)
}

// ServeTagReportJSON handles GET /api/admin/tags.
func (h *Handler) ServeTagReportJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	report, err := h.TagStats.TopTags(ctx)
	if err != nil {
		h.Log.Error("tag report failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}

	_ = json.NewEncoder(w).Encode(report)
}
