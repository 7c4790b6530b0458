// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/campusconnect/mentorlink/internal/app/features/errors"
	askstore "github.com/campusconnect/mentorlink/internal/app/store/asks"
	connectionstore "github.com/campusconnect/mentorlink/internal/app/store/connections"
	offerstore "github.com/campusconnect/mentorlink/internal/app/store/offers"
	userstore "github.com/campusconnect/mentorlink/internal/app/store/users"
	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/app/system/viewdata"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type Handler struct {
	Users       *userstore.Store
	Asks        *askstore.Store
	Offers      *offerstore.Store
	Connections *connectionstore.Store
	ErrLog      *uierrors.ErrorLogger
	Log         *zap.Logger
}

func NewHandler(users *userstore.Store, asks *askstore.Store, offers *offerstore.Store, connections *connectionstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:       users,
		Asks:        asks,
		Offers:      offers,
		Connections: connections,
		ErrLog:      errLog,
		Log:         logger,
	}
}

type studentData struct {
	viewdata.BaseVM
	Asks        []models.Ask
	Connections []models.Connection
}

type alumniData struct {
	viewdata.BaseVM
	Offers       []models.Offer
	Connections  []models.Connection
	PendingCount int
	Kudos        int
}

type adminData struct {
	viewdata.BaseVM
	TotalAsks   int64
	TotalOffers int64
}

// ServeDashboard dispatches to the role-specific dashboard view.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch role {
	case "student":
		asks, err := h.Asks.ListByAuthor(ctx, uid)
		if err != nil {
			h.ErrLog.Internal(w, r, "load student asks failed", err)
			return
		}
		conns, err := h.Connections.ListByStudent(ctx, uid)
		if err != nil {
			h.ErrLog.Internal(w, r, "load student connections failed", err)
			return
		}
		data := studentData{
			BaseVM:      viewdata.NewBaseVM(r, "Dashboard", "/"),
			Asks:        asks,
			Connections: conns,
		}
		templates.Render(w, r, "dashboard_student", data)

	case "alumni":
		offers, err := h.Offers.ListByAuthor(ctx, uid)
		if err != nil {
			h.ErrLog.Internal(w, r, "load alumni offers failed", err)
			return
		}
		conns, err := h.Connections.ListByAlum(ctx, uid)
		if err != nil {
			h.ErrLog.Internal(w, r, "load alumni connections failed", err)
			return
		}
		pending := 0
		for _, c := range conns {
			if c.Status == models.ConnectionPending {
				pending++
			}
		}
		user, err := h.Users.GetByID(ctx, uid)
		if err != nil {
			h.ErrLog.Internal(w, r, "load alumni user failed", err)
			return
		}
		data := alumniData{
			BaseVM:       viewdata.NewBaseVM(r, "Dashboard", "/"),
			Offers:       offers,
			Connections:  conns,
			PendingCount: pending,
			Kudos:        user.Kudos,
		}
		templates.Render(w, r, "dashboard_alumni", data)

	case "admin":
		totalAsks, err := h.Asks.Count(ctx)
		if err != nil {
			h.ErrLog.Internal(w, r, "count asks failed", err)
			return
		}
		totalOffers, err := h.Offers.Count(ctx)
		if err != nil {
			h.ErrLog.Internal(w, r, "count offers failed", err)
			return
		}
		data := adminData{
			BaseVM:      viewdata.NewBaseVM(r, "Admin dashboard", "/"),
			TotalAsks:   totalAsks,
			TotalOffers: totalOffers,
		}
		templates.Render(w, r, "dashboard_admin", data)

	default:
		uierrors.RenderForbidden(w, r, "Unknown account role.", "/")
	}
}
