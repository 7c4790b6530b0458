// internal/app/features/connections/detail.go
package connections

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/campusconnect/mentorlink/internal/app/features/errors"
	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type detailData struct {
	viewdata.BaseVM
	Row     row
	Message string
}

// ServeDetail handles GET /connections/{connectionID}: the workspace
// page for one connection, visible to its two participants only.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "")
		return
	}

	connID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "connectionID"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Connection not found.", "/connections")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	conn, err := h.Connections.GetByID(ctx, connID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.RenderForbidden(w, r, "Connection not found.", "/connections")
			return
		}
		h.ErrLog.Internal(w, r, "connection detail: load failed", err)
		return
	}

	if uid != conn.StudentID && uid != conn.AlumID {
		uierrors.RenderForbidden(w, r, "You are not a participant of this connection.", "/connections")
		return
	}

	isAlum := role == "alumni"
	rw := row{Conn: conn, ViewerIsAlum: isAlum}

	if ask, err := h.Asks.GetByID(ctx, conn.AskID); err == nil {
		rw.AskTitle = ask.Title
	}
	if offer, err := h.Offers.GetByID(ctx, conn.OfferID); err == nil {
		rw.OfferTitle = offer.Title
	}

	otherID := conn.AlumID
	if isAlum {
		otherID = conn.StudentID
	}
	rw.OtherID = otherID.Hex()
	if other, err := h.Users.GetByID(ctx, otherID); err == nil {
		rw.OtherName = other.FullName
	}

	data := detailData{
		BaseVM:  viewdata.NewBaseVM(r, "Connection workspace", "/connections"),
		Row:     rw,
		Message: flashMessage(r.URL.Query().Get("msg")),
	}
	templates.Render(w, r, "connection_detail", data)
}
