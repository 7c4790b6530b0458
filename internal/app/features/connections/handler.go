// internal/app/features/connections/handler.go
package connections

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	uierrors "github.com/campusconnect/mentorlink/internal/app/features/errors"
	askstore "github.com/campusconnect/mentorlink/internal/app/store/asks"
	connectionstore "github.com/campusconnect/mentorlink/internal/app/store/connections"
	notificationstore "github.com/campusconnect/mentorlink/internal/app/store/notifications"
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
	Users         *userstore.Store
	Asks          *askstore.Store
	Offers        *offerstore.Store
	Connections   *connectionstore.Store
	Notifications *notificationstore.Store
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(users *userstore.Store, asks *askstore.Store, offers *offerstore.Store, connections *connectionstore.Store, notifications *notificationstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:         users,
		Asks:          asks,
		Offers:        offers,
		Connections:   connections,
		Notifications: notifications,
		ErrLog:        errLog,
		Log:           logger,
	}
}

// row is one connection with the display fields the list page needs.
type row struct {
	Conn         models.Connection
	AskTitle     string
	OfferTitle   string
	OtherName    string
	OtherID      string
	ViewerIsAlum bool
}

type listData struct {
	viewdata.BaseVM
	Rows    []row
	IsAlum  bool
	Message string
}

// ServeList handles GET /connections: the signed-in user's connections
// from either side, with the actions their role allows.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		conns []models.Connection
		err   error
	)
	isAlum := role == "alumni"
	if isAlum {
		conns, err = h.Connections.ListByAlum(ctx, uid)
	} else {
		conns, err = h.Connections.ListByStudent(ctx, uid)
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "list connections failed", err)
		return
	}

	rows := make([]row, 0, len(conns))
	for _, conn := range conns {
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

		rows = append(rows, rw)
	}

	data := listData{
		BaseVM:  viewdata.NewBaseVM(r, "My connections", "/dashboard"),
		Rows:    rows,
		IsAlum:  isAlum,
		Message: flashMessage(r.URL.Query().Get("msg")),
	}
	templates.Render(w, r, "connections_list", data)
}

func flashMessage(code string) string {
	switch code {
	case "requested":
		return "Connection requested successfully!"
	case "accepted":
		return "Connection accepted successfully!"
	case "denied":
		return "Connection denied successfully!"
	case "completed":
		return "Connection completed successfully!"
	case "kudos":
		return "Kudos given! 🏆"
	case "workspace":
		return "Workspace updated."
	}
	return ""
}

// wantsJSON reports whether the caller expects a JSON response rather
// than a redirect back to the connections page.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, msgCode string) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": flashMessage(msgCode),
		})
		return
	}
	http.Redirect(w, r, "/connections?msg="+msgCode, http.StatusSeeOther)
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
		return
	}
	uierrors.RenderForbidden(w, r, msg, "/connections")
}

// notify writes a feed entry, logging instead of failing the action
// when the insert goes wrong.
func (h *Handler) notify(ctx context.Context, n models.Notification) {
	if _, err := h.Notifications.Create(ctx, n); err != nil {
		h.Log.Warn("create notification failed",
			zap.Error(err),
			zap.String("user_id", n.UserID.Hex()),
			zap.String("type", n.Type))
	}
}
