// internal/app/features/profile/handler.go
package profile

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/campusconnect/mentorlink/internal/app/features/errors"
	userstore "github.com/campusconnect/mentorlink/internal/app/store/users"
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/app/system/inputval"
	"github.com/campusconnect/mentorlink/internal/app/system/normalize"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/app/system/viewdata"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users  *userstore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(users *userstore.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Users: users, ErrLog: errLog, Log: logger}
}

type editData struct {
	viewdata.BaseVM
	Error   string
	Saved   bool
	User    models.User
	Skills  string
	IsOwner bool
}

type viewData struct {
	viewdata.BaseVM
	User    models.User
	IsOwner bool
}

type profileInput struct {
	FullName string `validate:"required,max=100" label:"Full name"`
	Headline string `validate:"max=200" label:"Headline"`
	Image    string `validate:"httpurl" label:"Image URL"`
}

// ServeEdit handles GET /profile (own profile editor).
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		h.ErrLog.Internal(w, r, "load profile failed", err)
		return
	}

	data := editData{
		BaseVM:  viewdata.NewBaseVM(r, "My profile", "/dashboard"),
		User:    user,
		Skills:  joinSkills(user.Skills),
		IsOwner: true,
		Saved:   r.URL.Query().Get("saved") == "1",
	}
	templates.Render(w, r, "profile_edit", data)
}

// HandleUpdate handles POST /profile.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderEditError(w, r, uid, "Invalid form submission.")
		return
	}

	in := profileInput{
		FullName: normalize.Name(r.FormValue("full_name")),
		Headline: normalize.Name(r.FormValue("headline")),
		Image:    normalize.Name(r.FormValue("image")),
	}
	if result := inputval.Validate(in); result.HasErrors() {
		h.renderEditError(w, r, uid, result.First())
		return
	}

	skills := normalize.Tags(r.FormValue("skills"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Users.UpdateProfile(ctx, uid,
		in.FullName,
		in.Headline,
		normalize.Name(r.FormValue("education")),
		normalize.Name(r.FormValue("availability")),
		in.Image,
		skills,
	)
	if err != nil {
		h.ErrLog.Internal(w, r, "update profile failed", err)
		return
	}

	h.Log.Info("profile updated", zap.String("user_id", uid.Hex()))

	http.Redirect(w, r, "/profile?saved=1", http.StatusSeeOther)
}

// ServeView handles GET /profile/{userID} (public profile).
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Profile not found.", "/dashboard")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.RenderForbidden(w, r, "Profile not found.", "/dashboard")
			return
		}
		h.ErrLog.Internal(w, r, "load profile failed", err)
		return
	}

	isOwner := false
	if u, ok := auth.CurrentUser(r); ok && u.ID == user.ID.Hex() {
		isOwner = true
	}

	data := viewData{
		BaseVM:  viewdata.NewBaseVM(r, user.FullName, "/dashboard"),
		User:    user,
		IsOwner: isOwner,
	}
	templates.Render(w, r, "profile_view", data)
}

func joinSkills(skills []string) string {
	out := ""
	for i, s := range skills {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

func (h *Handler) renderEditError(w http.ResponseWriter, r *http.Request, uid primitive.ObjectID, msg string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		h.ErrLog.Internal(w, r, "load profile failed", err)
		return
	}

	data := editData{
		BaseVM:  viewdata.NewBaseVM(r, "My profile", "/dashboard"),
		Error:   msg,
		User:    user,
		Skills:  joinSkills(user.Skills),
		IsOwner: true,
	}
	templates.Render(w, r, "profile_edit", data)
}
