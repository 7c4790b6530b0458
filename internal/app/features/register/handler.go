// internal/app/features/register/handler.go
package register

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/campusconnect/mentorlink/internal/app/features/errors"
	userstore "github.com/campusconnect/mentorlink/internal/app/store/users"
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/campusconnect/mentorlink/internal/app/system/inputval"
	"github.com/campusconnect/mentorlink/internal/app/system/normalize"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/app/system/viewdata"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	Users      *userstore.Store
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(users *userstore.Store, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Users: users, SessionMgr: sessionMgr, Log: logger}
}

type formData struct {
	viewdata.BaseVM
	Error    string
	FullName string
	Email    string
	Role     string
}

type registerInput struct {
	FullName string `validate:"required,max=100" label:"Full name"`
	Email    string `validate:"required,email" label:"Email"`
	Password string `validate:"required" label:"Password"`
	Role     string `validate:"required" label:"Role"`
}

// ServeForm handles GET /register.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM: viewdata.NewBaseVM(r, "Create account", "/"),
		Role:   "student",
	}
	templates.Render(w, r, "register", data)
}

// HandleSubmit handles POST /register.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "Invalid form submission.", formData{})
		return
	}

	in := registerInput{
		FullName: normalize.Name(r.FormValue("full_name")),
		Email:    normalize.Email(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     normalize.Role(r.FormValue("role")),
	}
	echo := formData{FullName: in.FullName, Email: in.Email, Role: in.Role}

	if result := inputval.Validate(in); result.HasErrors() {
		h.renderError(w, r, result.First(), echo)
		return
	}
	if in.Role != "student" && in.Role != "alumni" {
		h.renderError(w, r, "Please choose whether you are a student or an alum.", echo)
		return
	}
	if len(in.Password) < 8 {
		h.renderError(w, r, "Password must be at least 8 characters.", echo)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("bcrypt hash failed", zap.Error(err))
		h.renderError(w, r, "Something went wrong. Please try again.", echo)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.Create(ctx, models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		AuthMethod:   "local",
		Role:         in.Role,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			h.renderError(w, r, "An account with this email already exists.", echo)
			return
		}
		h.Log.Error("create user failed", zap.Error(err))
		h.renderError(w, r, "Something went wrong. Please try again.", echo)
		return
	}

	su := &auth.SessionUser{
		ID:    user.ID.Hex(),
		Name:  user.FullName,
		Email: user.Email,
		Role:  user.Role,
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.Log.Error("sign-in after register failed", zap.Error(err),
			zap.String("user_id", su.ID))
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	h.Log.Info("user registered",
		zap.String("user_id", su.ID),
		zap.String("role", user.Role))

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, msg string, echo formData) {
	echo.BaseVM = viewdata.NewBaseVM(r, "Create account", "/")
	echo.Error = msg
	templates.Render(w, r, "register", echo)
}
