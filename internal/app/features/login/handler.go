// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/campusconnect/mentorlink/internal/app/store/users"
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/campusconnect/mentorlink/internal/app/system/normalize"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	Users         *userstore.Store
	SessionMgr    *auth.SessionManager
	Log           *zap.Logger
	GoogleEnabled bool
}

func NewHandler(users *userstore.Store, sessionMgr *auth.SessionManager, googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		Users:         users,
		SessionMgr:    sessionMgr,
		Log:           logger,
		GoogleEnabled: googleEnabled,
	}
}

type formData struct {
	viewdata.BaseVM
	Error         string
	Email         string
	ReturnURL     string
	GoogleEnabled bool
}

// errorMessages maps ?error= codes (set by the OAuth flow) to friendly text.
var errorMessages = map[string]string{
	"google_denied":         "Google sign-in was cancelled.",
	"google_not_configured": "Google sign-in is not available.",
	"invalid_state":         "Sign-in session expired. Please try again.",
	"invalid_code":          "Sign-in failed. Please try again.",
	"token_exchange":        "Sign-in failed. Please try again.",
	"user_info":             "Could not read your Google profile. Please try again.",
	"account_disabled":      "This account has been disabled.",
	"session":               "Could not start a session. Please try again.",
	"internal":              "Something went wrong. Please try again.",
}

// ServeForm handles GET /login.
func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM:        viewdata.NewBaseVM(r, "Sign in", "/"),
		ReturnURL:     query.Get(r, "return"),
		GoogleEnabled: h.GoogleEnabled,
	}
	if code := query.Get(r, "error"); code != "" {
		if msg, ok := errorMessages[code]; ok {
			data.Error = msg
		} else {
			data.Error = errorMessages["internal"]
		}
	}
	templates.Render(w, r, "login", data)
}

// HandleSubmit handles POST /login.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, "Invalid form submission.", "", "")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	if email == "" || password == "" {
		h.renderError(w, r, "Email and password are required.", email, returnURL)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.renderError(w, r, "Invalid email or password.", email, returnURL)
			return
		}
		h.Log.Error("login lookup failed", zap.Error(err))
		h.renderError(w, r, "Something went wrong. Please try again.", email, returnURL)
		return
	}

	if normalize.Status(user.Status) == "disabled" {
		h.renderError(w, r, "This account has been disabled.", email, returnURL)
		return
	}
	if normalize.AuthMethod(user.AuthMethod) == "google" {
		h.renderError(w, r, "This account signs in with Google.", email, returnURL)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		h.Log.Info("login failed: bad password", zap.String("user_id", user.ID.Hex()))
		h.renderError(w, r, "Invalid email or password.", email, returnURL)
		return
	}

	su := &auth.SessionUser{
		ID:    user.ID.Hex(),
		Name:  user.FullName,
		Email: user.Email,
		Role:  normalize.Role(user.Role),
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("user_id", su.ID))
		h.renderError(w, r, "Could not start a session. Please try again.", email, returnURL)
		return
	}

	h.Log.Info("user logged in", zap.String("user_id", su.ID), zap.String("role", su.Role))

	dest := urlutil.SafeReturn(returnURL, "", "/dashboard")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, msg, email, returnURL string) {
	data := formData{
		BaseVM:        viewdata.NewBaseVM(r, "Sign in", "/"),
		Error:         msg,
		Email:         email,
		ReturnURL:     returnURL,
		GoogleEnabled: h.GoogleEnabled,
	}
	templates.Render(w, r, "login", data)
}
