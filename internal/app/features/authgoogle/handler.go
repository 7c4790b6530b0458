// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	userstore "github.com/campusconnect/mentorlink/internal/app/store/users"
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/campusconnect/mentorlink/internal/app/system/normalize"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookie  = "oauth_state"
	returnCookie = "oauth_return"
	stateTTL     = 10 * time.Minute
)

// Handler handles Google OAuth authentication.
type Handler struct {
	Users      *userstore.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager

	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g., "https://mentorlink.example.com/auth/google/callback"
	Secure       bool
}

// NewHandler creates a new Google OAuth handler.
func NewHandler(users *userstore.Store, sessionMgr *auth.SessionManager, clientID, clientSecret, baseURL string, secure bool, logger *zap.Logger) *Handler {
	return &Handler{
		Users:        users,
		Log:          logger,
		SessionMgr:   sessionMgr,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
		Secure:       secure,
	}
}

// oauth2Config returns the Google OAuth2 configuration.
func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// IsConfigured returns true if Google OAuth is configured.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

// ServeLogin handles GET /auth/google. It sets a short-lived state
// cookie and redirects to Google's consent screen.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Google OAuth not configured")
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	state := uuid.NewString()
	h.setFlowCookie(w, stateCookie, state)
	if ret := query.Get(r, "return"); ret != "" {
		h.setFlowCookie(w, returnCookie, ret)
	}

	url := h.oauth2Config().AuthCodeURL(state, oauth2.AccessTypeOffline)

	h.Log.Debug("initiating Google OAuth flow", zap.String("redirect_url", url))

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// ServeCallback handles GET /auth/google/callback. It validates the
// state, exchanges the code, fetches the Google profile, and signs the
// user in, creating a student account on first sign-in.
func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("Google OAuth error",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		http.Redirect(w, r, "/login?error=google_denied", http.StatusSeeOther)
		return
	}

	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookie)
	h.clearFlowCookie(w, stateCookie)
	if state == "" || err != nil || cookie.Value != state {
		h.Log.Warn("invalid or expired OAuth state")
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	returnURL := ""
	if rc, err := r.Cookie(returnCookie); err == nil {
		returnURL = rc.Value
	}
	h.clearFlowCookie(w, returnCookie)

	code := r.URL.Query().Get("code")
	if code == "" {
		h.Log.Warn("missing OAuth code parameter")
		http.Redirect(w, r, "/login?error=invalid_code", http.StatusSeeOther)
		return
	}

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("failed to exchange OAuth code", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	googleUser, err := fetchGoogleUserInfo(ctx, token)
	if err != nil {
		h.Log.Error("failed to fetch Google user info", zap.Error(err))
		http.Redirect(w, r, "/login?error=user_info", http.StatusSeeOther)
		return
	}

	h.Log.Debug("Google user info fetched",
		zap.String("email", googleUser.Email),
		zap.String("name", googleUser.Name))

	user, err := h.findOrCreateUser(ctx, googleUser)
	if err != nil {
		if errors.Is(err, errUserDisabled) {
			http.Redirect(w, r, "/login?error=account_disabled", http.StatusSeeOther)
			return
		}
		h.Log.Error("failed to resolve Google user", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
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
		http.Redirect(w, r, "/login?error=session", http.StatusSeeOther)
		return
	}

	h.Log.Info("user logged in via Google OAuth", zap.String("user_id", su.ID))

	dest := urlutil.SafeReturn(returnURL, "", "/dashboard")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

var errUserDisabled = errors.New("user disabled")

// googleUserInfo represents user info returned from Google.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// fetchGoogleUserInfo retrieves user information from Google's userinfo endpoint.
func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	return &info, nil
}

// findOrCreateUser looks up the Google account by email and creates a
// student account on first sign-in.
func (h *Handler) findOrCreateUser(ctx context.Context, googleUser *googleUserInfo) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	email := normalize.Email(googleUser.Email)

	user, err := h.Users.GetByEmail(ctx, email)
	if err == nil {
		if normalize.Status(user.Status) == "disabled" {
			return models.User{}, errUserDisabled
		}
		return user, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, err
	}

	return h.Users.Create(ctx, models.User{
		FullName:   normalize.Name(googleUser.Name),
		Email:      email,
		AuthMethod: "google",
		Role:       "student",
		Image:      googleUser.Picture,
	})
}

func (h *Handler) setFlowCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(stateTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearFlowCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
