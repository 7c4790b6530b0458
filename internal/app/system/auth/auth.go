// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	isAuthKey = "is_authenticated"
	userIDKey = "user_id"
)

// SessionUser is what we cache in the session & inject into r.Context().
type SessionUser struct {
	ID    string
	Name  string
	Email string
	Role  string // student | alumni | admin
}

// UserFetcher loads fresh user data for a session's user ID on each
// request. Returning nil means the session is no longer valid (user
// deleted or disabled) and the request proceeds unauthenticated.
type UserFetcher interface {
	FetchUser(ctx context.Context, userID string) *SessionUser
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects a user directly into the request context.
// Test helper only; production code goes through LoadSessionUser.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// SessionManager owns the cookie store and the auth middleware chain.
type SessionManager struct {
	store   *sessions.CookieStore
	name    string
	log     *zap.Logger
	fetcher UserFetcher
}

// NewSessionManager builds a cookie-backed session manager.
//
// In production (secure=true) cookies are Secure + SameSite=None so they
// survive cross-site contexts over HTTPS. In local dev over http, Lax.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Store exposes the underlying cookie store (logout needs its options).
func (sm *SessionManager) Store() *sessions.CookieStore { return sm.store }

// GetSession returns the request's session, creating a new one if absent.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

// SetUserFetcher makes LoadSessionUser fetch fresh user data on each
// request so role changes and disabled accounts take effect immediately.
func (sm *SessionManager) SetUserFetcher(f UserFetcher) { sm.fetcher = f }

// SignIn marks the session authenticated for the given user.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, u *SessionUser) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			// Stale or corrupt cookie; start clean.
			sm.log.Warn("session cookie invalid on sign-in, using fresh session", zap.Error(err))
		} else {
			sm.log.Error("session store error on sign-in, using fresh session", zap.Error(err))
		}
	}
	sess.Values[isAuthKey] = true
	sess.Values[userIDKey] = u.ID
	return sess.Save(r, w)
}

// LoadSessionUser injects the user into context if they are logged in.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sm.store.Get(r, sm.name)

		if isAuth, _ := sess.Values[isAuthKey].(bool); isAuth {
			id, _ := sess.Values[userIDKey].(string)
			if id != "" && sm.fetcher != nil {
				if u := sm.fetcher.FetchUser(r.Context(), id); u != nil {
					r = withUser(r, u)
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		redirectToLogin(w, r)
	})
}

// RequireRole ensures the context user has one of the allowed roles.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				redirectToLogin(w, r)
				return
			}

			if _, has := set[strings.ToLower(u.Role)]; !has {
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/forbidden")
					w.WriteHeader(http.StatusForbidden)
					return
				}
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// helpers

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	ret := url.QueryEscape(currentURI(r))

	// HTMX: full-page client redirect (no partial swap)
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/login?return="+ret)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if wantsHTML(r) {
		http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
		return
	}

	// Non-HTML (API) callers: plain 401
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func wantsHTML(r *http.Request) bool {
	// Very light heuristic: treat it as HTML if it's HTMX or Accepts text/html.
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html")
}

func currentURI(r *http.Request) string {
	// Preserve path + query as a return param.
	u := *r.URL
	return u.RequestURI()
}
