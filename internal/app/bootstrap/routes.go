// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	adminfeature "github.com/campusconnect/mentorlink/internal/app/features/admin"
	asksfeature "github.com/campusconnect/mentorlink/internal/app/features/asks"
	authgooglefeature "github.com/campusconnect/mentorlink/internal/app/features/authgoogle"
	connectionsfeature "github.com/campusconnect/mentorlink/internal/app/features/connections"
	dashboardfeature "github.com/campusconnect/mentorlink/internal/app/features/dashboard"
	errorsfeature "github.com/campusconnect/mentorlink/internal/app/features/errors"
	healthfeature "github.com/campusconnect/mentorlink/internal/app/features/health"
	homefeature "github.com/campusconnect/mentorlink/internal/app/features/home"
	loginfeature "github.com/campusconnect/mentorlink/internal/app/features/login"
	logoutfeature "github.com/campusconnect/mentorlink/internal/app/features/logout"
	matchesfeature "github.com/campusconnect/mentorlink/internal/app/features/matches"
	notificationsfeature "github.com/campusconnect/mentorlink/internal/app/features/notifications"
	offersfeature "github.com/campusconnect/mentorlink/internal/app/features/offers"
	profilefeature "github.com/campusconnect/mentorlink/internal/app/features/profile"
	registerfeature "github.com/campusconnect/mentorlink/internal/app/features/register"
	userinfofeature "github.com/campusconnect/mentorlink/internal/app/features/userinfo"
	"github.com/campusconnect/mentorlink/internal/app/match"
	"github.com/campusconnect/mentorlink/internal/app/match/gemini"
	"github.com/campusconnect/mentorlink/internal/app/match/scrape"
	askstore "github.com/campusconnect/mentorlink/internal/app/store/asks"
	connectionstore "github.com/campusconnect/mentorlink/internal/app/store/connections"
	notificationstore "github.com/campusconnect/mentorlink/internal/app/store/notifications"
	offerstore "github.com/campusconnect/mentorlink/internal/app/store/offers"
	"github.com/campusconnect/mentorlink/internal/app/store/queries/tagstats"
	userstore "github.com/campusconnect/mentorlink/internal/app/store/users"
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// MentorLink initializes the template engine, applies session middleware,
// constructs the stores and the matching engine, and mounts feature routers
// for all application areas: home, auth, dashboard, asks, offers, matches,
// connections, notifications, and admin reporting.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MentorLinkMongoDatabase

	// Set up the UserFetcher so LoadSessionUser fetches fresh user data on each request.
	// This ensures role changes, disabled accounts, and profile updates take effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(db))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// Stores
	users := userstore.New(db)
	asks := askstore.New(db)
	offers := offerstore.New(db)
	connections := connectionstore.New(db)
	notifications := notificationstore.New(db)
	stats := tagstats.New(db)

	// Matching engine. The Gemini ranker is optional; without an API key
	// the engine ranks by tag overlap only.
	var ranker match.Ranker
	if appCfg.GeminiAPIKey != "" {
		gen, err := gemini.NewGenerator(context.Background(), appCfg.GeminiAPIKey, appCfg.GeminiModel)
		if err != nil {
			logger.Warn("gemini client init failed, matching falls back to tag overlap", zap.Error(err))
		} else {
			ranker = gemini.NewRanker(gen, logger)
			logger.Info("gemini ranker enabled", zap.String("model", gen.Model()))
		}
	}
	engine := match.NewEngine(ranker, logger)
	scraper := scrape.New(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MentorLinkMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""

	registerHandler := registerfeature.NewHandler(users, sessionMgr, logger)
	r.Mount("/register", registerfeature.Routes(registerHandler))

	loginHandler := loginfeature.NewHandler(users, sessionMgr, googleEnabled, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	if googleEnabled {
		googleHandler := authgooglefeature.NewHandler(users, sessionMgr, appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, secure, logger)
		r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))
	}

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Role-based dashboards
	dashboardHandler := dashboardfeature.NewHandler(users, asks, offers, connections, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Profiles
	profileHandler := profilefeature.NewHandler(users, errLog, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	// Asks and offers
	asksHandler := asksfeature.NewHandler(asks, errLog, logger)
	r.Mount("/asks", asksfeature.Routes(asksHandler, sessionMgr))

	offersHandler := offersfeature.NewHandler(offers, errLog, logger)
	r.Mount("/offers", offersfeature.Routes(offersHandler, sessionMgr))

	// Connections (page and API)
	connectionsHandler := connectionsfeature.NewHandler(users, asks, offers, connections, notifications, errLog, logger)
	r.Mount("/connections", connectionsfeature.Routes(connectionsHandler, sessionMgr))
	r.Mount("/api/connections", connectionsfeature.APIRoutes(connectionsHandler, sessionMgr))

	// Matching API
	matchesHandler := matchesfeature.NewHandler(asks, offers, engine, scraper, logger)
	r.Mount("/api/match", matchesfeature.Routes(matchesHandler, sessionMgr))

	// Notification feed API
	notificationsHandler := notificationsfeature.NewHandler(notifications, logger)
	r.Mount("/api/notifications", notificationsfeature.Routes(notificationsHandler, sessionMgr))

	// Session info for client-side nav
	userinfoHandler := userinfofeature.NewHandler(notifications, logger)
	r.Mount("/api/userinfo", userinfofeature.Routes(userinfoHandler))

	// Admin tag reporting (page and API)
	adminHandler := adminfeature.NewHandler(stats, errLog, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler, sessionMgr))
	r.Mount("/api/admin", adminfeature.APIRoutes(adminHandler, sessionMgr))

	return r, nil
}
