// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging, CORS); AppConfig is
// everything specific to MentorLink.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: mentorlink-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Base URL for OAuth callbacks and absolute links
	BaseURL string // e.g., "https://mentorlink.example.edu" or "http://localhost:3000"

	// Google OAuth configuration
	GoogleClientID     string
	GoogleClientSecret string

	// Gemini matching configuration. An empty API key disables the AI
	// ranker; matching then always uses tag-overlap scoring.
	GeminiAPIKey string
	GeminiModel  string
}
