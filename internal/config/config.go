// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load layers file and env.
// - External errors must be wrapped via this package's error helpers.
package config

// Default values applied before any file or environment overrides.
const (
	DefaultMongoURI = "mongodb://localhost:27017"
	DefaultPort     = 3000
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Port is the HTTP listen port; the service binds 0.0.0.0.
	Port int `koanf:"port"`

	// MongoURI is the score store connection string.
	MongoURI string `koanf:"mongo_uri"`

	// Database and Collection locate the score documents.
	Database   string `koanf:"database"`
	Collection string `koanf:"collection"`

	// TopLimit caps ranked listings.
	TopLimit int `koanf:"top_limit"`

	// SecretToken overrides the submission-hash token. Leave empty to use
	// the built-in one shipped with clients.
	SecretToken string `koanf:"secret_token"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		Port:       DefaultPort,
		MongoURI:   DefaultMongoURI,
		Database:   "gurtle",
		Collection: "scores",
		TopLimit:   10,
	}
}
