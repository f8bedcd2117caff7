package config

import "os"

// Config carries everything the server reads from the environment.
type Config struct {
	Port         string
	APIBaseURL   string
	CookieSecret string
}

// Load reads the environment with development fallbacks. godotenv has
// already populated the environment from .env by the time this runs.
func Load() Config {
	return Config{
		Port:         envOr("PORT", "3000"),
		APIBaseURL:   envOr("ZENI_API_URL", "http://localhost:8000/api"),
		CookieSecret: envOr("COOKIE_SECRET", "secret"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
