package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process settings loaded from the environment.
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	JWTSecret []byte
	// TokenTTL is the access-token validity window.
	TokenTTL time.Duration
}

// Load reads settings from a .env file if present, falling back to
// environment variables and defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getenv("PORT", "8080"),
		MongoURI:  getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getenv("MONGO_DB", "bookapi"),
		JWTSecret: []byte(getenv("JWT_SECRET", "your_secret_key_change_this")),
		TokenTTL:  time.Hour,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
