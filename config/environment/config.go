package environment

import (
	"os"
	"strconv"
	"time"
)

func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "todonest-dev-secret" // development fallback, set JWT_SECRET in production
	}
	return secret
}

// GetTokenTTL returns the bearer token lifetime, default 30 minutes.
func GetTokenTTL() time.Duration {
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return 30 * time.Minute
}

func GetDatabasePath() string {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "todo.db"
	}
	return path
}
