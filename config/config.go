package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const DefaultTokenExpiryMin = 60

type Config struct {
	Env            string
	Port           string
	DBURL          string
	JWTSecret      string
	JWTIssuer      string
	JWTAudience    string
	TokenExpiryMin int
}

// Load reads configuration from the environment, optionally seeded from a
// config/.env.<env> file. Values already present in the process environment
// always win over file values.
func Load() *Config {
	env := getEnv("ENV", "development")
	loadEnvFile(env)

	return &Config{
		Env:            env,
		Port:           getEnv("PORT", "8080"),
		DBURL:          mustGetEnv("DB_URL"),
		JWTSecret:      mustGetEnv("JWT_SECRET"),
		JWTIssuer:      getEnv("JWT_ISSUER", "pokemon-review-api"),
		JWTAudience:    getEnv("JWT_AUDIENCE", "pokemon-review-api"),
		TokenExpiryMin: getEnvAsInt("TOKEN_EXPIRY_MINUTES", DefaultTokenExpiryMin),
	}
}

// IsProduction reports whether strict token validation (issuer/audience)
// must be enforced.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func loadEnvFile(env string) {
	suffix := map[string]string{
		"development": "dev",
		"production":  "prod",
		"test":        "test",
	}[env]
	if suffix == "" {
		suffix = env
	}

	// Missing file is fine: containerized deployments pass plain env vars.
	_ = godotenv.Load(filepath.Join("config", ".env."+suffix))
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
