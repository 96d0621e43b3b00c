package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	// TokenTTL of 0 issues tokens without an exp claim.
	TokenTTL time.Duration
	// OwnerFromToken makes add-listing take the owner from the bearer token
	// instead of trusting owner_user_id in the request body.
	OwnerFromToken bool

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "sharebandb"),
		DBPassword: getEnv("DB_PASSWORD", "sharebandb_dev_password"),
		DBName:     getEnv("DB_NAME", "sharebandb"),

		JWTSecret:      getEnv("SECRET_KEY", "dev-secret-change-me"),
		TokenTTL:       getDurationEnv("TOKEN_TTL", 24*time.Hour),
		OwnerFromToken: getBoolEnv("OWNER_FROM_TOKEN", true),

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey: getEnv("S3_SECRET_ACCESS_KEY", "minioadmin"),
		S3Bucket:    getEnv("S3_BUCKET", "sharebandb-photos"),
		S3UseSSL:    getBoolEnv("S3_USE_SSL", false),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		log.Printf("Invalid %s value %q, using %v", key, val, fallback)
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("Invalid %s value %q, using %v", key, val, fallback)
		return fallback
	}
	return parsed
}
