package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// External collaborators.
	PredictorURL     string
	EnhanceAPIKey    string
	EnhanceModel     string
	CloudinaryCloud  string
	CloudinaryAPIKey string
	CloudinarySecret string
	CloudinaryFolder string

	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/clearplot?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getEnvInt("REDIS_DB", 0),
		RedisPass:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:  getEnv("JWT_SECRET", "change-me"),

		PredictorURL:     getEnv("PREDICTOR_URL", "http://localhost:5000"),
		EnhanceAPIKey:    os.Getenv("ENHANCE_API_KEY"),
		EnhanceModel:     getEnv("ENHANCE_MODEL", "gpt-4o-mini"),
		CloudinaryCloud:  os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey: os.Getenv("CLOUDINARY_API_KEY"),
		CloudinarySecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder: getEnv("CLOUDINARY_FOLDER", "property_images"),

		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
