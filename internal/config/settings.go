package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Settings struct {
	Port        string
	Environment string
	LogLevel    string

	GeminiAPIKey       string
	GeminiBaseURL      string
	GeminiQuizModel    string
	GeminiExplainModel string
	GeminiTimeout      time.Duration

	SessionStore  string
	SessionTTL    time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	CryptoKey   string
	CorsOrigins []string
}

var App *Settings

// Init loads an optional .env file and reads the process settings.
func Init() *Settings {
	if err := godotenv.Load(); err != nil {
		Logger.Debug("No .env file found, using environment variables")
	}

	App = Load()
	initLogger(App.LogLevel)
	return App
}

func Load() *Settings {
	apiKey := getEnvOrDefault("GEMINI_API_KEY", "")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}

	return &Settings{
		Port:        getEnvOrDefault("PORT", "8080"),
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),

		GeminiAPIKey:       apiKey,
		GeminiBaseURL:      getEnvOrDefault("GEMINI_BASE_URL", ""),
		GeminiQuizModel:    getEnvOrDefault("GEMINI_QUIZ_MODEL", "gemini-2.5-flash-lite"),
		GeminiExplainModel: getEnvOrDefault("GEMINI_EXPLAIN_MODEL", "gemini-1.5-flash"),
		GeminiTimeout:      getDurationOrDefault("GEMINI_TIMEOUT", 60*time.Second),

		SessionStore:  strings.ToLower(getEnvOrDefault("SESSION_STORE", "memory")),
		SessionTTL:    getDurationOrDefault("SESSION_TTL", 6*time.Hour),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       getIntOrDefault("REDIS_DB", 0),

		JWTSecret:   getEnvOrDefault("JWT_SECRET", ""),
		CryptoKey:   getEnvOrDefault("CRYPTO_KEY", ""),
		CorsOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:5173")),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnvOrDefault(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnvOrDefault(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
