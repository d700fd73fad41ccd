package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Gemini Configuration (embeddings + job description summarization)
	GeminiAPIKey     string
	GeminiEmbedModel string
	GeminiGenModel   string
	// Matching Configuration
	MatchThreshold          float64 // minimum score for shortlisting
	DashboardTopN           int     // rows published to the dashboard snapshot
	EmbeddingTimeoutSeconds int
	// Resume uploads
	UploadDir string
	// SMTP Configuration (interview invitations)
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// Redis Configuration (embedding vector cache)
	UpstashRedisURL      string
	UpstashRedisPassword string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),

		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiEmbedModel: getEnv("GEMINI_EMBED_MODEL", "gemini-embedding-001"),
		GeminiGenModel:   getEnv("GEMINI_GEN_MODEL", "gemini-2.0-flash"),

		MatchThreshold:          getEnvAsFloat("MATCH_THRESHOLD", 0.80),
		DashboardTopN:           getEnvAsInt("DASHBOARD_TOP_N", 3),
		EmbeddingTimeoutSeconds: getEnvAsInt("EMBEDDING_TIMEOUT_SECONDS", 30),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		SMTPHost:      getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", ""),

		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}
