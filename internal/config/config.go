package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// defaultSentimentURL is the HuggingFace inference endpoint for the
// distilbert sst-2 sentiment model used to annotate entries.
const defaultSentimentURL = "https://router.huggingface.co/hf-inference/models/distilbert/distilbert-base-uncased-finetuned-sst-2-english"

type Config struct {
	MongoURI         string
	RedisURI         string
	JWTSecret        string
	Port             string
	AllowedOrigins   []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	SentimentAPIKey  string   // HF_API_KEY; sentiment is skipped entirely when empty
	SentimentAPIURL  string
	SentimentTimeout time.Duration
	Host             string // Raw HOST env (e.g. https://api.mindscape.app)
	AllowedHost      string // Hostname only for strict host check (production only)
	Environment      string // ENV: production, development, etc.
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))
	host := getEnv("HOST", "http://localhost:8000")

	// AllowedHost is only set in production; host check is skipped in development
	var allowedHost string
	if env == "production" {
		allowedHost = stripScheme(host)
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", "http://localhost:5173"), getEnv("FRONTEND_URL_2", "")} {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173"}
	}

	timeoutMs := 8000
	if v := getEnv("SENTIMENT_TIMEOUT_MS", ""); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutMs = parsed
		}
	}

	return &Config{
		MongoURI:         getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/mindscape")),
		RedisURI:         getEnv("REDIS_URI", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		Port:             getEnv("PORT", "8000"),
		AllowedOrigins:   allowedOrigins,
		SentimentAPIKey:  getEnv("HF_API_KEY", ""),
		SentimentAPIURL:  getEnv("SENTIMENT_API_URL", defaultSentimentURL),
		SentimentTimeout: time.Duration(timeoutMs) * time.Millisecond,
		Host:             host,
		AllowedHost:      allowedHost,
		Environment:      env,
	}
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func stripScheme(host string) string {
	for _, prefix := range []string{"https://", "http://"} {
		host = strings.TrimPrefix(host, prefix)
	}
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return strings.TrimSpace(host)
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
