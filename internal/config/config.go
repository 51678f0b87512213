// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderHTTP   = "http"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool
}

// Enabled reports whether outbound mail is configured at all.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.From != ""
}

type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string

	// RedisAddr is optional. Without it trip locks stay in-process.
	RedisAddr     string
	RedisPassword string
	TripLockTTL   time.Duration

	ItineraryProvider   string
	ItineraryServiceURL string
	ItineraryTimeout    time.Duration
	AIRateLimitPerMin   int

	// ChatServiceURL is only used by the http provider. Without it chat is disabled.
	ChatServiceURL string
	ChatTimeout    time.Duration

	OpenAIAPIKey         string
	OpenAIModel          string
	OpenAIEmbeddingModel string
	GeminiAPIKey         string
	GeminiModel          string
	EmbeddingsEnabled    bool

	SMTP       SMTPConfig
	AppName    string
	AppBaseURL string
}

// Load reads configuration from environment variables.
// Returns an error listing every required variable that is missing or malformed.
func Load() (Config, error) {
	var problems []string

	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		AppEnv:               getEnv("APP_ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		DatabaseURL:          os.Getenv("POSTGRES_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		CORSOrigins:          splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		ItineraryProvider:    strings.ToLower(getEnv("ITINERARY_PROVIDER", ProviderHTTP)),
		ItineraryServiceURL:  os.Getenv("ITINERARY_SERVICE_URL"),
		ChatServiceURL:       os.Getenv("CHAT_SERVICE_URL"),
		OpenAIAPIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIEmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		GeminiAPIKey:         os.Getenv("GEMINI_API_KEY"),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		AppName:              getEnv("APP_NAME", "GlobeTrotter"),
		AppBaseURL:           getEnv("APP_BASE_URL", "http://localhost:5173"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
			FromName: getEnv("SMTP_FROM_NAME", "GlobeTrotter"),
		},
	}

	cfg.JWTTTL = getDuration("JWT_TTL", 60*time.Minute, &problems)
	cfg.TripLockTTL = getDuration("TRIP_LOCK_TTL", 2*time.Minute, &problems)
	cfg.ItineraryTimeout = getDuration("ITINERARY_TIMEOUT", 60*time.Second, &problems)
	cfg.ChatTimeout = getDuration("CHAT_TIMEOUT", 30*time.Second, &problems)
	cfg.AIRateLimitPerMin = getInt("AI_RATE_LIMIT_PER_MIN", 6, &problems)
	cfg.SMTP.Port = getInt("SMTP_PORT", 587, &problems)
	cfg.SMTP.UseSSL = getBool("SMTP_USE_SSL", false, &problems)
	cfg.EmbeddingsEnabled = getBool("EMBEDDINGS_ENABLED", false, &problems)

	if cfg.DatabaseURL == "" {
		problems = append(problems, "POSTGRES_URL")
	}
	if cfg.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET")
	}

	switch cfg.ItineraryProvider {
	case ProviderHTTP:
		if cfg.ItineraryServiceURL == "" {
			problems = append(problems, "ITINERARY_SERVICE_URL")
		}
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			problems = append(problems, "OPENAI_API_KEY")
		}
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			problems = append(problems, "GEMINI_API_KEY")
		}
	default:
		problems = append(problems, "ITINERARY_PROVIDER (http|openai|gemini)")
	}
	// A trip lock that expires mid-generation would admit a second run for the same trip.
	if cfg.TripLockTTL <= cfg.ItineraryTimeout {
		problems = append(problems, "TRIP_LOCK_TTL (must exceed ITINERARY_TIMEOUT)")
	}
	if cfg.EmbeddingsEnabled && cfg.OpenAIAPIKey == "" {
		problems = append(problems, "OPENAI_API_KEY (EMBEDDINGS_ENABLED)")
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set or invalid: %s", strings.Join(problems, ", "))
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// getEnv returns the value of key, or fallback if unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration, problems *[]string) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		*problems = append(*problems, key)
		return fallback
	}
	return d
}

func getInt(key string, fallback int, problems *[]string) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		*problems = append(*problems, key)
		return fallback
	}
	return n
}

func getBool(key string, fallback bool, problems *[]string) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*problems = append(*problems, key)
		return fallback
	}
	return b
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
