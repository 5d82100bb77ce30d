package config

import (
	"log"
	"os"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port               string
	CORSAllowOrigin    []string
	DatabaseURL        string
	Env                string
	GeminiModel        string
	AnalyticsSheetPath string
	GeoLookupURL       string
}

// Load reads configuration from environment variables with sensible defaults.
//
// The Gemini API key is deliberately NOT part of Config: it must be re-read on
// every AI call via ReadGeminiKey so a key added to .env takes effect without
// a restart.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:        dbURL,
		Env:                env,
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AnalyticsSheetPath: getEnv("ANALYTICS_SHEET_PATH", "./data/trip_requests.csv"),
		GeoLookupURL:       getEnv("GEO_LOOKUP_URL", "https://ipapi.co"),
	}
}

// ReadGeminiKey returns the Gemini API key fresh from the environment,
// re-reading local env files so a live key change takes effect immediately.
// Placeholder values left over from a template .env count as absent.
func ReadGeminiKey() string {
	loadEnvFiles(".env", "cmd/.env")
	key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	switch key {
	case "", "your_gemini_api_key_here", "YOUR_KEY_HERE":
		return ""
	}
	return key
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
