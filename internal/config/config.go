package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains runtime settings for the livability API server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	GoogleMaps struct {
		APIKey   string
		Language string
	} // Places + Geocoding credentials

	// QueryInterval spaces per-category provider calls inside one domain.
	QueryInterval time.Duration

	// AllowedOrigins configures CORS for the HTTP surface.
	AllowedOrigins []string
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel:       "info",
		Host:           "0.0.0.0",
		Port:           "8080",
		QueryInterval:  100 * time.Millisecond,
		AllowedOrigins: []string{"*"},
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	cfg.GoogleMaps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	if v := os.Getenv("GOOGLE_MAPS_LANGUAGE"); v != "" {
		cfg.GoogleMaps.Language = v
	} else {
		cfg.GoogleMaps.Language = "ja"
	}

	if v := os.Getenv("QUERY_INTERVAL_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return cfg, fmt.Errorf("invalid QUERY_INTERVAL_MS %q", v)
		}
		cfg.QueryInterval = time.Duration(ms) * time.Millisecond
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitAndTrim(v)
	}

	var missingVars []string

	if cfg.GoogleMaps.APIKey == "" {
		missingVars = append(missingVars, "GOOGLE_MAPS_API_KEY")
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
