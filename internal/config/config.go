// Package config reads the server and CLI settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultProjectID = "pfdash-app"

type Config struct {
	// HTTP server
	Port           string
	Env            string
	AllowedOrigins []string

	// Backends
	UseMemoryStore bool
	SkipAuth       bool
	ProjectID      string

	// Cloud Scheduler shared secret for batch procedures
	SchedulerSecret string

	// Exports
	ExportBucket string

	// Algolia
	AlgoliaAppID  string
	AlgoliaAPIKey string
	AlgoliaIndex  string

	// Exchange rates
	RatesURL             string
	RatesRefreshInterval time.Duration

	LogLevel  string
	LogPretty bool
}

// LoadDotEnv loads the given .env files (".env" when none are named) into
// the process environment. Missing files are ignored; variables already
// set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the configuration from the environment.
func Load() *Config {
	env := getEnv("ENV", "production")
	local := env == "local"

	return &Config{
		Port:           getEnv("PORT", "8111"),
		Env:            env,
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:1234", "http://127.0.0.1:1234"}),

		UseMemoryStore: getEnvBool("USE_MEMORY_STORE", false) || local,
		SkipAuth:       getEnvBool("SKIP_AUTH", false),
		ProjectID:      getEnv("GOOGLE_CLOUD_PROJECT", defaultProjectID),

		SchedulerSecret: getEnv("SCHEDULER_SECRET", ""),
		ExportBucket:    getEnv("EXPORT_BUCKET", ""),

		AlgoliaAppID:  getEnv("ALGOLIA_APP_ID", ""),
		AlgoliaAPIKey: getEnv("ALGOLIA_API_KEY", ""),
		AlgoliaIndex:  getEnv("ALGOLIA_INDEX", "pfdash"),

		RatesURL:             getEnv("RATES_URL", ""),
		RatesRefreshInterval: getEnvDuration("RATES_REFRESH_INTERVAL", 6*time.Hour),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvBool("LOG_PRETTY", local),
	}
}

// Local reports whether the server runs against local development
// backends.
func (c *Config) Local() bool {
	return c.UseMemoryStore || c.Env == "local"
}

// AlgoliaEnabled reports whether both Algolia credentials are present.
func (c *Config) AlgoliaEnabled() bool {
	return c.AlgoliaAppID != "" && c.AlgoliaAPIKey != ""
}

// Validate validates the configuration and returns an error listing every
// problem found.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !c.UseMemoryStore && c.ProjectID == "" {
		problems = append(problems, "GOOGLE_CLOUD_PROJECT is required unless USE_MEMORY_STORE is set")
	}

	if (c.AlgoliaAppID == "") != (c.AlgoliaAPIKey == "") {
		problems = append(problems, "ALGOLIA_APP_ID and ALGOLIA_API_KEY must be set together")
	}

	if c.RatesURL != "" {
		if u, err := url.Parse(c.RatesURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid RATES_URL '%s': %v", c.RatesURL, err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			problems = append(problems, fmt.Sprintf("invalid RATES_URL scheme '%s': must be 'http' or 'https'", u.Scheme))
		}
		if c.RatesRefreshInterval < time.Minute {
			problems = append(problems, fmt.Sprintf("invalid rates refresh interval %v: must be at least 1 minute", c.RatesRefreshInterval))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
