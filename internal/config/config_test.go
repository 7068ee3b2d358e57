package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Port:                 "8111",
		ProjectID:            "pfdash-test",
		RatesRefreshInterval: time.Hour,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errorString string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "firestore without project",
			mutate:      func(c *Config) { c.ProjectID = "" },
			errorString: "GOOGLE_CLOUD_PROJECT is required",
		},
		{
			name:   "memory store without project",
			mutate: func(c *Config) { c.ProjectID = ""; c.UseMemoryStore = true },
		},
		{
			name:        "half-configured algolia",
			mutate:      func(c *Config) { c.AlgoliaAppID = "app" },
			errorString: "ALGOLIA_APP_ID and ALGOLIA_API_KEY must be set together",
		},
		{
			name:        "rates url scheme",
			mutate:      func(c *Config) { c.RatesURL = "ftp://rates.example.com" },
			errorString: "invalid RATES_URL scheme 'ftp'",
		},
		{
			name: "rates interval too short",
			mutate: func(c *Config) {
				c.RatesURL = "https://rates.example.com/latest"
				c.RatesRefreshInterval = time.Second
			},
			errorString: "invalid rates refresh interval 1s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errorString == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestConfig_ValidateCollectsEveryProblem(t *testing.T) {
	cfg := Config{Port: "abc", AlgoliaAPIKey: "key"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
	assert.Contains(t, err.Error(), "GOOGLE_CLOUD_PROJECT")
	assert.Contains(t, err.Error(), "ALGOLIA_APP_ID")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "USE_MEMORY_STORE", "GOOGLE_CLOUD_PROJECT", "ALLOWED_ORIGINS", "RATES_REFRESH_INTERVAL", "LOG_PRETTY", "ALGOLIA_APP_ID", "ALGOLIA_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8111", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.UseMemoryStore)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, defaultProjectID, cfg.ProjectID)
	assert.Equal(t, 6*time.Hour, cfg.RatesRefreshInterval)
	assert.Equal(t, []string{"http://localhost:1234", "http://127.0.0.1:1234"}, cfg.AllowedOrigins)
	assert.False(t, cfg.AlgoliaEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "local")
	t.Setenv("USE_MEMORY_STORE", "")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATES_REFRESH_INTERVAL", "30m")
	t.Setenv("ALGOLIA_APP_ID", "app")
	t.Setenv("ALGOLIA_API_KEY", "key")
	t.Setenv("SKIP_AUTH", "not-a-bool")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.UseMemoryStore, "local env implies the memory store")
	assert.True(t, cfg.Local())
	assert.True(t, cfg.LogPretty)
	assert.False(t, cfg.SkipAuth, "unparseable booleans fall back to the default")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.RatesRefreshInterval)
	assert.True(t, cfg.AlgoliaEnabled())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PFDASH_TEST_DOTENV=from-file\nPFDASH_TEST_PRESET=from-file\n"), 0o600))

	t.Setenv("PFDASH_TEST_PRESET", "from-env")
	t.Cleanup(func() { os.Unsetenv("PFDASH_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("PFDASH_TEST_DOTENV"))
	assert.Equal(t, "from-env", os.Getenv("PFDASH_TEST_PRESET"), "existing variables win")

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
