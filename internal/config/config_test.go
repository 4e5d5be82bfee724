package config

import (
	"os"
	"testing"
	"time"

	"vocabcards/internal/gesture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "CATALOG_PATH", "CATALOG_URL",
		"CATALOG_FETCH_TIMEOUT", "CATALOG_RELOAD_INTERVAL", "HTTP_ADDR", "TOAST_TTL",
		"CARDS_DB_PATH", "GESTURE_THRESHOLD", "CARDS_GESTURE_THRESHOLD",
	} {
		// restore after the test, then clear
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "vocabcards", cfg.Database.Name)
	assert.Equal(t, "vocabcards", cfg.Database.User)
	assert.Equal(t, "data/vocab.json", cfg.Catalog.Path)
	assert.Empty(t, cfg.Catalog.URL)
	assert.Equal(t, 10*time.Second, cfg.Catalog.FetchTimeout)
	assert.Equal(t, time.Hour, cfg.Catalog.ReloadInterval)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 1200*time.Millisecond, cfg.ToastTTL)
	assert.Equal(t, "vocabcards.db", cfg.Cards.DBPath)
	assert.Zero(t, cfg.Gesture.Threshold)
	assert.Zero(t, cfg.Cards.Gesture.Threshold)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("CATALOG_URL", "http://localhost:8080/data/vocab.json")
	t.Setenv("TOAST_TTL", "2s")
	t.Setenv("GESTURE_THRESHOLD", "80")
	t.Setenv("GESTURE_VERTICAL_TOLERANCE", "100")
	t.Setenv("CARDS_GESTURE_THRESHOLD", "4")
	t.Setenv("CARDS_GESTURE_MAX_OFFSET", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "http://localhost:8080/data/vocab.json", cfg.Catalog.URL)
	assert.Equal(t, 2*time.Second, cfg.ToastTTL)
	assert.Equal(t, float64(80), cfg.Gesture.Threshold)
	assert.Equal(t, float64(100), cfg.Gesture.VerticalTolerance)
	assert.Equal(t, float64(4), cfg.Cards.Gesture.Threshold)
	assert.Equal(t, float64(8), cfg.Cards.Gesture.MaxOffset)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CATALOG_FETCH_TIMEOUT", "soon")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestConfig_ValidateBot(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectedErr string
	}{
		{
			name: "all required fields",
			cfg: Config{
				BotToken:    "token",
				BotPassword: "password",
				Database:    DatabaseConfig{Password: "db"},
			},
		},
		{
			name:        "missing bot token",
			cfg:         Config{BotPassword: "password", Database: DatabaseConfig{Password: "db"}},
			expectedErr: "BOT_TOKEN",
		},
		{
			name:        "missing bot password",
			cfg:         Config{BotToken: "token", Database: DatabaseConfig{Password: "db"}},
			expectedErr: "BOT_PASSWORD",
		},
		{
			name:        "missing db password",
			cfg:         Config{BotToken: "token", BotPassword: "password"},
			expectedErr: "DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.ValidateBot()

			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestGestureConfig_Resolve(t *testing.T) {
	tests := []struct {
		name          string
		override      GestureConfig
		base          gesture.Config
		expected      gesture.Config
		expectedError bool
	}{
		{
			name:     "no overrides keeps base",
			base:     gesture.DefaultConfig(),
			expected: gesture.DefaultConfig(),
		},
		{
			name:     "overrides threshold",
			override: GestureConfig{Threshold: 80},
			base:     gesture.DefaultConfig(),
			expected: gesture.Config{
				HorizontalThreshold: 80,
				VerticalTolerance:   60,
				JitterThreshold:     6,
				MaxVisualOffset:     120,
			},
		},
		{
			name:     "overrides everything",
			override: GestureConfig{Threshold: 5, VerticalTolerance: 3, Jitter: 2, MaxOffset: 10},
			base:     gesture.TerminalConfig(),
			expected: gesture.Config{
				HorizontalThreshold: 5,
				VerticalTolerance:   3,
				JitterThreshold:     2,
				MaxVisualOffset:     10,
			},
		},
		{
			name:          "negative threshold",
			override:      GestureConfig{Threshold: -1},
			base:          gesture.DefaultConfig(),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.override.Resolve(tt.base)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
