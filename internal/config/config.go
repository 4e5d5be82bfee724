package config

import (
	"fmt"
	"time"

	"vocabcards/internal/gesture"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken      string `env:"BOT_TOKEN"`
	BotPassword   string `env:"BOT_PASSWORD"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	Database DatabaseConfig
	Catalog  CatalogConfig
	Server   ServerConfig
	Cards    CardsConfig

	// ToastTTL is how long transient notifications stay visible
	ToastTTL time.Duration `env:"TOAST_TTL" envDefault:"1200ms"`

	Gesture GestureConfig `envPrefix:"GESTURE_"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"vocabcards"`
	User     string `env:"DB_USER" envDefault:"vocabcards"`
	Password string `env:"DB_PASSWORD"`
}

// CatalogConfig says where the vocabulary data comes from
type CatalogConfig struct {
	Path           string        `env:"CATALOG_PATH" envDefault:"data/vocab.json"`
	URL            string        `env:"CATALOG_URL"`
	FetchTimeout   time.Duration `env:"CATALOG_FETCH_TIMEOUT" envDefault:"10s"`
	ReloadInterval time.Duration `env:"CATALOG_RELOAD_INTERVAL" envDefault:"1h"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr   string `env:"HTTP_ADDR" envDefault:":8080"`
	WebDir string `env:"WEB_DIR"`
}

// CardsConfig holds terminal UI settings
type CardsConfig struct {
	DBPath  string        `env:"CARDS_DB_PATH" envDefault:"vocabcards.db"`
	LogPath string        `env:"CARDS_LOG_PATH" envDefault:"vocabcards.log"`
	Gesture GestureConfig `envPrefix:"CARDS_GESTURE_"`
}

// GestureConfig holds swipe distances; zero values fall back to the
// interpreter defaults for the front end
type GestureConfig struct {
	Threshold         float64 `env:"THRESHOLD"`
	VerticalTolerance float64 `env:"VERTICAL_TOLERANCE"`
	Jitter            float64 `env:"JITTER"`
	MaxOffset         float64 `env:"MAX_OFFSET"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// ValidateBot checks the fields the Telegram bot cannot run without
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.BotPassword == "" {
		return fmt.Errorf("BOT_PASSWORD is required")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// Resolve overlays the configured values on base
func (g GestureConfig) Resolve(base gesture.Config) (gesture.Config, error) {
	if g.Threshold != 0 {
		base.HorizontalThreshold = g.Threshold
	}
	if g.VerticalTolerance != 0 {
		base.VerticalTolerance = g.VerticalTolerance
	}
	if g.Jitter != 0 {
		base.JitterThreshold = g.Jitter
	}
	if g.MaxOffset != 0 {
		base.MaxVisualOffset = g.MaxOffset
	}
	if err := base.Validate(); err != nil {
		return gesture.Config{}, fmt.Errorf("gesture config: %w", err)
	}
	return base, nil
}
