package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken      string
	StorageDriver string `validate:"oneof=memory sqlite postgres"`
	SQLitePath    string
	Database      DatabaseConfig
	Gemini        GeminiConfig
	VocabCount    int           `validate:"min=1,max=12"`
	MismatchDelay time.Duration `validate:"min=0"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// GeminiConfig holds vocabulary generator settings. An empty APIKey means
// the built-in word tables are used.
type GeminiConfig struct {
	APIKey     string
	Model      string
	MaxRetries uint
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	vocabCount, err := getEnvInt("VOCAB_COUNT", 8)
	if err != nil {
		return nil, err
	}
	delayMS, err := getEnvInt("MISMATCH_DELAY_MS", 800)
	if err != nil {
		return nil, err
	}
	retries, err := getEnvInt("GEMINI_MAX_RETRIES", 2)
	if err != nil {
		return nil, err
	}
	if retries < 0 {
		return nil, fmt.Errorf("GEMINI_MAX_RETRIES cannot be negative")
	}

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath:    getEnv("SQLITE_PATH", "pandavocab.db"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "pandavocab"),
			User:     getEnv("DB_USER", "pandavocab"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Gemini: GeminiConfig{
			APIKey:     os.Getenv("GEMINI_API_KEY"),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			MaxRetries: uint(retries),
		},
		VocabCount:    vocabCount,
		MismatchDelay: time.Duration(delayMS) * time.Millisecond,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.StorageDriver == DriverPostgres && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// ValidateBot checks the settings only the Telegram bot needs
func (c *Config) ValidateBot() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
