// Package config loads application configuration from environment variables
// and an optional .env file using Viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/codepilot/codepilot/internal/logger"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// InferenceConfig holds settings for the Ollama text-generation endpoint.
// Temperature and NumCtx are the fixed generation options sent with every
// request; RequestTimeout bounds each blocking call and expiry is treated as
// an inference failure.
type InferenceConfig struct {
	Host           string
	Model          string
	Temperature    float64
	NumCtx         int
	RequestTimeout time.Duration
}

// CreditsConfig holds billing settings: the free grant handed to new
// accounts, the path of the purchasable package catalog, and the reconciler
// schedule for orphaned pending debits.
type CreditsConfig struct {
	SignupGrant       int
	CatalogPath       string
	ReconcileInterval time.Duration
	ReconcileGrace    time.Duration
	ReconcileParallel int
}

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig
	Database  DBConfig
	Inference InferenceConfig
	Credits   CreditsConfig
	Logging   logger.Config
}

// Load reads configuration from a .env file and environment variables, sets
// defaults, and validates required fields.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "5m")
	viper.SetDefault("SERVER_IDLE_TIMEOUT", "120s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")
	viper.SetDefault("SERVER_MAX_BODY_BYTES", 1<<20)

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "codepilot")
	viper.SetDefault("DB_NAME", "codepilot")
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("MODEL_NAME", "deepseek-coder:6.7b")
	viper.SetDefault("MODEL_TEMPERATURE", 0.2)
	viper.SetDefault("MODEL_NUM_CTX", 2048)
	viper.SetDefault("INFERENCE_TIMEOUT", "2m")

	viper.SetDefault("SIGNUP_CREDIT_GRANT", 20)
	viper.SetDefault("CREDIT_CATALOG_PATH", "credit-packages.yml")
	viper.SetDefault("RECONCILE_INTERVAL", "1m")
	viper.SetDefault("RECONCILE_GRACE", "10m")
	viper.SetDefault("RECONCILE_PARALLEL", 4)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")

	if err := viper.ReadInConfig(); err != nil {
		// Missing .env is fine; everything can come from the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	if viper.GetString("DB_PASSWORD") == "" {
		return nil, fmt.Errorf("DB_PASSWORD must be set")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			ReadTimeout:     viper.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    viper.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:     viper.GetDuration("SERVER_IDLE_TIMEOUT"),
			ShutdownTimeout: viper.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			MaxBodyBytes:    viper.GetInt64("SERVER_MAX_BODY_BYTES"),
		},
		Database: DBConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			Username:        viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Database:        viper.GetString("DB_NAME"),
			ConnMaxLifetime: viper.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: viper.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		},
		Inference: InferenceConfig{
			Host:           viper.GetString("OLLAMA_HOST"),
			Model:          viper.GetString("MODEL_NAME"),
			Temperature:    viper.GetFloat64("MODEL_TEMPERATURE"),
			NumCtx:         viper.GetInt("MODEL_NUM_CTX"),
			RequestTimeout: viper.GetDuration("INFERENCE_TIMEOUT"),
		},
		Credits: CreditsConfig{
			SignupGrant:       viper.GetInt("SIGNUP_CREDIT_GRANT"),
			CatalogPath:       viper.GetString("CREDIT_CATALOG_PATH"),
			ReconcileInterval: viper.GetDuration("RECONCILE_INTERVAL"),
			ReconcileGrace:    viper.GetDuration("RECONCILE_GRACE"),
			ReconcileParallel: viper.GetInt("RECONCILE_PARALLEL"),
		},
		Logging: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Inference.Model == "" {
		return fmt.Errorf("MODEL_NAME must not be empty")
	}
	if c.Inference.NumCtx <= 0 {
		return fmt.Errorf("MODEL_NUM_CTX must be positive, got %d", c.Inference.NumCtx)
	}
	if c.Inference.Temperature < 0 || c.Inference.Temperature > 2 {
		return fmt.Errorf("MODEL_TEMPERATURE out of range: %v", c.Inference.Temperature)
	}
	if c.Credits.SignupGrant < 0 {
		return fmt.Errorf("SIGNUP_CREDIT_GRANT must not be negative, got %d", c.Credits.SignupGrant)
	}
	if c.Credits.ReconcileGrace <= 0 {
		return fmt.Errorf("RECONCILE_GRACE must be positive")
	}
	return nil
}
