package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	GinMode       string `mapstructure:"GIN_MODE"`

	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DataDir       string `mapstructure:"DATA_DIR"`
	DBSource      string `mapstructure:"DB_SOURCE"`

	GeocoderBaseURL   string        `mapstructure:"GEOCODER_BASE_URL"`
	GeocoderTimeout   time.Duration `mapstructure:"GEOCODER_TIMEOUT"`
	GeocoderCacheSize int           `mapstructure:"GEOCODER_CACHE_SIZE"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	SubmitRateLimit  int           `mapstructure:"SUBMIT_RATE_LIMIT"`
	SubmitRateWindow time.Duration `mapstructure:"SUBMIT_RATE_WINDOW"`

	RetroMode       bool          `mapstructure:"RETRO_MODE"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig reads app.env from path, lets environment variables override
// it, and validates the result. A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("STORAGE_DRIVER", StorageFile)
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("GEOCODER_BASE_URL", "https://api.zippopotam.us")
	v.SetDefault("GEOCODER_TIMEOUT", "5s")
	v.SetDefault("GEOCODER_CACHE_SIZE", 256)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SUBMIT_RATE_LIMIT", 10)
	v.SetDefault("SUBMIT_RATE_WINDOW", "1m")
	v.SetDefault("RETRO_MODE", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	config.StorageDriver = strings.ToLower(strings.TrimSpace(config.StorageDriver))
	return config, config.Validate()
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageFile:
		if c.DataDir == "" {
			return errors.New("config: DATA_DIR is required for the file storage driver")
		}
	case StorageMemory:
	case StoragePostgres:
		if c.DBSource == "" {
			return errors.New("config: DB_SOURCE is required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.GeocoderTimeout <= 0 {
		return errors.New("config: GEOCODER_TIMEOUT must be positive")
	}
	if c.SubmitRateLimit > 0 && c.SubmitRateWindow <= 0 {
		return errors.New("config: SUBMIT_RATE_WINDOW must be positive when SUBMIT_RATE_LIMIT is set")
	}
	if c.GeocoderCacheSize < 0 {
		return errors.New("config: GEOCODER_CACHE_SIZE must not be negative")
	}
	return nil
}
