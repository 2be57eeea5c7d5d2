// Package config loads application configuration from the environment, with
// viper supplying defaults and .env support for local development.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Recommend RecommendConfig `mapstructure:"recommend"`
}

// AppConfig identifies the running application
type AppConfig struct {
	Name     string `mapstructure:"name"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatasetConfig selects and configures the corpus source backend
type DatasetConfig struct {
	// Source is one of: file, http, s3, database
	Source      string        `mapstructure:"source"`
	Path        string        `mapstructure:"path"`
	URL         string        `mapstructure:"url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	S3Region    string        `mapstructure:"s3_region"`
	S3Bucket    string        `mapstructure:"s3_bucket"`
	S3Key       string        `mapstructure:"s3_key"`
}

// DatabaseConfig configures the recipe store used by the database dataset
// source and the seed command
type DatabaseConfig struct {
	// Driver is one of: postgres, sqlite
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
	// SQLitePath is the database file path when Driver is sqlite
	SQLitePath string `mapstructure:"sqlite_path"`
}

// RedisConfig configures the cache/rate-limit backend
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// URL overrides the host/port settings when set (production deployments)
	URL string `mapstructure:"url"`
}

// CacheConfig configures recommendation response caching
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig configures per-client request limiting
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// RecommendConfig carries the tunable recommendation parameters
type RecommendConfig struct {
	NonVegTerms []string `mapstructure:"non_veg_terms"`
}

// LoadConfig creates a new Config instance from the environment. A missing
// .env file is not an error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "smart-leftovers")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	viper.SetDefault("dataset.source", "file")
	viper.SetDefault("dataset.path", "train.json")
	viper.SetDefault("dataset.http_timeout", "30s")

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "smart_leftovers")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.sqlite_path", "smart_leftovers.db")

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("cache.ttl", "24h")

	viper.SetDefault("rate_limit.enabled", false)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	viper.SetDefault("recommend.non_veg_terms", []string{
		"chicken", "fish", "mutton", "beef", "egg", "bacon", "meat", "pork", "shrimp", "lamb",
	})
}

// ValidateConfig checks that the loaded configuration is usable
func ValidateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}

	switch cfg.Dataset.Source {
	case "file":
		if cfg.Dataset.Path == "" {
			return fmt.Errorf("dataset path is required for the file source")
		}
	case "http":
		if cfg.Dataset.URL == "" {
			return fmt.Errorf("dataset url is required for the http source")
		}
	case "s3":
		if cfg.Dataset.S3Bucket == "" || cfg.Dataset.S3Key == "" {
			return fmt.Errorf("dataset s3 bucket and key are required for the s3 source")
		}
	case "database":
		if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "sqlite" {
			return fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
		}
	default:
		return fmt.Errorf("unknown dataset source: %s", cfg.Dataset.Source)
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Requests <= 0 {
			return fmt.Errorf("invalid rate limit request count")
		}
		if cfg.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit window")
		}
	}

	return nil
}

// DSN builds the connection string for the configured database driver.
func (c DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}
