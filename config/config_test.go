package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Port: 8080},
		Dataset: DatasetConfig{Source: "file", Path: "train.json"},
	}
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, ValidateConfig(validConfig()))
}

func TestValidateConfigRequiresPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigDatasetSources(t *testing.T) {
	tests := []struct {
		name    string
		dataset DatasetConfig
		wantErr bool
	}{
		{"file without path", DatasetConfig{Source: "file"}, true},
		{"http with url", DatasetConfig{Source: "http", URL: "http://example.com/train.json"}, false},
		{"http without url", DatasetConfig{Source: "http"}, true},
		{"s3 with bucket and key", DatasetConfig{Source: "s3", S3Bucket: "corpus", S3Key: "train.json"}, false},
		{"s3 without key", DatasetConfig{Source: "s3", S3Bucket: "corpus"}, true},
		{"unknown source", DatasetConfig{Source: "carrier-pigeon"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Dataset = tt.dataset
			err := ValidateConfig(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateConfigDatabaseDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Dataset = DatasetConfig{Source: "database"}
	cfg.Database = DatabaseConfig{Driver: "sqlite"}
	assert.NoError(t, ValidateConfig(cfg))

	cfg.Database = DatabaseConfig{Driver: "mongodb"}
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfigRateLimit(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit = RateLimitConfig{Enabled: true, Requests: 0, Window: time.Minute}
	assert.Error(t, ValidateConfig(cfg))

	cfg.RateLimit = RateLimitConfig{Enabled: true, Requests: 100, Window: 0}
	assert.Error(t, ValidateConfig(cfg))

	cfg.RateLimit = RateLimitConfig{Enabled: true, Requests: 100, Window: time.Minute}
	assert.NoError(t, ValidateConfig(cfg))
}

func TestDatabaseDSN(t *testing.T) {
	pg := DatabaseConfig{
		Driver: "postgres", Host: "db", Port: "5432", User: "app",
		Password: "secret", Name: "leftovers", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=leftovers sslmode=disable", pg.DSN())

	lite := DatabaseConfig{Driver: "sqlite", SQLitePath: "corpus.db"}
	assert.Equal(t, "corpus.db", lite.DSN())
}
