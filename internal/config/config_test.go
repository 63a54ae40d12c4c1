package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, StorageFile, cfg.StorageDriver)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "https://api.zippopotam.us", cfg.GeocoderBaseURL)
	assert.Equal(t, 5*time.Second, cfg.GeocoderTimeout)
	assert.Equal(t, 256, cfg.GeocoderCacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.SubmitRateLimit)
	assert.Equal(t, time.Minute, cfg.SubmitRateWindow)
	assert.False(t, cfg.RetroMode)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_ADDRESS=:9090\nSTORAGE_DRIVER=memory\nGEOCODER_TIMEOUT=2s\nRETRO_MODE=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

	t.Setenv("SERVER_ADDRESS", ":7070")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.ServerAddress, "environment overrides the file")
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 2*time.Second, cfg.GeocoderTimeout)
	assert.True(t, cfg.RetroMode)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{StorageDriver: StorageFile, DataDir: "./data", GeocoderTimeout: time.Second}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "redis" }, wantErr: true},
		{name: "file without dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: true},
		{name: "postgres without source", mutate: func(c *Config) { c.StorageDriver = StoragePostgres }, wantErr: true},
		{name: "postgres with source", mutate: func(c *Config) { c.StorageDriver = StoragePostgres; c.DBSource = "postgres://x" }},
		{name: "memory", mutate: func(c *Config) { c.StorageDriver = StorageMemory; c.DataDir = "" }},
		{name: "zero timeout", mutate: func(c *Config) { c.GeocoderTimeout = 0 }, wantErr: true},
		{name: "limit without window", mutate: func(c *Config) { c.SubmitRateLimit = 5 }, wantErr: true},
		{name: "limit with window", mutate: func(c *Config) { c.SubmitRateLimit = 5; c.SubmitRateWindow = time.Minute }},
		{name: "negative cache", mutate: func(c *Config) { c.GeocoderCacheSize = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
