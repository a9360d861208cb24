package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "file", cfg.WaitlistBackend)
	assert.Equal(t, "data/waitlist.json", cfg.WaitlistPath())
	assert.Equal(t, time.Duration(0), cfg.ProductDelay)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())
	assert.Zero(t, cfg.WaitlistRateLimit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("PRODUCT_DELAY", "500ms")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 500*time.Millisecond, cfg.ProductDelay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "file backend", cfg: Config{WaitlistBackend: "file"}},
		{name: "postgres without host", cfg: Config{WaitlistBackend: "postgres"}, wantErr: true},
		{name: "postgres complete", cfg: Config{WaitlistBackend: "postgres", DBHost: "db", DBUser: "u", DBName: "n"}},
		{name: "unknown backend", cfg: Config{WaitlistBackend: "redis"}, wantErr: true},
		{name: "uploads without s3", cfg: Config{WaitlistBackend: "file", ScanUploadsEnabled: true}, wantErr: true},
		{name: "backup without s3", cfg: Config{WaitlistBackend: "file", BackupCron: "@daily"}, wantErr: true},
		{
			name: "backup with s3",
			cfg: Config{
				WaitlistBackend: "file", BackupCron: "@daily",
				S3Endpoint: "http://s3", S3Bucket: "b", S3Key: "k", S3Secret: "s",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDSN(t *testing.T) {
	cfg := Config{DBHost: "localhost", DBUser: "tox", DBPassword: "pw", DBName: "toxiscope", DBPort: 5432}
	assert.Equal(t, "host=localhost user=tox password=pw dbname=toxiscope port=5432 sslmode=disable", cfg.DSN())
}
