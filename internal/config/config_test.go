package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
rotation:
  pattern: "/var/log/myapp/*.log"
  maxSizeBytes: 104857600
  compression: gzip
  timestampFormat: "20060102_150405"
  onCollision: sequence
retention:
  directory: "/var/log/myapp"
  maxAge: 720h
  backupCount: 10
logging:
  level: info
  format: text
dryRun: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/log/myapp/*.log", cfg.Rotation.Pattern)
	assert.Equal(t, int64(104857600), cfg.Rotation.MaxSizeBytes)
	assert.Equal(t, "gzip", cfg.Rotation.Compression)
	assert.Equal(t, "sequence", cfg.Rotation.OnCollision)
	assert.Equal(t, 720*time.Hour, cfg.Retention.MaxAge.Std())
	assert.Equal(t, 10, cfg.Retention.BackupCount)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.DryRun)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("LOG_DIR", "/srv/logs")

	path := writeConfig(t, `
rotation:
  pattern: "$(LOG_DIR)/*.log"
  maxSizeBytes: 1048576
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/logs/*.log", cfg.Rotation.Pattern)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing pattern",
			content: `
rotation:
  maxSizeBytes: 1048576
`,
		},
		{
			name: "non-positive max size",
			content: `
rotation:
  pattern: "*.log"
  maxSizeBytes: 0
`,
		},
		{
			name: "negative backup count",
			content: `
rotation:
  pattern: "*.log"
  maxSizeBytes: 1048576
retention:
  backupCount: -1
`,
		},
		{
			name: "bad duration",
			content: `
rotation:
  pattern: "*.log"
  maxSizeBytes: 1048576
retention:
  maxAge: soon
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
