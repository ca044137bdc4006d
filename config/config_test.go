package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/skewgen/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Nil(t, cfg.Seed)
	assert.Equal(t, 10, cfg.Rows)
	assert.Zero(t, cfg.Rate)
	assert.Equal(t, "go-json", cfg.Codec)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, BackendEmbedded, cfg.Resources.Backend)
	assert.Empty(t, cfg.Fields)
}

func TestLoad_YAMLFields(t *testing.T) {
	path := writeConfig(t, "gen.yaml", `
seed: 42
rows: 5
rate: 50
codec: json
log:
  level: debug
  format: json
fields:
  - name: id
    kind: uuid
  - name: first
    kind: catalog
    resource: names.csv
    field: first
    skew: 2
  - name: user
    kind: key
    size: 100
    skew: 1.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, 5, cfg.Rows)
	assert.InDelta(t, 50.0, cfg.Rate, 0)
	assert.Equal(t, "json", cfg.Codec)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	fields := cfg.GeneratorFields()
	require.Len(t, fields, 3)
	assert.Equal(t, "id", fields[0].Name)
	assert.Equal(t, sampler.KindUUID, fields[0].Spec.Kind)

	assert.Equal(t, sampler.KindCatalog, fields[1].Spec.Kind)
	assert.Equal(t, "names.csv", fields[1].Spec.Resource)
	assert.Equal(t, "first", fields[1].Spec.Field)
	require.NotNil(t, fields[1].Spec.Skew)
	assert.InDelta(t, 2.0, *fields[1].Spec.Skew, 0)

	assert.Equal(t, 100, fields[2].Spec.Size)
	require.NotNil(t, fields[2].Spec.Skew)
	assert.InDelta(t, 1.5, *fields[2].Spec.Skew, 0)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "gen.yaml", "rows: 5\n")
	t.Setenv("SKEWGEN_ROWS", "7")
	t.Setenv("SKEWGEN_SEED", "3")
	t.Setenv("SKEWGEN_RESOURCES_BACKEND", "local")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Rows)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(3), *cfg.Seed)
	assert.Equal(t, BackendLocal, cfg.Resources.Backend)
}

func TestValidate_AfterOverride(t *testing.T) {
	t.Setenv("SKEWGEN_CODEC", "xml")

	cfg, err := Load(writeConfig(t, "gen.yaml", "rows: 1\n"))
	require.NoError(t, err)
	require.ErrorIs(t, cfg.Validate(), sampler.ErrConfiguration)

	cfg.Codec = "json"
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown codec", "codec: xml\n"},
		{"bad rows", "rows: -2\n"},
		{"negative rate", "rate: -1\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"unknown backend", "resources:\n  backend: ftp\n"},
		{"s3 without bucket", "resources:\n  backend: s3\n"},
		{"minio without endpoint", "resources:\n  backend: minio\n  bucket: data\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, "gen.yaml", tt.body))
			require.NoError(t, err)
			require.ErrorIs(t, cfg.Validate(), sampler.ErrConfiguration)
		})
	}
}

func TestLogConfig_Logger(t *testing.T) {
	l := LogConfig{Level: "warn", Format: "json"}.Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, l.Enabled(t.Context(), slog.LevelWarn))
}
