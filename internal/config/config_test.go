package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/Lumos-Labs-HQ/sampleset/internal/errors"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Count(schema.Product))
	assert.Equal(t, 3000, cfg.Count(schema.Order))
	assert.Equal(t, 5000, cfg.Count(schema.OrderLine))
	assert.Equal(t, 10, cfg.Count(schema.Role))
	assert.Equal(t, "Generated", cfg.Writers.Target)
	assert.True(t, cfg.Writers.JSON)
	assert.False(t, cfg.Writers.SQLiteDB)
	assert.Equal(t, Dialects, cfg.Writers.Dialects)
	assert.Equal(t, "DATABASE_URL", cfg.Database.URLEnv)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sampleset.config.json")
	body := `{"counts": {"product": 3, "order_line": 5}, "writers": {"target": "out", "xml": false, "dialects": ["postgres"]}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Count(schema.Product))
	assert.Equal(t, 5, cfg.Count(schema.OrderLine))
	assert.Equal(t, 1000, cfg.Count(schema.Customer), "unset keys keep defaults")
	assert.Equal(t, "out", cfg.Writers.Target)
	assert.False(t, cfg.Writers.XML)
	assert.True(t, cfg.Writers.JSON)
	assert.Equal(t, []string{"postgres"}, cfg.Writers.Dialects)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.Counts.User = -1 }},
		{"empty target", func(c *Config) { c.Writers.Target = "" }},
		{"unknown dialect", func(c *Config) { c.Writers.Dialects = []string{"oracle"} }},
		{"nested release", func(c *Config) { c.Release = "a/b" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), apperrors.ErrInvalidConfiguration)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestWithCountDoesNotMutate(t *testing.T) {
	base := Default()
	changed := base.WithCount(schema.Role, 5)

	assert.Equal(t, 10, base.Count(schema.Role))
	assert.Equal(t, 5, changed.Count(schema.Role))

	changed.Writers.Dialects[0] = "x"
	assert.Equal(t, DialectSQLite, base.Writers.Dialects[0])
}

func TestOutputDir(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "Generated", cfg.OutputDir())

	cfg.Release = "v2"
	assert.Equal(t, filepath.Join("Generated", "v2"), cfg.OutputDir())
}

func TestCanonicalDialect(t *testing.T) {
	for in, want := range map[string]string{
		"sqlite3":    DialectSQLite,
		"MySQL":      DialectMySQL,
		"sqlserver":  DialectMSSQL,
		"postgresql": DialectPostgres,
	} {
		got, ok := CanonicalDialect(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got)
	}

	_, ok := CanonicalDialect("oracle")
	assert.False(t, ok)
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := Default()
	cfg.Database.URLEnv = "SAMPLESET_TEST_DB_URL"

	_, err := cfg.GetDatabaseURL()
	assert.ErrorIs(t, err, apperrors.ErrInvalidConfiguration)

	t.Setenv("SAMPLESET_TEST_DB_URL", "sqlite://x.db")
	url, err := cfg.GetDatabaseURL()
	require.NoError(t, err)
	assert.Equal(t, "sqlite://x.db", url)
}
