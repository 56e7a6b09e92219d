package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gompdf/resumepdf/internal/style"
	"github.com/gompdf/resumepdf/pkg/api"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resumepdf.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().PageSize, cfg.PageSize)

	key, err := cfg.Key()
	require.NoError(t, err)
	assert.Equal(t, style.Key{Family: style.Classical, Number: 1}, key)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
layout = "modern-2"
page_size = "letter"
log_level = "debug"
resource_paths = ["assets", "/abs/images"]

[padding]
top = 50

[styles.all.header]
color = "#0056d2"

[styles."modern-2".name]
font-size = 30
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "modern-2", cfg.Layout)
	assert.Equal(t, 50.0, cfg.Padding.Top)
	assert.Equal(t, Default().Padding.Bottom, cfg.Padding.Bottom)
	assert.Equal(t, []string{filepath.Join(filepath.Dir(path), "assets"), "/abs/images"}, cfg.ResourcePaths)

	key, err := cfg.Key()
	require.NoError(t, err)
	overrides := cfg.Overrides(key)
	require.Len(t, overrides, 2)
	assert.Equal(t, "#0056d2", overrides[0]["header"]["color"])
	assert.Equal(t, "30", overrides[1]["name"]["font-size"])
	assert.Len(t, cfg.Overrides(style.Key{Family: style.Simple, Number: 1}), 1)

	opts, err := cfg.Options(key, log.Default())
	require.NoError(t, err)
	assert.Equal(t, float64(api.PageSizeLetterWidth), opts.PageWidth)
	assert.Equal(t, 50.0, opts.PaddingTop)
	assert.Len(t, opts.StyleOverrides, 2)
	assert.Len(t, opts.ResourcePaths, 2)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	_, err := Load(writeConfig(t, `layuot = "modern-1"`))
	assert.ErrorContains(t, err, "layuot")

	_, err = Load(writeConfig(t, `layout = [`))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestOverrideWithEnv(t *testing.T) {
	env := map[string]string{
		"RESUMEPDF_LAYOUT":           "creative-4",
		"RESUMEPDF_PAGE_SIZE":        "legal",
		"RESUMEPDF_STRICT_RESOURCES": "true",
		"RESUMEPDF_RESOURCE_PATHS":   "a" + string(os.PathListSeparator) + "b",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, overrideWithEnv(cfg, lookup))
	assert.Equal(t, "creative-4", cfg.Layout)
	assert.Equal(t, "legal", cfg.PageSize)
	assert.True(t, cfg.StrictResources)
	assert.Equal(t, []string{"a", "b"}, cfg.ResourcePaths)

	env["RESUMEPDF_STRICT_RESOURCES"] = "maybe"
	assert.Error(t, overrideWithEnv(Default(), lookup))
}

func TestLoadUsesEnvironment(t *testing.T) {
	t.Setenv("RESUMEPDF_LAYOUT", "simple-3")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "simple-3", cfg.Layout)
}

func TestInvalidValues(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	_, err := cfg.Level()
	assert.Error(t, err)

	cfg = Default()
	cfg.PageSize = "tabloid"
	_, err = cfg.Options(style.Key{Family: style.Modern, Number: 1}, log.Default())
	assert.Error(t, err)

	cfg = Default()
	cfg.Padding.Left = 400
	cfg.Padding.Right = 400
	_, err = cfg.Options(style.Key{Family: style.Modern, Number: 1}, log.Default())
	assert.Error(t, err)
}
