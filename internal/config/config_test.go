package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	assert.Equal(t, "php", cfg.PHP.Binary)
	assert.Equal(t, 10*time.Second, cfg.PHP.Timeout)
	require.Len(t, cfg.Requirements.Extensions, 12)
	assert.Equal(t, "gd", cfg.Requirements.Extensions[0].Name)
	assert.Equal(t, "intl", cfg.Requirements.Extensions[11].Name)
	assert.Len(t, cfg.Requirements.SetupExtensions, 10)
	assert.Equal(t, "512M", cfg.Requirements.MinMemory)
	assert.Equal(t, 120, cfg.Requirements.MinExecutionTime)
	assert.Equal(t, 80.0, cfg.Thresholds.OS)
	assert.Equal(t, 100.0, cfg.Thresholds.Filesystem)
	assert.Equal(t, "/etc/os-release", cfg.Host.OSReleasePath)
	require.Len(t, cfg.Project.ConfigFiles, 4)
	assert.Equal(t, "json", cfg.Project.ConfigFiles[3].Type)
	assert.Len(t, cfg.Project.Dirs, 7)
}

func TestLoadFileOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
  "php": {"binary": "/usr/bin/php8.3", "timeout": "3s"},
  "requirements": {"extensions": [{"name": "gd", "description": "Images"}]},
  "host": {"temp_dir": "~/scratch"}
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/bin/php8.3", cfg.PHP.Binary)
	assert.Equal(t, 3*time.Second, cfg.PHP.Timeout)
	require.Len(t, cfg.Requirements.Extensions, 1)
	assert.Equal(t, Requirement{Name: "gd", Description: "Images"}, cfg.Requirements.Extensions[0])
	assert.Equal(t, filepath.Join(home, "scratch"), cfg.Host.TempDir)
	// Untouched sections keep their defaults.
	assert.Equal(t, "512M", cfg.Requirements.MinMemory)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CMSPROBE_PHP_BINARY", "php-custom")
	t.Setenv("CMSPROBE_DATABASE_SQLITE_PATH", ":memory:")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, "php-custom", cfg.PHP.Binary)
	assert.Equal(t, ":memory:", cfg.Database.SQLitePath)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.PHP.Binary = "php8.3"
	require.NoError(t, Save(cfg, path))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "php8.3", again.PHP.Binary)
	assert.Equal(t, cfg.Requirements.Extensions, again.Requirements.Extensions)
}

func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p, err := Path("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DefaultConfigDir, DefaultConfigFile), p)

	p, err = Path("/tmp/x.json")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.json", p)
}
