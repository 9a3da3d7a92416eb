package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultConfigDir  = ".cmsprobe"
	DefaultConfigFile = "config.json"
	EnvPrefix         = "CMSPROBE"
)

// Load reads the config file and returns a populated Config. A missing file is
// not an error; defaults apply. The configPath flag may override the default
// location.
func Load(configPath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(filepath.Join(home, DefaultConfigDir))
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isNotExist(err) {
			// Config file exists but is malformed.
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	expandPaths(&cfg, home)
	return &cfg, nil
}

// Save writes the config to disk as JSON.
func Save(cfg *Config, configPath string) error {
	path, err := Path(configPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("serialising config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Path returns the effective config file path.
func Path(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// DefaultExtensions is the required set scored by the compatibility report.
var DefaultExtensions = []Requirement{
	{"gd", "Image processing"},
	{"curl", "HTTP requests"},
	{"mbstring", "Multibyte strings"},
	{"openssl", "SSL/TLS support"},
	{"pdo", "Database abstraction"},
	{"pdo_mysql", "MySQL support"},
	{"pdo_sqlite", "SQLite support"},
	{"xml", "XML processing"},
	{"zip", "Archive handling"},
	{"fileinfo", "File type detection"},
	{"json", "JSON processing"},
	{"intl", "Internationalization"},
}

// DefaultSetupExtensions is the set checked by the quick readiness test.
var DefaultSetupExtensions = []Requirement{
	{"gd", "GD (Image processing)"},
	{"curl", "cURL (HTTP requests)"},
	{"mbstring", "Multibyte String"},
	{"openssl", "OpenSSL"},
	{"pdo", "PDO (Database)"},
	{"pdo_mysql", "PDO MySQL"},
	{"pdo_sqlite", "PDO SQLite"},
	{"xml", "XML"},
	{"zip", "ZIP"},
	{"fileinfo", "File Info"},
}

// setDefaults populates viper with out-of-the-box values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("php.binary", "php")
	v.SetDefault("php.composer", "composer")
	v.SetDefault("php.timeout", 10*time.Second)

	v.SetDefault("requirements.extensions", requirementMaps(DefaultExtensions))
	v.SetDefault("requirements.setup_extensions", requirementMaps(DefaultSetupExtensions))
	v.SetDefault("requirements.min_memory", "512M")
	v.SetDefault("requirements.min_execution_time", 120)
	v.SetDefault("requirements.runtime_version", "8.3.0")

	v.SetDefault("thresholds.os", 80.0)
	v.SetDefault("thresholds.runtime", 80.0)
	v.SetDefault("thresholds.filesystem", 100.0)
	v.SetDefault("thresholds.performance", 80.0)

	v.SetDefault("host.os_release_path", "/etc/os-release")
	v.SetDefault("host.temp_dir", "")
	v.SetDefault("host.server_software", "")

	v.SetDefault("database.mysql_dsn", "")
	v.SetDefault("database.sqlite_path", "")

	v.SetDefault("project.root", ".")
	v.SetDefault("project.syntax_files", []string{
		"umd/unilevelmlm.module",
		"umd/src/UmpClass.php",
		"umd/unilevelmlm.install",
	})
	v.SetDefault("project.config_files", []map[string]any{
		{"path": "umd/unilevelmlm.info.yml", "type": "yaml"},
		{"path": "umd/unilevelmlm.libraries.yml", "type": "yaml"},
		{"path": "umd/unilevelmlm.routing.yml", "type": "yaml"},
		{"path": "umd/drupal-cms/composer.json", "type": "json"},
	})
	v.SetDefault("project.dirs", []string{
		"umd",
		"umd/css",
		"umd/js",
		"umd/templates",
		"umd/src",
		"umd/config",
		"umd/drupal-cms",
	})
	v.SetDefault("project.readable_files", []string{
		"umd/unilevelmlm.module",
		"umd/unilevelmlm.info.yml",
		"umd/drupal-cms/composer.json",
	})
}

func requirementMaps(reqs []Requirement) []map[string]any {
	out := make([]map[string]any, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, map[string]any{"name": r.Name, "description": r.Description})
	}
	return out
}

// expandPaths resolves ~ in configured paths.
func expandPaths(cfg *Config, home string) {
	cfg.Host.TempDir = expandHome(cfg.Host.TempDir, home)
	cfg.Host.OSReleasePath = expandHome(cfg.Host.OSReleasePath, home)
	cfg.Database.SQLitePath = expandHome(cfg.Database.SQLitePath, home)
	cfg.Project.Root = expandHome(cfg.Project.Root, home)
}

func expandHome(path, home string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func isNotExist(err error) bool {
	return os.IsNotExist(err) || strings.Contains(err.Error(), "no such file")
}
