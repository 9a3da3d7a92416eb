package config

import "time"

// Config is the root configuration structure for cmsprobe.
// Serialised to ~/.cmsprobe/config.json.
type Config struct {
	PHP          PHPConfig          `mapstructure:"php"          json:"php"`
	Requirements RequirementsConfig `mapstructure:"requirements" json:"requirements"`
	Thresholds   ThresholdsConfig   `mapstructure:"thresholds"   json:"thresholds"`
	Host         HostConfig         `mapstructure:"host"         json:"host"`
	Database     DatabaseConfig     `mapstructure:"database"     json:"database"`
	Project      ProjectConfig      `mapstructure:"project"      json:"project"`
}

// PHPConfig controls how the PHP runtime is queried.
type PHPConfig struct {
	// Binary is the php CLI to probe (looked up in PATH when not absolute).
	Binary string `mapstructure:"binary"   json:"binary"`
	// Composer is the composer executable checked by `setup`.
	Composer string `mapstructure:"composer" json:"composer"`
	// Timeout bounds every single php invocation.
	Timeout time.Duration `mapstructure:"timeout"  json:"timeout"`
}

// Requirement is a named runtime capability with a human description.
type Requirement struct {
	Name        string `mapstructure:"name"        json:"name"`
	Description string `mapstructure:"description" json:"description"`
}

// RequirementsConfig lists what the target CMS needs from the host.
type RequirementsConfig struct {
	// Extensions is the ordered required set scored by `doctor`.
	Extensions []Requirement `mapstructure:"extensions"         json:"extensions"`
	// SetupExtensions is the shorter set checked by `setup`.
	SetupExtensions []Requirement `mapstructure:"setup_extensions"   json:"setup_extensions"`
	// MinMemory is a php.ini shorthand value, e.g. "512M".
	MinMemory string `mapstructure:"min_memory"         json:"min_memory"`
	// MinExecutionTime is in seconds; 0 in php.ini means unlimited.
	MinExecutionTime int `mapstructure:"min_execution_time" json:"min_execution_time"`
	// RuntimeVersion is the minimum PHP version `setup` accepts.
	RuntimeVersion string `mapstructure:"runtime_version"    json:"runtime_version"`
}

// ThresholdsConfig holds the score below which a remediation hint is emitted.
type ThresholdsConfig struct {
	OS          float64 `mapstructure:"os"          json:"os"`
	Runtime     float64 `mapstructure:"runtime"     json:"runtime"`
	Filesystem  float64 `mapstructure:"filesystem"  json:"filesystem"`
	Performance float64 `mapstructure:"performance" json:"performance"`
}

// HostConfig points the probes at host resources.
type HostConfig struct {
	OSReleasePath string `mapstructure:"os_release_path" json:"os_release_path"`
	// TempDir is where the file-system probe writes; empty means os.TempDir().
	TempDir string `mapstructure:"temp_dir"        json:"temp_dir"`
	// ServerSoftware overrides the SERVER_SOFTWARE environment variable.
	ServerSoftware string `mapstructure:"server_software" json:"server_software"`
}

// DatabaseConfig enables optional live connectivity probes.
type DatabaseConfig struct {
	// MySQLDSN is a go-sql-driver/mysql DSN; empty skips the probe.
	MySQLDSN string `mapstructure:"mysql_dsn"   json:"mysql_dsn"`
	// SQLitePath is a database file (or ":memory:"); empty skips the probe.
	SQLitePath string `mapstructure:"sqlite_path" json:"sqlite_path"`
}

// ConfigFile is a project configuration file and the format it must parse as.
type ConfigFile struct {
	Path string `mapstructure:"path" json:"path"`
	// Type is "json" or "yaml".
	Type string `mapstructure:"type" json:"type"`
}

// ProjectConfig is the manifest checked by `validate`. Paths are relative to
// Root and may be doublestar globs.
type ProjectConfig struct {
	Root          string       `mapstructure:"root"           json:"root"`
	SyntaxFiles   []string     `mapstructure:"syntax_files"   json:"syntax_files"`
	ConfigFiles   []ConfigFile `mapstructure:"config_files"   json:"config_files"`
	Dirs          []string     `mapstructure:"dirs"           json:"dirs"`
	ReadableFiles []string     `mapstructure:"readable_files" json:"readable_files"`
}
