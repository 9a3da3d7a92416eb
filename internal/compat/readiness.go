package compat

import (
	"context"

	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/internal/logging"
	"github.com/CosmoTheDev/cmsprobe/internal/probe"
	"github.com/CosmoTheDev/cmsprobe/internal/version"
	"go.uber.org/zap"
)

// readinessIniKeys are the php.ini directives echoed by the readiness check.
var readinessIniKeys = []string{
	"memory_limit",
	"max_execution_time",
	"upload_max_filesize",
	"post_max_size",
}

// IniValue is one php.ini directive.
type IniValue struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// ToolStatus is whether an external tool ran and what it printed.
type ToolStatus struct {
	Name      string `json:"name"      yaml:"name"`
	Available bool   `json:"available" yaml:"available"`
	Output    string `json:"output"    yaml:"output"`
}

// Readiness is the quick pre-install check of the runtime.
type Readiness struct {
	RuntimeVersion  string            `json:"runtime_version"  yaml:"runtime_version"`
	SAPI            string            `json:"sapi"             yaml:"sapi"`
	RequiredVersion string            `json:"required_version" yaml:"required_version"`
	VersionOK       bool              `json:"version_ok"       yaml:"version_ok"`
	Extensions      []ExtensionStatus `json:"extensions"       yaml:"extensions"`
	Missing         []string          `json:"missing"          yaml:"missing"`
	Composer        ToolStatus        `json:"composer"         yaml:"composer"`
	Ini             []IniValue        `json:"ini"              yaml:"ini"`
}

// Ready reports whether nothing needs fixing.
func (r *Readiness) Ready() bool {
	return r.VersionOK && len(r.Missing) == 0
}

// CheckReadiness probes the runtime for the setup extensions, the minimum
// version and a working composer.
func CheckReadiness(ctx context.Context, env probe.Environment, cfg *config.Config, logger *zap.Logger) *Readiness {
	logger = logging.OrNop(logger)
	required := cfg.Requirements.RuntimeVersion
	if required == "" {
		required = "8.3.0"
	}
	r := &Readiness{RequiredVersion: required}

	ver, err := env.RuntimeVersion(ctx)
	if err != nil {
		logger.Warn("PHP version probe failed", zap.Error(err))
	}
	r.RuntimeVersion = ver
	r.VersionOK = version.AtLeast(ver, required)

	if sapi, err := env.SAPI(ctx); err == nil {
		r.SAPI = sapi
	}

	names, err := env.Extensions(ctx)
	if err != nil {
		logger.Warn("PHP extension probe failed", zap.Error(err))
	}
	exts := NewExtensionSet(names)
	_, r.Missing, r.Extensions = evaluateSet(cfg.Requirements.SetupExtensions, exts.Has)

	composer := cfg.PHP.Composer
	if composer == "" {
		composer = "composer"
	}
	out, err := env.ToolVersion(ctx, composer)
	r.Composer = ToolStatus{Name: composer, Available: err == nil, Output: out}
	if err != nil {
		logger.Debug("composer not available", zap.Error(err))
	}

	for _, key := range readinessIniKeys {
		val, err := env.IniGet(ctx, key)
		if err != nil {
			logger.Warn("PHP ini probe failed", zap.String("key", key), zap.Error(err))
		}
		r.Ini = append(r.Ini, IniValue{Key: key, Value: val})
	}
	return r
}
