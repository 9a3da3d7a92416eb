// Package probe queries the host: the PHP runtime, the OS release file and
// the web-server context.
package probe

import (
	"context"
	"errors"
)

var (
	// ErrRuntimeUnavailable is returned when the PHP binary cannot be run.
	ErrRuntimeUnavailable = errors.New("probe: php runtime unavailable")
	// ErrOSUndetectable is returned when the os-release file is missing.
	ErrOSUndetectable = errors.New("probe: cannot determine OS version")
	// ErrInvalidIniKey is returned for ini keys outside [a-z0-9_.].
	ErrInvalidIniKey = errors.New("probe: invalid ini key")
)

// Environment is everything the checks need to know about the host.
// PHPEnvironment is the real implementation; tests substitute fakes.
type Environment interface {
	// RuntimeVersion returns PHP_VERSION of the probed runtime.
	RuntimeVersion(ctx context.Context) (string, error)

	// SAPI returns the server API name the runtime was invoked through.
	SAPI(ctx context.Context) (string, error)

	// Extensions returns the lower-cased names of loaded extensions.
	Extensions(ctx context.Context) ([]string, error)

	// IniGet returns the configured value of a php.ini directive.
	IniGet(ctx context.Context, key string) (string, error)

	// ServerSoftware returns the web-server context, or "" when run from a CLI.
	ServerSoftware() string

	// OSRelease returns the parsed os-release descriptor.
	OSRelease() (OSRelease, error)

	// ToolVersion runs `<name> --version` and returns its output.
	ToolVersion(ctx context.Context, name string) (string, error)
}
