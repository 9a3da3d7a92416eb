package probe

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/internal/logging"
	"go.uber.org/zap"
)

var iniKeyRe = regexp.MustCompile(`^[a-z0-9_.]+$`)

// PHPEnvironment implements Environment by invoking the php CLI.
type PHPEnvironment struct {
	binary         string
	timeout        time.Duration
	osReleasePath  string
	serverSoftware string
	logger         *zap.Logger
}

// NewPHPEnvironment builds an Environment from the php and host config.
func NewPHPEnvironment(php config.PHPConfig, host config.HostConfig, logger *zap.Logger) *PHPEnvironment {
	binary := php.Binary
	if binary == "" {
		binary = "php"
	}
	timeout := php.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PHPEnvironment{
		binary:         binary,
		timeout:        timeout,
		osReleasePath:  host.OSReleasePath,
		serverSoftware: host.ServerSoftware,
		logger:         logging.OrNop(logger),
	}
}

func (p *PHPEnvironment) RuntimeVersion(ctx context.Context) (string, error) {
	return p.eval(ctx, "echo PHP_VERSION;")
}

func (p *PHPEnvironment) SAPI(ctx context.Context) (string, error) {
	return p.eval(ctx, "echo PHP_SAPI;")
}

func (p *PHPEnvironment) Extensions(ctx context.Context) ([]string, error) {
	out, err := p.run(ctx, "-m")
	if err != nil {
		return nil, err
	}
	return ParseModules(out), nil
}

func (p *PHPEnvironment) IniGet(ctx context.Context, key string) (string, error) {
	if !iniKeyRe.MatchString(key) {
		return "", fmt.Errorf("%w %q", ErrInvalidIniKey, key)
	}
	return p.eval(ctx, fmt.Sprintf("echo ini_get('%s');", key))
}

func (p *PHPEnvironment) ServerSoftware() string {
	if p.serverSoftware != "" {
		return p.serverSoftware
	}
	return os.Getenv("SERVER_SOFTWARE")
}

func (p *PHPEnvironment) OSRelease() (OSRelease, error) {
	path := p.osReleasePath
	if path == "" {
		path = "/etc/os-release"
	}
	return ReadOSRelease(path)
}

func (p *PHPEnvironment) ToolVersion(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	// nosemgrep: go.lang.security.audit.dangerous-exec-command.dangerous-exec-command
	cmd := exec.CommandContext(ctx, name, "--version")
	out, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		return text, fmt.Errorf("running %s --version: %w", name, err)
	}
	return text, nil
}

func (p *PHPEnvironment) eval(ctx context.Context, code string) (string, error) {
	out, err := p.run(ctx, "-r", code)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (p *PHPEnvironment) run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.logger.Debug("Invoking php", zap.String("binary", p.binary), zap.Strings("args", args))

	var stderr bytes.Buffer
	// nosemgrep: go.lang.security.audit.dangerous-exec-command.dangerous-exec-command
	cmd := exec.CommandContext(ctx, p.binary, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("%w: %s %s: %s", ErrRuntimeUnavailable, p.binary, strings.Join(args, " "), msg)
	}
	return out, nil
}

// ParseModules extracts module names from `php -m` output, skipping the
// "[PHP Modules]" and "[Zend Modules]" headers. Names are lower-cased since
// extension lookups in PHP are case-insensitive.
func ParseModules(out []byte) []string {
	var mods []string
	seen := make(map[string]bool)
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		name := strings.ToLower(line)
		if seen[name] {
			continue
		}
		seen[name] = true
		mods = append(mods, name)
	}
	return mods
}
