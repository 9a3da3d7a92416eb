package validate

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Linter checks the syntax of one source file. On failure it returns the
// tool's diagnostic text alongside the error.
type Linter interface {
	Lint(ctx context.Context, path string) (string, error)
}

// PHPLinter runs `php -l` on each file.
type PHPLinter struct {
	Binary  string
	Timeout time.Duration
}

func (l PHPLinter) Lint(ctx context.Context, path string) (string, error) {
	bin := l.Binary
	if bin == "" {
		bin = "php"
	}
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	// nosemgrep: go.lang.security.audit.dangerous-exec-command.dangerous-exec-command
	cmd := exec.CommandContext(ctx, bin, "-l", path)
	out, err := cmd.CombinedOutput()
	text := strings.TrimSpace(string(out))
	if err != nil {
		return text, fmt.Errorf("%s -l %s: %w", bin, path, err)
	}
	return text, nil
}
