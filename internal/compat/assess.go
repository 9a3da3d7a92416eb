package compat

import (
	"context"
	"time"

	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/internal/logging"
	"github.com/CosmoTheDev/cmsprobe/internal/probe"
	"github.com/CosmoTheDev/cmsprobe/models"
	"go.uber.org/zap"
)

// Facts are the raw observations behind the checks, kept for the report.
type Facts struct {
	OS               probe.OSRelease   `json:"os"                 yaml:"os"`
	OSDetected       bool              `json:"os_detected"        yaml:"os_detected"`
	RuntimeVersion   string            `json:"runtime_version"    yaml:"runtime_version"`
	Extensions       []ExtensionStatus `json:"extensions"         yaml:"extensions"`
	Missing          []string          `json:"missing_extensions" yaml:"missing_extensions"`
	ServerSoftware   string            `json:"server_software"    yaml:"server_software"`
	Drivers          []string          `json:"database_drivers"   yaml:"database_drivers"`
	MemoryLimit      string            `json:"memory_limit"       yaml:"memory_limit"`
	MaxExecutionTime string            `json:"max_execution_time" yaml:"max_execution_time"`
	TempDir          string            `json:"temp_dir"           yaml:"temp_dir"`
}

// Assessment is the full result of one compatibility run.
type Assessment struct {
	Facts        Facts               `json:"facts"                  yaml:"facts"`
	Checks       []models.Check      `json:"checks"                 yaml:"checks"`
	Summary      Summary             `json:"summary"                yaml:"summary"`
	Hints        []models.Hint       `json:"hints"                  yaml:"hints"`
	Connectivity []models.Connection `json:"connectivity,omitempty" yaml:"connectivity,omitempty"`
	CompletedAt  time.Time           `json:"completed_at"           yaml:"completed_at"`
}

// ChecksFor returns the checks of one category in run order.
func (a *Assessment) ChecksFor(c models.Category) []models.Check {
	var out []models.Check
	for _, ch := range a.Checks {
		if ch.Category == c {
			out = append(out, ch)
		}
	}
	return out
}

// Assessor runs the check sequence against an Environment.
type Assessor struct {
	env        probe.Environment
	req        config.RequirementsConfig
	thresholds config.ThresholdsConfig
	tempDir    string
	logger     *zap.Logger
	now        func() time.Time
}

// NewAssessor wires an Assessor from the loaded config.
func NewAssessor(env probe.Environment, cfg *config.Config, logger *zap.Logger) *Assessor {
	return &Assessor{
		env:        env,
		req:        cfg.Requirements,
		thresholds: cfg.Thresholds,
		tempDir:    cfg.Host.TempDir,
		logger:     logging.OrNop(logger),
		now:        time.Now,
	}
}

// Run executes every check in order. Probe failures score 0 and are logged;
// they never abort the remaining checks.
func (a *Assessor) Run(ctx context.Context) *Assessment {
	var facts Facts
	var checks []models.Check

	rel, err := a.env.OSRelease()
	if err != nil {
		a.logger.Warn("OS detection failed", zap.Error(err))
	} else {
		facts.OS = rel
		facts.OSDetected = true
	}
	checks = append(checks, OSCheck(rel, err))

	ver, err := a.env.RuntimeVersion(ctx)
	if err != nil {
		a.logger.Warn("PHP version probe failed", zap.Error(err))
	}
	facts.RuntimeVersion = ver
	checks = append(checks, RuntimeCheck(ver, err))

	names, extErr := a.env.Extensions(ctx)
	if extErr != nil {
		a.logger.Warn("PHP extension probe failed", zap.Error(extErr))
	}
	exts := NewExtensionSet(names)
	score, missing, statuses := evaluateSet(a.req.Extensions, exts.Has)
	facts.Extensions = statuses
	facts.Missing = missing
	checks = append(checks, ExtensionCheck(score, missing, extErr))

	facts.ServerSoftware = a.env.ServerSoftware()
	if facts.ServerSoftware == "" {
		facts.ServerSoftware = CLIServer
	}
	checks = append(checks, ServerCheck(facts.ServerSoftware))

	dbChecks := DatabaseChecks(exts)
	for _, c := range dbChecks {
		if c.Passed() {
			facts.Drivers = append(facts.Drivers, c.Name)
		}
	}
	checks = append(checks, dbChecks...)

	facts.TempDir = a.tempDir
	fsChecks := ProbeFilesystem(a.tempDir)
	for _, c := range fsChecks {
		if !c.Passed() {
			a.logger.Warn("File system probe failed", zap.String("probe", c.Name), zap.String("error", c.Error))
		}
	}
	checks = append(checks, fsChecks...)

	mem, memErr := a.env.IniGet(ctx, "memory_limit")
	exe, exeErr := a.env.IniGet(ctx, "max_execution_time")
	if memErr != nil {
		a.logger.Warn("PHP ini probe failed", zap.String("key", "memory_limit"), zap.Error(memErr))
	}
	if exeErr != nil {
		a.logger.Warn("PHP ini probe failed", zap.String("key", "max_execution_time"), zap.Error(exeErr))
	}
	facts.MemoryLimit, facts.MaxExecutionTime = mem, exe
	checks = append(checks, PerformanceChecks(mem, memErr, exe, exeErr, a.req.MinMemory, a.req.MinExecutionTime)...)

	for _, c := range checks {
		a.logger.Debug("Check complete",
			zap.String("name", c.Name),
			zap.String("category", c.Category.String()),
			zap.Float64("score", c.Score),
		)
	}

	summary := Summarize(checks)
	return &Assessment{
		Facts:       facts,
		Checks:      checks,
		Summary:     summary,
		Hints:       Hints(summary, missing, a.thresholds),
		CompletedAt: a.now(),
	}
}
