// Package validate checks a project checkout: source syntax, configuration
// files, required directories and file accessibility.
package validate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/internal/logging"
	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"
)

// Kind names one group of validator checks.
type Kind string

const (
	KindSyntax     Kind = "syntax"
	KindConfig     Kind = "configuration"
	KindStructure  Kind = "structure"
	KindPermission Kind = "permission"
)

// Item is the outcome for one path.
type Item struct {
	Path   string `json:"path"             yaml:"path"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	OK     bool   `json:"ok"               yaml:"ok"`
	// Label is the short verdict printed after the path, e.g. "PASS".
	Label  string `json:"label"            yaml:"label"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Section is one numbered block of the validation report.
type Section struct {
	Kind  Kind   `json:"kind"  yaml:"kind"`
	Title string `json:"title" yaml:"title"`
	Items []Item `json:"items" yaml:"items"`
}

// Errors counts the failed items.
func (s Section) Errors() int {
	n := 0
	for _, it := range s.Items {
		if !it.OK {
			n++
		}
	}
	return n
}

// Result is the aggregate of all sections.
type Result struct {
	Root     string    `json:"root"     yaml:"root"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Errors returns the failure count for one kind.
func (r Result) Errors(kind Kind) int {
	for _, s := range r.Sections {
		if s.Kind == kind {
			return s.Errors()
		}
	}
	return 0
}

// Total returns the failure count across all sections.
func (r Result) Total() int {
	n := 0
	for _, s := range r.Sections {
		n += s.Errors()
	}
	return n
}

// ExitCode is 0 when nothing failed and 1 otherwise.
func (r Result) ExitCode() int {
	if r.Total() == 0 {
		return 0
	}
	return 1
}

// ManifestFromConfig converts the project config into a Manifest.
func ManifestFromConfig(p config.ProjectConfig) Manifest {
	return Manifest{
		SyntaxFiles:   p.SyntaxFiles,
		ConfigFiles:   p.ConfigFiles,
		Dirs:          p.Dirs,
		ReadableFiles: p.ReadableFiles,
	}
}

// Manifest lists what to check. Entries are relative to the validator root
// and may be doublestar globs.
type Manifest struct {
	SyntaxFiles   []string
	ConfigFiles   []config.ConfigFile
	Dirs          []string
	ReadableFiles []string
}

// Validator runs a Manifest against a project root.
type Validator struct {
	root   string
	linter Linter
	logger *zap.Logger
}

// New returns a Validator rooted at root.
func New(root string, linter Linter, logger *zap.Logger) *Validator {
	if root == "" {
		root = "."
	}
	return &Validator{root: root, linter: linter, logger: logging.OrNop(logger)}
}

// Run executes all four sections in order.
func (v *Validator) Run(ctx context.Context, m Manifest) Result {
	res := Result{Root: v.root}

	res.Sections = append(res.Sections, v.section(KindSyntax, "PHP Syntax Checks", m.SyntaxFiles, func(rel string) Item {
		return v.checkSyntax(ctx, rel)
	}))

	cfgSection := Section{Kind: KindConfig, Title: "Configuration File Validation"}
	for _, cf := range m.ConfigFiles {
		format := strings.ToLower(cf.Type)
		for _, rel := range v.expand(cf.Path) {
			cfgSection.Items = append(cfgSection.Items, v.checkConfig(rel, format))
		}
	}
	res.Sections = append(res.Sections, cfgSection)

	res.Sections = append(res.Sections, v.section(KindStructure, "Directory Structure Check", m.Dirs, v.checkDir))
	res.Sections = append(res.Sections, v.section(KindPermission, "File Accessibility Check", m.ReadableFiles, v.checkReadable))

	for _, s := range res.Sections {
		v.logger.Debug("Validation section complete",
			zap.String("kind", string(s.Kind)),
			zap.Int("items", len(s.Items)),
			zap.Int("errors", s.Errors()),
		)
	}
	return res
}

func (v *Validator) section(kind Kind, title string, patterns []string, check func(rel string) Item) Section {
	s := Section{Kind: kind, Title: title}
	for _, p := range patterns {
		for _, rel := range v.expand(p) {
			s.Items = append(s.Items, check(rel))
		}
	}
	return s
}

// expand resolves a manifest entry. Literal paths pass through unchanged; a
// glob that matches nothing is kept as-is so it reports as not found.
func (v *Validator) expand(pattern string) []string {
	pattern = filepath.ToSlash(pattern)
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}
	}
	matches, err := doublestar.Glob(os.DirFS(v.root), pattern)
	if err != nil {
		v.logger.Warn("Invalid glob in manifest", zap.String("pattern", pattern), zap.Error(err))
		return []string{pattern}
	}
	if len(matches) == 0 {
		return []string{pattern}
	}
	return matches
}

func (v *Validator) abs(rel string) string {
	return filepath.Join(v.root, filepath.FromSlash(rel))
}

func (v *Validator) checkSyntax(ctx context.Context, rel string) Item {
	it := Item{Path: rel}
	info, err := os.Stat(v.abs(rel))
	if err != nil || info.IsDir() {
		it.Label = "FILE NOT FOUND"
		return it
	}
	out, err := v.linter.Lint(ctx, v.abs(rel))
	if err != nil {
		it.Label = "FAIL"
		it.Detail = out
		if it.Detail == "" {
			it.Detail = err.Error()
		}
		v.logger.Warn("Syntax check failed", zap.String("file", rel), zap.Error(err))
		return it
	}
	it.OK = true
	it.Label = "PASS"
	return it
}

func (v *Validator) checkConfig(rel, format string) Item {
	it := Item{Path: rel, Format: strings.ToUpper(format)}
	data, err := os.ReadFile(v.abs(rel))
	if err != nil {
		it.Label = "FILE NOT FOUND"
		if !errors.Is(err, fs.ErrNotExist) {
			it.Label = "FAIL"
			it.Detail = err.Error()
		}
		return it
	}

	switch format {
	case "json":
		err = checkJSON(data)
	case "yaml", "yml":
		err = checkYAML(data)
	default:
		err = fmt.Errorf("unsupported config type %q", format)
	}
	if err != nil {
		it.Label = "FAIL"
		it.Detail = err.Error()
		return it
	}
	it.OK = true
	it.Label = "PASS"
	return it
}

func checkJSON(data []byte) error {
	var v any
	return json.Unmarshal(data, &v)
}

// checkYAML requires a well-formed document whose top level is a mapping.
func checkYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return errors.New("empty YAML document")
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return errors.New("invalid YAML structure: top level is not a mapping")
	}
	return nil
}

func (v *Validator) checkDir(rel string) Item {
	it := Item{Path: rel}
	info, err := os.Stat(v.abs(rel))
	if err != nil || !info.IsDir() {
		it.Label = "MISSING"
		return it
	}
	it.OK = true
	it.Label = "EXISTS"
	return it
}

func (v *Validator) checkReadable(rel string) Item {
	it := Item{Path: rel}
	f, err := os.Open(v.abs(rel))
	if err != nil {
		it.Label = "NOT ACCESSIBLE"
		it.Detail = err.Error()
		return it
	}
	f.Close()
	it.OK = true
	it.Label = "READABLE"
	return it
}
