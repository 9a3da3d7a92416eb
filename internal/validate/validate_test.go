package validate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLinter fails any file whose contents contain "syntax error".
type fakeLinter struct {
	calls []string
}

func (f *fakeLinter) Lint(_ context.Context, path string) (string, error) {
	f.calls = append(f.calls, filepath.Base(path))
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if strings.Contains(string(data), "syntax error") {
		return "PHP Parse error: syntax error, unexpected end of file in " + path, errors.New("exit status 255")
	}
	return "No syntax errors detected in " + path, nil
}

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "umd/unilevelmlm.module", "<?php\nfunction umd_help() {}\n")
	writeFile(t, root, "umd/src/UmpClass.php", "<?php\nclass UmpClass {}\n")
	writeFile(t, root, "umd/unilevelmlm.info.yml", "name: UMD\ntype: module\ncore_version_requirement: ^11\n")
	writeFile(t, root, "umd/drupal-cms/composer.json", `{"name": "drupal/cms", "require": {}}`)
	for _, d := range []string{"umd/css", "umd/js", "umd/templates", "umd/config"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	return root
}

func manifest() Manifest {
	return Manifest{
		SyntaxFiles: []string{"umd/unilevelmlm.module", "umd/src/UmpClass.php"},
		ConfigFiles: []config.ConfigFile{
			{Path: "umd/unilevelmlm.info.yml", Type: "yaml"},
			{Path: "umd/drupal-cms/composer.json", Type: "JSON"},
		},
		Dirs:          []string{"umd", "umd/css", "umd/js", "umd/templates", "umd/src", "umd/config", "umd/drupal-cms"},
		ReadableFiles: []string{"umd/unilevelmlm.module", "umd/unilevelmlm.info.yml", "umd/drupal-cms/composer.json"},
	}
}

func TestValidatorCleanProject(t *testing.T) {
	root := newProject(t)
	lint := &fakeLinter{}

	res := New(root, lint, nil).Run(context.Background(), manifest())

	assert.Equal(t, 0, res.Total())
	assert.Equal(t, 0, res.ExitCode())
	require.Len(t, res.Sections, 4)
	assert.Equal(t, KindSyntax, res.Sections[0].Kind)
	assert.Equal(t, []string{"unilevelmlm.module", "UmpClass.php"}, lint.calls)
	assert.Equal(t, "JSON", res.Sections[1].Items[1].Format)
}

func TestValidatorCountsEveryFailure(t *testing.T) {
	root := newProject(t)
	writeFile(t, root, "umd/src/UmpClass.php", "<?php\nclass UmpClass { syntax error\n")
	writeFile(t, root, "umd/drupal-cms/composer.json", `{"name": `)
	writeFile(t, root, "umd/unilevelmlm.routing.yml", "- just\n- a list\n")
	require.NoError(t, os.RemoveAll(filepath.Join(root, "umd/js")))

	m := manifest()
	m.SyntaxFiles = append(m.SyntaxFiles, "umd/unilevelmlm.install")
	m.ConfigFiles = append(m.ConfigFiles, config.ConfigFile{Path: "umd/unilevelmlm.routing.yml", Type: "yaml"})
	m.ReadableFiles = append(m.ReadableFiles, "umd/missing.txt")

	res := New(root, &fakeLinter{}, nil).Run(context.Background(), m)

	assert.Equal(t, 2, res.Errors(KindSyntax))
	assert.Equal(t, 2, res.Errors(KindConfig))
	assert.Equal(t, 1, res.Errors(KindStructure))
	assert.Equal(t, 1, res.Errors(KindPermission))
	assert.Equal(t, 6, res.Total())
	assert.Equal(t, 1, res.ExitCode())

	syntax := res.Sections[0].Items
	assert.Equal(t, "FAIL", syntax[1].Label)
	assert.Contains(t, syntax[1].Detail, "PHP Parse error")
	assert.Equal(t, "FILE NOT FOUND", syntax[2].Label)
}

func TestValidatorGlobs(t *testing.T) {
	root := newProject(t)
	writeFile(t, root, "umd/src/Form/SettingsForm.php", "<?php\n")

	lint := &fakeLinter{}
	res := New(root, lint, nil).Run(context.Background(), Manifest{
		SyntaxFiles: []string{"umd/src/**/*.php", "umd/tests/**/*.php"},
	})

	items := res.Sections[0].Items
	require.Len(t, items, 3)
	assert.ElementsMatch(t,
		[]string{"umd/src/Form/SettingsForm.php", "umd/src/UmpClass.php"},
		[]string{items[0].Path, items[1].Path})
	// An empty glob reports once as not found.
	assert.Equal(t, "umd/tests/**/*.php", items[2].Path)
	assert.False(t, items[2].OK)
	assert.Len(t, lint.calls, 2)
}

func TestCheckYAML(t *testing.T) {
	assert.NoError(t, checkYAML([]byte("name: x\n")))
	assert.Error(t, checkYAML([]byte("")))
	assert.Error(t, checkYAML([]byte("plain scalar")))
	assert.Error(t, checkYAML([]byte("key: [unclosed\n")))
}

func TestUnsupportedConfigType(t *testing.T) {
	root := newProject(t)
	res := New(root, &fakeLinter{}, nil).Run(context.Background(), Manifest{
		ConfigFiles: []config.ConfigFile{{Path: "umd/unilevelmlm.info.yml", Type: "toml"}},
	})
	assert.Equal(t, 1, res.Errors(KindConfig))
}

func TestManifestFromConfig(t *testing.T) {
	m := ManifestFromConfig(config.ProjectConfig{Dirs: []string{"a"}, SyntaxFiles: []string{"b.php"}})
	assert.Equal(t, []string{"a"}, m.Dirs)
	assert.Equal(t, []string{"b.php"}, m.SyntaxFiles)
}
