package compat

import (
	"context"
	"errors"

	"github.com/CosmoTheDev/cmsprobe/internal/config"
	"github.com/CosmoTheDev/cmsprobe/internal/probe"
)

var errFake = errors.New("fake probe failure")

type fakeEnv struct {
	version    string
	versionErr error
	sapi       string
	extensions []string
	extErr     error
	ini        map[string]string
	iniErr     error
	iniKeyErrs map[string]error
	server     string
	os         probe.OSRelease
	osErr      error
	tools      map[string]string
}

func (f *fakeEnv) RuntimeVersion(context.Context) (string, error) { return f.version, f.versionErr }
func (f *fakeEnv) SAPI(context.Context) (string, error)           { return f.sapi, nil }
func (f *fakeEnv) Extensions(context.Context) ([]string, error)   { return f.extensions, f.extErr }
func (f *fakeEnv) ServerSoftware() string                         { return f.server }
func (f *fakeEnv) OSRelease() (probe.OSRelease, error)            { return f.os, f.osErr }

func (f *fakeEnv) IniGet(_ context.Context, key string) (string, error) {
	if f.iniErr != nil {
		return "", f.iniErr
	}
	if err := f.iniKeyErrs[key]; err != nil {
		return "", err
	}
	return f.ini[key], nil
}

func (f *fakeEnv) ToolVersion(_ context.Context, name string) (string, error) {
	out, ok := f.tools[name]
	if !ok {
		return "", errFake
	}
	return out, nil
}

func requiredNames() []string {
	names := make([]string, 0, len(config.DefaultExtensions))
	for _, r := range config.DefaultExtensions {
		names = append(names, r.Name)
	}
	return names
}

// healthyEnv is the reference host: PHP 8.3.2 with every required extension
// on Ubuntu 24.04 behind Apache.
func healthyEnv() *fakeEnv {
	return &fakeEnv{
		version:    "8.3.2",
		sapi:       "cli",
		extensions: append([]string{"Core", "standard"}, requiredNames()...),
		ini: map[string]string{
			"memory_limit":        "512M",
			"max_execution_time":  "120",
			"upload_max_filesize": "64M",
			"post_max_size":       "64M",
		},
		server: "Apache/2.4.58 (Ubuntu)",
		os:     probe.OSRelease{ID: "ubuntu", Name: "Ubuntu", VersionID: "24.04"},
		tools:  map[string]string{"composer": "Composer version 2.7.2"},
	}
}

func testConfig(tempDir string) *config.Config {
	return &config.Config{
		PHP: config.PHPConfig{Composer: "composer"},
		Requirements: config.RequirementsConfig{
			Extensions:       config.DefaultExtensions,
			SetupExtensions:  config.DefaultSetupExtensions,
			MinMemory:        "512M",
			MinExecutionTime: 120,
			RuntimeVersion:   "8.3.0",
		},
		Thresholds: config.ThresholdsConfig{OS: 80, Runtime: 80, Filesystem: 100, Performance: 80},
		Host:       config.HostConfig{TempDir: tempDir},
	}
}
