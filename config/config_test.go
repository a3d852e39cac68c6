package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tscdk/project"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg, err := NewLoader(afero.NewMemMapFs()).Load("")
	require.NoError(t, err)

	assert.Equal(t, &Config{
		PackageManager: project.Npm,
		Linter:         project.LinterEsLint,
		Formatter:      project.FormatterPrettier,
		TestTool:       project.TestJest,
	}, cfg)
}

func TestLoadFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/cfg/tscdk.yaml", []byte(`
defaults:
  package_manager: pnpm
  linter: biome
  formatter: biome
  test_tool: vitest
templates: /opt/templates
skip_install: true
`), 0o644))

	cfg, err := NewLoader(mem).Load("/cfg/tscdk.yaml")
	require.NoError(t, err)

	assert.Equal(t, project.Pnpm, cfg.PackageManager)
	assert.Equal(t, project.LinterBiome, cfg.Linter)
	assert.Equal(t, project.FormatterBiome, cfg.Formatter)
	assert.Equal(t, project.TestVitest, cfg.TestTool)
	assert.Equal(t, "/opt/templates", cfg.Templates)
	assert.True(t, cfg.SkipInstall)
}

func TestLoadHomeFile(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/home/tester/.tscdk.yaml", []byte("defaults:\n  test_tool: none\n"), 0o644))

	cfg, err := NewLoader(mem).Load("")
	require.NoError(t, err)
	assert.Equal(t, project.TestNone, cfg.TestTool)
	assert.Equal(t, project.LinterEsLint, cfg.Linter)
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := NewLoader(afero.NewMemMapFs()).Load("/nope.yaml")
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/c.yaml", []byte("defaults:\n  linter: none\n"), 0o644))
	t.Setenv("TSCDK_DEFAULTS_LINTER", "biome")

	cfg, err := NewLoader(mem).Load("/c.yaml")
	require.NoError(t, err)
	assert.Equal(t, project.LinterBiome, cfg.Linter)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	t.Setenv("TSCDK_DEFAULTS_FORMATTER", "biome")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("formatter", "", "")
	flags.String("linter", "", "")
	flags.Bool("skip-install", false, "")
	require.NoError(t, flags.Parse([]string{"--formatter", "none", "--skip-install"}))

	l := NewLoader(afero.NewMemMapFs())
	require.NoError(t, l.BindFlags(flags))
	cfg, err := l.Load("")
	require.NoError(t, err)

	assert.Equal(t, project.FormatterNone, cfg.Formatter)
	assert.Equal(t, project.LinterEsLint, cfg.Linter, "unset flag keeps the default")
	assert.True(t, cfg.SkipInstall)
}

func TestLoadRejectsUnknownChoice(t *testing.T) {
	t.Setenv("TSCDK_DEFAULTS_TEST_TOOL", "mocha")

	_, err := NewLoader(afero.NewMemMapFs()).Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, project.ErrUnknownOption)
	assert.Contains(t, err.Error(), KeyTestTool)
}
