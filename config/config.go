// Package config loads the user's default answers from a config file and
// TSCDK_* environment variables.
package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tscdk/project"
)

// FileName is the config file looked up in the home directory.
const FileName = ".tscdk.yaml"

const envPrefix = "TSCDK"

// Keys understood in the config file. Environment variables use the same
// keys upper-cased with "." replaced by "_", e.g. TSCDK_DEFAULTS_LINTER.
const (
	KeyPackageManager = "defaults.package_manager"
	KeyLinter         = "defaults.linter"
	KeyFormatter      = "defaults.formatter"
	KeyTestTool       = "defaults.test_tool"
	KeyTemplates      = "templates"
	KeySkipInstall    = "skip_install"
)

// Config is the merged result of flags, environment, config file and
// built-in defaults, in that order of precedence.
type Config struct {
	PackageManager project.PackageManager
	Linter         project.Linter
	Formatter      project.Formatter
	TestTool       project.TestTool

	// Templates is a directory of templates replacing the built-in set.
	Templates   string
	SkipInstall bool
}

// Loader reads Config through viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a loader reading config files from fs.
func NewLoader(fs afero.Fs) *Loader {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPackageManager, string(project.PackageManagerOptions()[0]))
	v.SetDefault(KeyLinter, string(project.LinterOptions()[0]))
	v.SetDefault(KeyFormatter, string(project.FormatterOptions()[0]))
	v.SetDefault(KeyTestTool, string(project.TestToolOptions()[0]))
	v.SetDefault(KeyTemplates, "")
	v.SetDefault(KeySkipInstall, false)

	return &Loader{v: v}
}

// BindFlags lets explicitly set flags override every other source. Flags
// that are absent from fs are skipped.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		KeyPackageManager: "package-manager",
		KeyLinter:         "linter",
		KeyFormatter:      "formatter",
		KeyTestTool:       "test-tool",
		KeyTemplates:      "templates",
		KeySkipInstall:    "skip-install",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads configFile, or $HOME/.tscdk.yaml when configFile is empty.
// A missing default file is not an error; a missing explicit one is.
func (l *Loader) Load(configFile string) (*Config, error) {
	explicit := configFile != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err == nil {
			configFile = filepath.Join(home, FileName)
		}
	}

	if configFile != "" {
		l.v.SetConfigFile(configFile)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, iofs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
			}
		}
	}

	return l.decode()
}

func (l *Loader) decode() (*Config, error) {
	pm, err := project.ParsePackageManager(l.v.GetString(KeyPackageManager))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyPackageManager, err)
	}
	linter, err := project.ParseLinter(l.v.GetString(KeyLinter))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLinter, err)
	}
	formatter, err := project.ParseFormatter(l.v.GetString(KeyFormatter))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyFormatter, err)
	}
	testTool, err := project.ParseTestTool(l.v.GetString(KeyTestTool))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyTestTool, err)
	}

	return &Config{
		PackageManager: pm,
		Linter:         linter,
		Formatter:      formatter,
		TestTool:       testTool,
		Templates:      l.v.GetString(KeyTemplates),
		SkipInstall:    l.v.GetBool(KeySkipInstall),
	}, nil
}
