package cmd

import (
	"path/filepath"
	"strings"

	"github.com/ozgio/strutil"
	"github.com/spf13/cobra"

	"tscdk/config"
	"tscdk/fs"
	"tscdk/output"
	"tscdk/project"
	"tscdk/prompt"
	"tscdk/template"
)

// selectionFlags maps each option flag to the question it answers.
var selectionFlags = []struct {
	name  string
	field prompt.Field
}{
	{"package-manager", prompt.FieldPackageManager},
	{"linter", prompt.FieldLinter},
	{"formatter", prompt.FieldFormatter},
	{"test-tool", prompt.FieldTestTool},
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Project name (defaults to the directory name)")
	cmd.Flags().String("package-manager", "", "Package manager: "+joinOptions(project.PackageManagerOptions()))
	cmd.Flags().String("linter", "", "Linter: "+joinOptions(project.LinterOptions()))
	cmd.Flags().String("formatter", "", "Formatter: "+joinOptions(project.FormatterOptions()))
	cmd.Flags().String("test-tool", "", "Test tool: "+joinOptions(project.TestToolOptions()))
	cmd.Flags().String("templates", "", "Directory of templates to use instead of the built-in ones")
	cmd.Flags().BoolP("yes", "y", false, "Use flags and defaults without prompting")
}

func joinOptions[T ~string](opts []T) string {
	s := make([]string, len(opts))
	for i, o := range opts {
		s[i] = string(o)
	}
	return strings.Join(s, "|")
}

// loadConfig merges the flags of cmd with the environment and config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	loader := config.NewLoader(fs.AppFs())
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return loader.Load(configFile)
}

// collectConfiguration fills a Configuration from flags and config defaults,
// prompting for what the flags left open when stdin is a terminal.
func collectConfiguration(cmd *cobra.Command, target string, cfg *config.Config) (project.Configuration, error) {
	c := project.Configuration{
		PackageManager: cfg.PackageManager,
		Linter:         cfg.Linter,
		Formatter:      cfg.Formatter,
		TestTool:       cfg.TestTool,
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return c, err
	}
	c.ProjectName = strings.TrimSpace(name)

	var ask prompt.Field
	if c.ProjectName == "" {
		ask |= prompt.FieldName
		c.ProjectName = defaultName(target)
	}
	for _, f := range selectionFlags {
		if !cmd.Flags().Changed(f.name) {
			ask |= f.field
		}
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if ask != 0 && !yes && prompt.Interactive() {
		if c, err = prompt.Ask(c, ask); err != nil {
			return c, err
		}
	}

	output.Debug("configuration",
		"name", c.ProjectName,
		"package-manager", c.PackageManager,
		"linter", c.Linter,
		"formatter", c.Formatter,
		"test-tool", c.TestTool,
	)
	return c, c.Validate()
}

// defaultName derives a project name from the target directory.
func defaultName(target string) string {
	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}
	return strutil.ToSnakeCase(filepath.Base(abs))
}

func catalogFor(cfg *config.Config) *template.AferoCatalog {
	if cfg.Templates != "" {
		output.Debug("using templates", "dir", cfg.Templates)
		return template.NewDirCatalog(fs.AppFs(), cfg.Templates)
	}
	return template.Embedded()
}
