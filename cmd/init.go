package cmd

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"tscdk/fs"
	"tscdk/generator"
	"tscdk/install"
	"tscdk/output"
	"tscdk/project"
)

var initCmd = &cobra.Command{
	Use: "init [directory]",
	Aliases: []string{
		"new",
	},
	Short: "Create a new TypeScript CDK project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := "."
		if len(args) > 0 {
			raw = args[0]
		}
		target, err := fs.SanitizeTarget(raw)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		c, err := collectConfiguration(cmd, target, cfg)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		res, err := generator.NewProject(fs.AppFs(), target, c, catalogFor(cfg), generator.Options{
			Force:  force,
			DryRun: dryRun,
		})
		if err != nil {
			return err
		}
		output.Info("generated project", "name", c.KebabName(), "dir", target, "files", len(res.Files))

		installed := false
		if !dryRun && !cfg.SkipInstall {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if err := installDependencies(cmd.Context(), target, c.PackageManager, verbose); err != nil {
				return err
			}
			installed = true
		}

		output.Println(summary(res, c, dryRun, installed))
		return nil
	},
}

func init() {
	addSelectionFlags(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Write into a directory that is not empty")
	initCmd.Flags().Bool("dry-run", false, "Show the files that would be created without writing them")
	initCmd.Flags().Bool("skip-install", false, "Do not install dependencies")
	rootCmd.AddCommand(initCmd)
}

func installDependencies(ctx context.Context, dir string, pm project.PackageManager, verbose bool) error {
	runner := install.NewRunner(dir)
	title := fmt.Sprintf("Installing dependencies with %s...", pm.Executable())
	if verbose {
		runner.Stdout = os.Stderr
		runner.Stderr = os.Stderr
		output.Info(title)
		return runner.Install(ctx, pm)
	}
	return output.RunWithSpinner(ctx, title, func(ctx context.Context) error {
		return runner.Install(ctx, pm)
	})
}

// summary lists the created files followed by the next steps.
func summary(res *generator.Result, c project.Configuration, dryRun, installed bool) string {
	lines := make([]output.FileLine, len(res.Files))
	for i, f := range res.Files {
		lines[i] = output.FileLine{Path: f.Path, Description: describe(f.Path)}
	}

	heading := output.FormatCheckmark("Created " + output.StyleNoun.Render(c.KebabName()) + " in " + res.Root)
	if dryRun {
		heading = output.StyleWarning.Render("Dry run:") + " would create " + c.KebabName() + " in " + res.Root
	}

	var b strings.Builder
	b.WriteString(output.RenderSummary(heading, lines))
	if dryRun {
		return b.String()
	}

	pm := c.PackageManager.Executable()
	b.WriteString("\n")
	b.WriteString(output.StyleSummary.Render("Next steps"))
	b.WriteString("\n")
	if res.Root != "." {
		b.WriteString("  cd " + res.Root + "\n")
	}
	if !installed {
		b.WriteString("  " + pm + " install\n")
	}
	b.WriteString("  " + pm + " run build\n")
	if c.TestTool != project.TestNone {
		b.WriteString("  " + pm + " test\n")
	}
	b.WriteString("  npx cdk synth\n")
	return b.String()
}

var descriptions = map[string]string{
	"package.json":      "package manifest and scripts",
	"tsconfig.json":     "TypeScript compiler options",
	"cdk.json":          "CDK app settings",
	"README.md":         "getting started",
	".gitignore":        "files kept out of git",
	".npmignore":        "files kept out of the package",
	"eslint.config.mjs": "ESLint rules",
	"biome.json":        "Biome settings",
	"jest.config.js":    "Jest settings",
	"vitest.config.mjs": "Vitest settings",
	".prettierrc":       "Prettier settings",
	"bin":               "CDK app entry point",
	"lib":               "stack definition",
	"test":              "stack tests",
}

func describe(p string) string {
	if d, ok := descriptions[p]; ok {
		return d
	}
	return descriptions[path.Dir(p)]
}
