package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"tscdk/fs"
	"tscdk/generator"
	"tscdk/output"
	"tscdk/watch"
)

var errNoTemplates = errors.New("watch needs a template directory, set --templates or templates in the config file")

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Regenerate a project whenever its templates change",
	Long: `Watch is meant for template authors: it generates the project once and
generates it again, overwriting files, every time a file under the
template directory changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := fs.SanitizeTarget(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Templates == "" {
			return errNoTemplates
		}
		c, err := collectConfiguration(cmd, target, cfg)
		if err != nil {
			return err
		}

		interval, err := cmd.Flags().GetDuration("interval")
		if err != nil {
			return err
		}

		catalog := catalogFor(cfg)
		list, err := catalog.List()
		if err != nil {
			return err
		}
		output.Debug("templates found", "dir", cfg.Templates, "files", list)

		appFs := fs.AppFs()
		w := watch.New(cfg.Templates, func() error {
			res, err := generator.NewProject(appFs, target, c, catalog, generator.Options{Force: true})
			if err != nil {
				return err
			}
			output.Debug("wrote files", "dir", target, "files", res.Written)
			return nil
		})
		return w.Run(cmd.Context(), interval)
	},
}

func init() {
	addSelectionFlags(watchCmd)
	watchCmd.Flags().Duration("interval", watch.DefaultInterval, "How often the template directory is polled")
	rootCmd.AddCommand(watchCmd)
}
