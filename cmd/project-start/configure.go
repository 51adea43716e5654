package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leizerowicz/project-start/internal/config"
	"github.com/leizerowicz/project-start/internal/output"
)

// newConfigureRootCmd creates the configure-root command.
func newConfigureRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure-root [path]",
		Short: "Set or show the target project root",
		Long: `Configure-root records where numbered project directories are created.
With a path argument it writes TARGET_PROJECT_ROOT to the ` + config.RootFileName + `
file; without one it prints the currently resolved root and how it was found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			cfg, err := config.Detect()
			if err != nil {
				return finishError(cmd, printer, output.NewSystemErrorWithCause("resolving environment", err))
			}

			if len(args) == 0 {
				if printer.IsJSON() {
					return printer.WriteJSON(map[string]string{
						"project_root": cfg.ProjectRoot(),
						"specs_dir":    cfg.SpecsDir(),
					})
				}
				printer.KeyValue("Project root", cfg.ProjectRoot())
				printer.KeyValue("Specs directory", cfg.SpecsDir())
				return nil
			}

			root, err := filepath.Abs(args[0])
			if err != nil {
				return finishError(cmd, printer, output.NewUserError("invalid path: "+args[0]))
			}

			path, err := cfg.SaveRoot(root)
			if err != nil {
				return finishError(cmd, printer, output.NewSystemErrorWithCause("saving project root", err))
			}

			return printer.Success(map[string]any{
				"message":      "Project root set to " + root,
				"project_root": root,
				"config_file":  path,
			})
		},
	}
}
