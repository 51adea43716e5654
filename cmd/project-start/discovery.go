package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leizerowicz/project-start/internal/ask"
	"github.com/leizerowicz/project-start/internal/config"
	"github.com/leizerowicz/project-start/internal/output"
	"github.com/leizerowicz/project-start/internal/project"
	"github.com/leizerowicz/project-start/internal/workflow"
)

// newDiscoveryCmd creates the discovery command (Step 1).
func newDiscoveryCmd() *cobra.Command {
	var (
		existing   bool
		projectDir string
	)

	cmd := &cobra.Command{
		Use:   "discovery [description]",
		Short: "Step 1: questionnaire and core planning documents",
		Long: `Discovery asks the project questionnaire, creates the next numbered
directory under specs/, and generates the core planning documents: backlog,
implementation guide, risk assessment, file outline, constitutional
validation, and open clarifications.

With --existing the questionnaire is skipped and answers are inferred from
the working directory: marker files (package.json, go.mod, requirements.txt,
Cargo.toml and friends) fill the tech stack, and the README's first plain
sentence fills the description. An explicit [description] argument always
wins over the inferred one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			driver, err := newDriver(cmd, printer)
			if err != nil {
				return finishError(cmd, printer, err)
			}
			if projectDir != "" {
				// An explicit target beats the installed root file; only a
				// root file inside the target itself is still honored.
				driver.Config.WorkDir = projectDir
				driver.Config.InstallDir = ""
				driver.Config.RootFile = filepath.Join(projectDir, config.RootFileName)
			}

			description := ""
			if len(args) > 0 {
				description = args[0]
			}

			info, err := collectInfo(cmd, driver, existing, description)
			if err != nil {
				return finishError(cmd, printer, err)
			}

			dir, err := driver.Discovery(cmd.Context(), info)
			if err != nil {
				return finishError(cmd, printer, output.NewSystemErrorWithCause("running discovery", err))
			}

			return printer.Success(map[string]any{
				"message":     "Discovery documents created in " + dir,
				"project_dir": dir,
			})
		},
	}

	cmd.Flags().BoolVar(&existing, "existing", false, "Infer answers from the target directory instead of asking")
	cmd.Flags().StringVar(&projectDir, "project", "", "Target project root (defaults to the current directory)")
	return cmd
}

// collectInfo gathers questionnaire answers, either by detection or by
// asking interactively on the command's streams.
func collectInfo(cmd *cobra.Command, driver *workflow.Driver, existing bool, description string) (project.Info, error) {
	if existing {
		return workflow.DetectInfo(driver.Config.WorkDir, description), nil
	}

	asker := ask.New(cmd.InOrStdin(), cmd.OutOrStdout())
	return runQuestionnaire(asker, description)
}
