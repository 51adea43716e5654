package main

import (
	"github.com/spf13/cobra"

	"github.com/leizerowicz/project-start/internal/ask"
	"github.com/leizerowicz/project-start/internal/output"
)

// newStartCmd creates the start command, the interactive entry point.
func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Interactive kickoff: questionnaire, then all workflow steps",
		Long: `Start walks through the full project questionnaire, creates the next
numbered project directory with the discovery documents, then offers to run
the remaining three steps in one go. Decline and the steps stay available as
individual commands against the directory just created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			driver, err := newDriver(cmd, printer)
			if err != nil {
				return finishError(cmd, printer, err)
			}

			printer.Box("project-start",
				"Answer a few questions about the project.\n"+
					"Blank answers accept the [default] where one is shown.")

			asker := ask.New(cmd.InOrStdin(), cmd.OutOrStdout())
			info, err := runQuestionnaire(asker, "")
			if err != nil {
				return finishError(cmd, printer, err)
			}

			dir, err := driver.Discovery(cmd.Context(), info)
			if err != nil {
				return finishError(cmd, printer, output.NewSystemErrorWithCause("running discovery", err))
			}

			runRest, err := asker.YesNo("Run the remaining steps (planning, context systems, coordination) now?", true)
			if err != nil {
				return finishError(cmd, printer, err)
			}

			if runRest {
				if err := driver.Planning(cmd.Context(), dir, info); err != nil {
					return finishError(cmd, printer, output.NewSystemErrorWithCause("running planning", err))
				}
				if err := driver.ContextSystems(cmd.Context(), dir, info); err != nil {
					return finishError(cmd, printer, output.NewSystemErrorWithCause("running context systems", err))
				}
				if err := driver.Coordination(cmd.Context(), dir, info); err != nil {
					return finishError(cmd, printer, output.NewSystemErrorWithCause("running coordination framework", err))
				}
			} else {
				printer.Println()
				printer.Println("Run the remaining steps later with:")
				printer.Println("  project-start planning")
				printer.Println("  project-start context-systems")
				printer.Println("  project-start coordination-framework")
			}

			return printer.Success(map[string]any{
				"message":     "Project created in " + dir,
				"project_dir": dir,
			})
		},
	}
}
