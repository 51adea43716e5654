package main

import (
	"github.com/spf13/cobra"

	"github.com/leizerowicz/project-start/internal/output"
)

// newCompleteWorkflowCmd creates the complete-workflow command.
func newCompleteWorkflowCmd() *cobra.Command {
	var existing bool

	cmd := &cobra.Command{
		Use:   "complete-workflow [description]",
		Short: "Run all four steps against a new project directory",
		Long: `Complete-workflow runs discovery, planning, context-systems, and
coordination-framework in order against the directory discovery creates.
Later steps fold excerpts of the documents earlier steps wrote into their
own output.

With --existing the questionnaire is skipped and answers are inferred from
the working directory, as in 'project-start discovery --existing'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			driver, err := newDriver(cmd, printer)
			if err != nil {
				return finishError(cmd, printer, err)
			}

			description := ""
			if len(args) > 0 {
				description = args[0]
			}

			info, err := collectInfo(cmd, driver, existing, description)
			if err != nil {
				return finishError(cmd, printer, err)
			}

			dir, err := driver.Complete(cmd.Context(), info)
			if err != nil {
				return finishError(cmd, printer, output.NewSystemErrorWithCause("running complete workflow", err))
			}

			return printer.Success(map[string]any{
				"message":     "All workflow documents created in " + dir,
				"project_dir": dir,
			})
		},
	}

	cmd.Flags().BoolVar(&existing, "existing", false, "Infer answers from the current directory instead of asking")
	return cmd
}
