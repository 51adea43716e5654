package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/leizerowicz/project-start/internal/output"
	"github.com/leizerowicz/project-start/internal/project"
	"github.com/leizerowicz/project-start/internal/workflow"
)

// stepRun is one standalone workflow step on the driver.
type stepRun func(*workflow.Driver) func(context.Context, string, project.Info) error

// newStepCmd builds a standalone step command. Each resolves the project
// directory the same way: --project when given, latest numbered directory
// otherwise.
func newStepCmd(use, short, long string, run stepRun) *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			driver, err := newDriver(cmd, printer)
			if err != nil {
				return finishError(cmd, printer, err)
			}

			dir, err := driver.ResolveDir(projectDir)
			if err != nil {
				return finishError(cmd, printer, output.NewUserError(err.Error()))
			}

			if err := run(driver)(cmd.Context(), dir, nil); err != nil {
				return finishError(cmd, printer, output.NewSystemErrorWithCause("generating documents", err))
			}

			return printer.Success(map[string]any{
				"message":     "Documents created in " + dir,
				"project_dir": dir,
			})
		},
	}

	cmd.Flags().StringVar(&projectDir, "project", "", "Project directory (defaults to the most recently created one)")
	return cmd
}

// newPlanningCmd creates the planning command (Step 2).
func newPlanningCmd() *cobra.Command {
	return newStepCmd(
		"planning",
		"Step 2: SPARC methodology documents",
		`Planning generates the five SPARC documents (specification, pseudocode,
architecture, refinement, completion) into the project's sparc/ directory,
folding a truncated excerpt of the existing BACKLOG.md into each.`,
		func(d *workflow.Driver) func(context.Context, string, project.Info) error {
			return d.Planning
		},
	)
}

// newContextSystemsCmd creates the context-systems command (Step 3).
func newContextSystemsCmd() *cobra.Command {
	return newStepCmd(
		"context-systems",
		"Step 3: copilot, expert, and memory context files",
		`Context-systems generates GitHub Copilot instructions, the three expert
role files under expert_files/, the agent coordination file, and the memory
snapshot files under memory/, using excerpts of the documents earlier steps
wrote.`,
		func(d *workflow.Driver) func(context.Context, string, project.Info) error {
			return d.ContextSystems
		},
	)
}

// newCoordinationCmd creates the coordination-framework command (Step 4).
func newCoordinationCmd() *cobra.Command {
	return newStepCmd(
		"coordination-framework",
		"Step 4: multi-agent coordination documents",
		`Coordination-framework generates the six coordination documents: agent
ecosystem design, coordination strategy, collaborative workflows, agentic
testing framework, PACT/SPARC integration, and the quality assurance
framework.`,
		func(d *workflow.Driver) func(context.Context, string, project.Info) error {
			return d.Coordination
		},
	)
}
