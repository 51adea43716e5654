// Package main provides the entry point for the project-start CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/leizerowicz/project-start/internal/ask"
	"github.com/leizerowicz/project-start/internal/config"
	"github.com/leizerowicz/project-start/internal/docs"
	"github.com/leizerowicz/project-start/internal/envfile"
	"github.com/leizerowicz/project-start/internal/generate"
	"github.com/leizerowicz/project-start/internal/output"
	"github.com/leizerowicz/project-start/internal/workflow"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// aiCommandEnv overrides the external AI CLI name ("claude" by default).
const aiCommandEnv = "PROJECT_START_AI_CLI"

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// isDebugMode reads the --debug persistent flag from the command hierarchy.
func isDebugMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("debug")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("debug")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd()
	err := fang.Execute(ctx, cmd, fang.WithVersion(buildVersion()))

	// A cancelled context means the user hit Ctrl-C mid-run; documents
	// already written stay on disk.
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "Interrupted.")
		return output.ExitInterrupt
	}
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the project-start CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project-start",
		Short: "Interactive project kickoff and planning-document generator",
		Long: `Project-start walks you through a questionnaire about a new software
project and generates a numbered specs/ directory full of planning documents:
backlog, implementation guide, risk assessment, file outline, SPARC
methodology documents, and a multi-agent coordination framework.

Document bodies are filled by an external AI CLI when one is installed
(claude by default, override with $PROJECT_START_AI_CLI); otherwise each
document falls back to a deterministic template with your answers filled in.

The four steps can run independently or together:
  discovery              Step 1: questionnaire + core planning documents
  planning               Step 2: SPARC methodology documents
  context-systems        Step 3: copilot/expert/memory context files
  coordination-framework Step 4: multi-agent coordination documents`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'project-start --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for AI CLI API keys that can't be exported.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().Bool("debug", false, "Print full error chains on failure")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "workflow", Title: "Workflow Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newStartCmd(), "workflow")
	addGroupedCommand(cmd, newDiscoveryCmd(), "workflow")
	addGroupedCommand(cmd, newPlanningCmd(), "workflow")
	addGroupedCommand(cmd, newContextSystemsCmd(), "workflow")
	addGroupedCommand(cmd, newCoordinationCmd(), "workflow")
	addGroupedCommand(cmd, newCompleteWorkflowCmd(), "workflow")

	addGroupedCommand(cmd, newServeCmd(), "agent")

	addGroupedCommand(cmd, newConfigureRootCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// newPrinter builds the printer for a command invocation.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout())).
		WithStderr(cmd.ErrOrStderr())
}

// newDriver wires the workflow driver for a command invocation: resolved
// config, the AI runner, and the document emitter.
func newDriver(cmd *cobra.Command, printer *output.Printer) (*workflow.Driver, error) {
	cfg, err := config.Detect()
	if err != nil {
		return nil, output.NewSystemErrorWithCause("resolving environment", err)
	}

	aiCommand := os.Getenv(aiCommandEnv)
	runner := generate.NewRunner(aiCommand, generate.WithWarnf(printer.Warn))
	emitter := docs.NewEmitter(runner, printer)
	return workflow.NewDriver(cfg, emitter, printer), nil
}

// finishError normalizes an error for exit: interrupt-style input closure
// maps to the interrupt code, and --debug prints the full chain.
func finishError(cmd *cobra.Command, printer *output.Printer, err error) error {
	if errors.Is(err, ask.ErrInputClosed) {
		err = output.NewInterruptError("input closed before the questionnaire finished")
	}
	if isDebugMode(cmd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "debug: %+v\n", err)
	}
	printer.Error(err)
	return err
}
