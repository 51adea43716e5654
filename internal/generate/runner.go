// Package generate invokes the optional external AI CLI to fill document
// bodies, with a deterministic template fallback when the tool is absent,
// fails, or times out. Generation never surfaces an error to callers.
package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultCommand is the external AI CLI consulted for document bodies.
const DefaultCommand = "claude"

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 60 * time.Second

// promptPlaceholder marks where the prompt is substituted into Args.
const promptPlaceholder = "{prompt}"

// defaultArgs invoke the CLI in non-interactive print mode.
var defaultArgs = []string{"-p", promptPlaceholder}

// Runner wraps the external AI CLI. Availability is checked once at
// construction via PATH lookup; an absent tool skips invocation entirely.
type Runner struct {
	// Command is the executable name, resolved through PATH.
	Command string

	// Args is the argument template; promptPlaceholder is replaced with the
	// generation prompt.
	Args []string

	// Timeout bounds each invocation.
	Timeout time.Duration

	available bool
	warnf     func(format string, args ...any)
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout overrides the default invocation timeout.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.Timeout = d }
}

// WithArgs overrides the argument template.
func WithArgs(args []string) Option {
	return func(r *Runner) { r.Args = args }
}

// WithWarnf installs a warning sink for fallback notices.
func WithWarnf(warnf func(format string, args ...any)) Option {
	return func(r *Runner) { r.warnf = warnf }
}

// NewRunner creates a Runner for the given command, checking PATH once.
func NewRunner(command string, opts ...Option) *Runner {
	if command == "" {
		command = DefaultCommand
	}
	r := &Runner{
		Command: command,
		Args:    defaultArgs,
		Timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	_, err := exec.LookPath(r.Command)
	r.available = err == nil
	return r
}

// Available reports whether the external tool was found on PATH.
func (r *Runner) Available() bool {
	return r.available
}

// Generate runs the external tool with the prompt and returns its trimmed
// stdout. On any failure — tool absent, non-zero exit, timeout — it returns
// the deterministic fallback for docType instead. The error path is always
// recovered locally; callers get content, never an error.
func (r *Runner) Generate(ctx context.Context, docType, prompt string) string {
	if !r.available {
		r.warn("%s not found in PATH, using template fallback for %s", r.Command, docType)
		return r.Fallback(docType, prompt)
	}

	cctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, r.Command, r.buildArgs(prompt)...) //nolint:gosec // command comes from config, not user input
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(cctx.Err(), context.DeadlineExceeded) {
		r.warn("%s timed out after %s generating %s, using template fallback", r.Command, r.Timeout, docType)
		return r.Fallback(docType, prompt)
	}
	if err != nil {
		r.warn("%s failed generating %s (%v), using template fallback", r.Command, docType, err)
		return r.Fallback(docType, prompt)
	}

	return strings.TrimSpace(stdout.String())
}

// buildArgs substitutes the prompt into the argument template.
func (r *Runner) buildArgs(prompt string) []string {
	args := make([]string, len(r.Args))
	for n, a := range r.Args {
		if a == promptPlaceholder {
			a = prompt
		}
		args[n] = a
	}
	return args
}

// Fallback returns the static stub used when AI generation is unavailable.
// The prompt is saved to a temp file for manual use; the stub is identical
// across runs apart from the timestamp and that path.
func (r *Runner) Fallback(docType, prompt string) string {
	promptPath := r.savePrompt(docType, prompt)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", docType)
	b.WriteString("> AI generation was unavailable when this document was created.\n")
	fmt.Fprintf(&b, "> Generated by project-start on %s.\n\n", time.Now().Format("2006-01-02 15:04"))
	if promptPath != "" {
		b.WriteString("The full generation prompt was saved for manual use:\n\n")
		fmt.Fprintf(&b, "    %s\n\n", promptPath)
	}
	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "1. Run the saved prompt through an AI tool (for example `%s`).\n", r.Command)
	b.WriteString("2. Replace the contents of this file with the result.\n")
	b.WriteString("3. Review the output against the project questionnaire answers.\n")
	return b.String()
}

// savePrompt writes the prompt to a temp file and returns its path.
// Returns empty string when the write fails; the stub omits the pointer then.
func (r *Runner) savePrompt(docType, prompt string) string {
	slug := strings.ToLower(strings.ReplaceAll(docType, " ", "-"))
	file, err := os.CreateTemp("", "project-start-"+slug+"-*.prompt.md")
	if err != nil {
		r.warn("could not save prompt for %s: %v", docType, err)
		return ""
	}
	defer file.Close() //nolint:errcheck // temp file, best effort

	if _, err := file.WriteString(prompt); err != nil {
		r.warn("could not save prompt for %s: %v", docType, err)
		return ""
	}
	return file.Name()
}

// warn forwards to the configured warning sink when one is installed.
func (r *Runner) warn(format string, args ...any) {
	if r.warnf != nil {
		r.warnf(format, args...)
	}
}
