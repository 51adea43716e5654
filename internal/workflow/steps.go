// Package workflow sequences the four document-generation steps: discovery,
// planning, context systems, and the coordination framework. Steps hold no
// state between runs; everything is re-read from the project directory.
package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leizerowicz/project-start/internal/config"
	"github.com/leizerowicz/project-start/internal/docs"
	"github.com/leizerowicz/project-start/internal/output"
	"github.com/leizerowicz/project-start/internal/project"
)

// priorExcerptLimit caps each prior-document excerpt folded into later steps.
const priorExcerptLimit = 600

// Document lists per step, in emission order.
var (
	discoveryDocs = []string{
		"backlog",
		"implementation_guide",
		"risk_assessment",
		"file_outline",
		"constitutional_validation",
		"clarification_needed",
	}
	planningDocs = []string{
		"sparc_specification",
		"sparc_pseudocode",
		"sparc_architecture",
		"sparc_refinement",
		"sparc_completion",
	}
	contextSystemsDocs = []string{
		"copilot_instructions",
		"architecture_expert",
		"tech_stack_expert",
		"testing_expert",
		"agent_coordination",
		"project_memory",
		"constitutional_memory",
		"lesson_memory",
	}
	coordinationDocs = []string{
		"agent_ecosystem_design",
		"coordination_strategy",
		"collaborative_workflows",
		"agentic_testing_framework",
		"pact_sparc_integration",
		"quality_assurance_framework",
	}
)

// Driver runs workflow steps against a resolved configuration.
type Driver struct {
	Config  config.Config
	Emitter *docs.Emitter
	Printer *output.Printer

	// Now is the timestamp source, overridable in tests.
	Now func() time.Time
}

// NewDriver creates a Driver.
func NewDriver(cfg config.Config, emitter *docs.Emitter, printer *output.Printer) *Driver {
	return &Driver{
		Config:  cfg,
		Emitter: emitter,
		Printer: printer,
		Now:     time.Now,
	}
}

// ResolveDir returns the project directory to operate on: the explicit path
// when given, otherwise the most recently created directory under specs/.
func (d *Driver) ResolveDir(explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil || !info.IsDir() {
			return "", fmt.Errorf("project directory %s not found", explicit)
		}
		return explicit, nil
	}

	dir, err := project.LatestDir(d.Config.SpecsDir())
	if err != nil {
		return "", fmt.Errorf("no project found under %s; run 'project-start discovery' first", d.Config.SpecsDir())
	}
	return dir, nil
}

// Discovery is Step 1: creates the numbered project directory for info and
// emits the discovery documents. Returns the created directory.
func (d *Driver) Discovery(ctx context.Context, info project.Info) (string, error) {
	dir, err := project.CreateStructure(d.Config.SpecsDir(), info)
	if err != nil {
		return "", err
	}
	if d.Printer != nil {
		d.Printer.Step("Step 1: Discovery — " + filepath.Base(dir))
	}

	vars := d.baseVars(info)
	vars["readme_context"] = docs.ReadmeContext(filepath.Join(d.Config.WorkDir, "README.md"))

	if _, err := d.Emitter.EmitAll(ctx, dir, discoveryDocs, vars); err != nil {
		return dir, err
	}
	return dir, nil
}

// Planning is Step 2: emits the five SPARC methodology documents into
// sparc/, folding a truncated BACKLOG.md excerpt into each. info may be nil
// when the step runs standalone; the project name is then recovered from the
// directory name.
func (d *Driver) Planning(ctx context.Context, dir string, info project.Info) error {
	if d.Printer != nil {
		d.Printer.Step("Step 2: SPARC Planning — " + filepath.Base(dir))
	}

	vars := d.baseVars(d.infoOrDerived(dir, info))
	vars["backlog_excerpt"] = d.priorContext(dir, "BACKLOG.md")

	_, err := d.Emitter.EmitAll(ctx, dir, planningDocs, vars)
	return err
}

// ContextSystems is Step 3: emits copilot instructions, the expert role
// files, the coordination file, and the memory snapshot files.
func (d *Driver) ContextSystems(ctx context.Context, dir string, info project.Info) error {
	if d.Printer != nil {
		d.Printer.Step("Step 3: Context Systems — " + filepath.Base(dir))
	}

	vars := d.baseVars(d.infoOrDerived(dir, info))
	vars["prior_context"] = d.priorContext(dir,
		"BACKLOG.md",
		"IMPLEMENTATION_GUIDE.md",
		filepath.Join("sparc", "SPARC_SPECIFICATION.md"),
		filepath.Join("sparc", "SPARC_ARCHITECTURE.md"),
	)

	_, err := d.Emitter.EmitAll(ctx, dir, contextSystemsDocs, vars)
	return err
}

// Coordination is Step 4: emits the six coordination-framework documents.
func (d *Driver) Coordination(ctx context.Context, dir string, info project.Info) error {
	if d.Printer != nil {
		d.Printer.Step("Step 4: Coordination Framework — " + filepath.Base(dir))
	}

	vars := d.baseVars(d.infoOrDerived(dir, info))
	vars["prior_context"] = d.priorContext(dir,
		"BACKLOG.md",
		"RISK_ASSESSMENT.md",
		filepath.Join("sparc", "SPARC_ARCHITECTURE.md"),
		"agent_coordination.md",
	)

	_, err := d.Emitter.EmitAll(ctx, dir, coordinationDocs, vars)
	return err
}

// Complete runs all four steps in order against the directory Step 1
// creates. Returns the created directory.
func (d *Driver) Complete(ctx context.Context, info project.Info) (string, error) {
	dir, err := d.Discovery(ctx, info)
	if err != nil {
		return dir, err
	}
	if err := d.Planning(ctx, dir, info); err != nil {
		return dir, err
	}
	if err := d.ContextSystems(ctx, dir, info); err != nil {
		return dir, err
	}
	if err := d.Coordination(ctx, dir, info); err != nil {
		return dir, err
	}
	return dir, nil
}

// baseVars builds the shared substitution map, defaulting the optional
// context variables so templates never render raw placeholders.
func (d *Driver) baseVars(info project.Info) map[string]string {
	vars := docs.BaseVars(info, d.Now())
	vars["readme_context"] = ""
	vars["backlog_excerpt"] = ""
	vars["prior_context"] = ""
	return vars
}

// infoOrDerived returns info when answers are present, otherwise a minimal
// Info recovered from the directory name. ProjectInfo is never persisted as
// structured data, so standalone step runs only know the name.
func (d *Driver) infoOrDerived(dir string, info project.Info) project.Info {
	if len(info) > 0 {
		return info
	}
	return project.Info{"name": project.NameFromDir(dir)}
}

// priorContext assembles truncated excerpts of prior-step documents. Missing
// files are silently skipped; with nothing available a fixed notice is
// returned so templates still read sensibly.
func (d *Driver) priorContext(dir string, files ...string) string {
	var sections []string
	for _, file := range files {
		excerpt := docs.Excerpt(filepath.Join(dir, file), priorExcerptLimit)
		if excerpt == "" {
			continue
		}
		sections = append(sections, "### "+filepath.ToSlash(file)+"\n\n"+excerpt)
	}
	if len(sections) == 0 {
		return "(no prior documents found)"
	}
	return strings.Join(sections, "\n\n")
}
