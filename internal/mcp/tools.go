package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/leizerowicz/project-start/internal/project"
	"github.com/leizerowicz/project-start/internal/workflow"
)

// --- Shared types ---

// Answers mirrors the questionnaire fields. Only name is required; blank
// fields render as "Not specified" in generated documents.
type Answers struct {
	Name                string `json:"name"                            jsonschema:"project name (required)"`
	Description         string `json:"description,omitempty"           jsonschema:"one-sentence project description"`
	TechStack           string `json:"tech_stack,omitempty"            jsonschema:"languages, frameworks, hosting"`
	Architecture        string `json:"architecture,omitempty"          jsonschema:"architecture style, e.g. monolithic or microservices"`
	TeamSize            string `json:"team_size,omitempty"             jsonschema:"team size range"`
	DevelopmentApproach string `json:"development_approach,omitempty"  jsonschema:"development approach, e.g. agile"`
	QualityRequirements string `json:"quality_requirements,omitempty"  jsonschema:"quality requirements"`
	TestingStrategy     string `json:"testing_strategy,omitempty"      jsonschema:"testing strategy"`
	Timeline            string `json:"timeline,omitempty"              jsonschema:"delivery timeline"`
	AgentCoordination   string `json:"agent_coordination,omitempty"    jsonschema:"human/agent coordination preference"`
	TargetAudience      string `json:"target_audience,omitempty"       jsonschema:"who the project serves"`
	BusinessValue       string `json:"business_value,omitempty"        jsonschema:"business value statement"`
}

// toInfo converts Answers to the internal questionnaire map.
func (a Answers) toInfo() project.Info {
	return project.Info{
		"name":                 a.Name,
		"description":          a.Description,
		"tech_stack":           a.TechStack,
		"architecture":         a.Architecture,
		"team_size":            a.TeamSize,
		"development_approach": a.DevelopmentApproach,
		"quality_requirements": a.QualityRequirements,
		"testing_strategy":     a.TestingStrategy,
		"timeline":             a.Timeline,
		"agent_coordination":   a.AgentCoordination,
		"target_audience":      a.TargetAudience,
		"business_value":       a.BusinessValue,
	}
}

// StepOutput is the common result for document-emitting tools.
type StepOutput struct {
	ProjectDir string `json:"project_dir" jsonschema:"project directory operated on"`
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	ProjectRoot string   `json:"project_root"       jsonschema:"resolved target project root"`
	SpecsDir    string   `json:"specs_dir"          jsonschema:"directory holding numbered projects"`
	Projects    []string `json:"projects,omitempty" jsonschema:"existing project directory names, oldest first"`
	AIAvailable bool     `json:"ai_available"       jsonschema:"whether the external AI CLI was found in PATH"`
}

func handleStatus(driver *workflow.Driver) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		out := StatusOutput{
			ProjectRoot: driver.Config.ProjectRoot(),
			SpecsDir:    driver.Config.SpecsDir(),
			AIAvailable: driver.Emitter.Runner.Available(),
		}

		entries, err := os.ReadDir(out.SpecsDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					out.Projects = append(out.Projects, entry.Name())
				}
			}
		}
		return nil, out, nil
	}
}

// --- Discovery tool ---

// DiscoveryInput is the input for the discovery tool.
type DiscoveryInput struct {
	Answers
	Existing bool `json:"existing,omitempty" jsonschema:"infer answers from files in the working directory instead of using the supplied ones"`
}

func handleDiscovery(driver *workflow.Driver) mcp.ToolHandlerFor[DiscoveryInput, StepOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DiscoveryInput) (*mcp.CallToolResult, StepOutput, error) {
		var info project.Info
		if input.Existing {
			info = workflow.DetectInfo(driver.Config.WorkDir, input.Description)
			if input.Name != "" {
				info["name"] = input.Name
			}
		} else {
			if input.Name == "" {
				return nil, StepOutput{}, fmt.Errorf("name is required unless existing=true")
			}
			info = input.Answers.toInfo()
		}

		dir, err := driver.Discovery(ctx, info)
		if err != nil {
			return nil, StepOutput{}, fmt.Errorf("running discovery: %w", err)
		}
		return nil, StepOutput{ProjectDir: dir}, nil
	}
}

// --- Step tools (planning, context systems, coordination framework) ---

// StepInput selects the project directory for a standalone step.
type StepInput struct {
	ProjectDir string `json:"project_dir,omitempty" jsonschema:"project directory; defaults to the most recently created one"`
}

// stepFunc adapts one Driver step to a tool handler.
func stepFunc(driver *workflow.Driver, run func(context.Context, string, project.Info) error) mcp.ToolHandlerFor[StepInput, StepOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StepInput) (*mcp.CallToolResult, StepOutput, error) {
		dir, err := driver.ResolveDir(input.ProjectDir)
		if err != nil {
			return nil, StepOutput{}, err
		}
		if err := run(ctx, dir, nil); err != nil {
			return nil, StepOutput{}, err
		}
		return nil, StepOutput{ProjectDir: dir}, nil
	}
}

func handlePlanning(driver *workflow.Driver) mcp.ToolHandlerFor[StepInput, StepOutput] {
	return stepFunc(driver, driver.Planning)
}

func handleContextSystems(driver *workflow.Driver) mcp.ToolHandlerFor[StepInput, StepOutput] {
	return stepFunc(driver, driver.ContextSystems)
}

func handleCoordination(driver *workflow.Driver) mcp.ToolHandlerFor[StepInput, StepOutput] {
	return stepFunc(driver, driver.Coordination)
}

// --- Complete workflow tool ---

// CompleteInput is the input for the complete_workflow tool.
type CompleteInput struct {
	Answers
}

func handleComplete(driver *workflow.Driver) mcp.ToolHandlerFor[CompleteInput, StepOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CompleteInput) (*mcp.CallToolResult, StepOutput, error) {
		if input.Name == "" {
			return nil, StepOutput{}, fmt.Errorf("name is required")
		}

		dir, err := driver.Complete(ctx, input.Answers.toInfo())
		if err != nil {
			return nil, StepOutput{}, fmt.Errorf("running complete workflow: %w", err)
		}
		return nil, StepOutput{ProjectDir: filepath.Clean(dir)}, nil
	}
}
