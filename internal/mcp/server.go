// Package mcp provides a Model Context Protocol server for project-start.
// It exposes the workflow steps as MCP tools so any MCP-capable agent can
// scaffold and extend project documentation without the interactive CLI.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/leizerowicz/project-start/internal/workflow"
)

// NewServer creates an MCP server with all project-start tools registered.
func NewServer(version string, driver *workflow.Driver) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "project-start",
		Version: version,
	}, nil)
	registerTools(server, driver)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that write documents.
// Steps overwrite their own documents on re-run but never delete anything.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all project-start tools to the server.
func registerTools(server *mcp.Server, driver *workflow.Driver) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show the resolved project root, the specs directory, existing project directories, and whether the external AI CLI is available.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(driver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "discovery",
		Description: "Step 1: create a numbered project directory from questionnaire answers and emit the discovery documents (backlog, implementation guide, risk assessment, file outline, constitutional validation, clarification needed).",
		Annotations: writeAnnotations(),
	}, handleDiscovery(driver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "planning",
		Description: "Step 2: emit the five SPARC methodology documents into the project's sparc/ directory. Auto-detects the latest project when no path is given.",
		Annotations: writeAnnotations(),
	}, handlePlanning(driver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "context_systems",
		Description: "Step 3: emit copilot instructions, expert role files, the agent coordination file, and memory snapshot files.",
		Annotations: writeAnnotations(),
	}, handleContextSystems(driver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "coordination_framework",
		Description: "Step 4: emit the six multi-agent coordination framework documents.",
		Annotations: writeAnnotations(),
	}, handleCoordination(driver))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "complete_workflow",
		Description: "Run all four steps in order against a newly created project directory.",
		Annotations: writeAnnotations(),
	}, handleComplete(driver))
}
