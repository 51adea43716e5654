package main

import (
	"github.com/leizerowicz/project-start/internal/ask"
	"github.com/leizerowicz/project-start/internal/project"
)

// Multiple-choice option sets for the questionnaire. The starred entry is
// the default returned on blank input.
var (
	architectureChoices = []string{
		"Monolithic",
		"Microservices",
		"Serverless",
		"Event-driven",
		"Layered (n-tier)",
		"Undecided",
	}
	teamSizeChoices = []string{
		"Solo",
		"2-5",
		"6-10",
		"11-25",
		"25+",
	}
	approachChoices = []string{
		"Agile / Scrum",
		"Kanban",
		"Waterfall",
		"Ad hoc",
	}
	testingChoices = []string{
		"Test-driven development",
		"Tests alongside features",
		"Tests after features",
		"Manual testing only",
	}
)

// Coordination answers mapped from the yes/no question.
const (
	coordinationMultiAgent  = "Multi-agent coordination with specialized roles"
	coordinationSingleAgent = "Single agent or human-driven development"
)

// runQuestionnaire collects the project answers interactively. description
// pre-fills the description question when non-empty. Returns ErrInputClosed
// (wrapped) when input ends before the required questions are answered.
func runQuestionnaire(asker *ask.Asker, description string) (project.Info, error) {
	info := project.Info{}

	name, err := asker.Question("Project name", "", true)
	if err != nil {
		return nil, err
	}
	info["name"] = name

	desc, err := asker.Question("One-sentence description", description, true)
	if err != nil {
		return nil, err
	}
	info["description"] = desc

	stack, err := asker.Question("Tech stack (languages, frameworks, hosting)", "", false)
	if err != nil {
		return nil, err
	}
	info["tech_stack"] = stack

	arch, err := asker.MultipleChoice("Architecture style:", architectureChoices, "Undecided")
	if err != nil {
		return nil, err
	}
	info["architecture"] = arch

	team, err := asker.MultipleChoice("Team size:", teamSizeChoices, "Solo")
	if err != nil {
		return nil, err
	}
	info["team_size"] = team

	approach, err := asker.MultipleChoice("Development approach:", approachChoices, "Agile / Scrum")
	if err != nil {
		return nil, err
	}
	info["development_approach"] = approach

	quality, err := asker.Question("Quality requirements (performance, security, compliance)", "", false)
	if err != nil {
		return nil, err
	}
	info["quality_requirements"] = quality

	testing, err := asker.MultipleChoice("Testing strategy:", testingChoices, "Tests alongside features")
	if err != nil {
		return nil, err
	}
	info["testing_strategy"] = testing

	timeline, err := asker.Question("Timeline (e.g. MVP in 3 months)", "", false)
	if err != nil {
		return nil, err
	}
	info["timeline"] = timeline

	multiAgent, err := asker.YesNo("Coordinate multiple AI agents on this project?", false)
	if err != nil {
		return nil, err
	}
	if multiAgent {
		info["agent_coordination"] = coordinationMultiAgent
	} else {
		info["agent_coordination"] = coordinationSingleAgent
	}

	audience, err := asker.Question("Target audience", "", false)
	if err != nil {
		return nil, err
	}
	info["target_audience"] = audience

	value, err := asker.Question("Business value (why this project matters)", "", false)
	if err != nil {
		return nil, err
	}
	info["business_value"] = value

	return info, nil
}
