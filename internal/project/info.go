// Package project holds the questionnaire answers for one run and the
// numbered specs/ directory bookkeeping.
package project

import "strings"

// Keys lists every questionnaire field, in the order the questions are asked.
// The set is fixed: downstream document generation renders all of them, and
// an unanswered field renders as NotSpecified.
var Keys = []string{
	"name",
	"description",
	"tech_stack",
	"architecture",
	"team_size",
	"development_approach",
	"quality_requirements",
	"testing_strategy",
	"timeline",
	"agent_coordination",
	"target_audience",
	"business_value",
}

// NotSpecified is the placeholder rendered for unanswered fields.
const NotSpecified = "Not specified"

// Info maps a question key to its answer. Created once per discovery run,
// read by every document-generation call, never persisted as structured data.
type Info map[string]string

// Field returns the answer for key, or NotSpecified when blank or absent.
func (i Info) Field(key string) string {
	if v := strings.TrimSpace(i[key]); v != "" {
		return v
	}
	return NotSpecified
}

// Name returns the project name field.
func (i Info) Name() string {
	return i.Field("name")
}

// Label turns a question key into a human-readable label for rendered
// documents: "tech_stack" becomes "Tech Stack".
func Label(key string) string {
	words := strings.Split(key, "_")
	for n, w := range words {
		if w == "" {
			continue
		}
		words[n] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
