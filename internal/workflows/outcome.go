package workflows

import "strings"

// Workflow outcome statuses.
const (
	StatusPosted  = "posted"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Outcome is the result of one workflow within an invocation.
type Outcome struct {
	Workflow string
	Status   string
	Note     string
}

// Summarize folds per-workflow outcomes into the response message.
func Summarize(outcomes []Outcome) string {
	if len(outcomes) == 0 {
		return "No workflows executed"
	}
	notes := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		notes = append(notes, o.Note)
	}
	return strings.Join(notes, "; ")
}
