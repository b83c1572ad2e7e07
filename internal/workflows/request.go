package workflows

import (
	"strings"

	"hockey-notify-service/internal/providers"
)

// Request modes.
const (
	ModeTest       = "test"
	ModeProduction = "production"
)

// Known workflow names; anything else in the payload is ignored.
const (
	WorkflowDaySmart = "daysmart"
	WorkflowBenchApp = "benchapp"
)

// Request is the invocation payload. All configuration travels here; nothing
// request-scoped comes from the environment.
type Request struct {
	Mode               string   `json:"mode"`
	DiscordHookURL     string   `json:"discord_hook_url"`
	TestDiscordHookURL string   `json:"test_discord_hook_url"`
	ICalURL            string   `json:"ical_url"`
	TeamID             string   `json:"team_id"`
	Company            string   `json:"company"`
	Workflows          []string `json:"workflows"`
}

// Response is the only output contract to the caller.
type Response struct {
	Message string `json:"message"`
}

// Validate checks request-level configuration. Violations are ConfigErrors
// and abort the invocation before any network call.
func (r Request) Validate() error {
	switch strings.ToLower(strings.TrimSpace(r.Mode)) {
	case ModeTest, ModeProduction:
	case "":
		return &providers.ConfigError{Field: "mode", Message: "required"}
	default:
		return &providers.ConfigError{Field: "mode", Message: `must be "test" or "production"`}
	}
	if strings.TrimSpace(r.DiscordHookURL) == "" {
		return &providers.ConfigError{Field: "discord_hook_url", Message: "required"}
	}
	if strings.TrimSpace(r.TeamID) == "" {
		return &providers.ConfigError{Field: "team_id", Message: "required"}
	}
	if strings.TrimSpace(r.Company) == "" {
		return &providers.ConfigError{Field: "company", Message: "required"}
	}
	return nil
}

// TargetHook selects the webhook for the request mode. Test mode falls back
// to the production hook when no test hook is configured.
func (r Request) TargetHook() string {
	if strings.EqualFold(strings.TrimSpace(r.Mode), ModeTest) && r.TestDiscordHookURL != "" {
		return r.TestDiscordHookURL
	}
	return r.DiscordHookURL
}

// NormalizedWorkflows returns the workflows to run, in execution order:
// DaySmart always before BenchApp. An empty or absent list defaults to
// DaySmart for backward compatibility; unknown names are dropped, not errors.
func (r Request) NormalizedWorkflows() []string {
	requested := map[string]bool{}
	for _, name := range r.Workflows {
		requested[strings.ToLower(strings.TrimSpace(name))] = true
	}
	if len(r.Workflows) == 0 {
		requested[WorkflowDaySmart] = true
	}

	var out []string
	for _, name := range []string{WorkflowDaySmart, WorkflowBenchApp} {
		if requested[name] {
			out = append(out, name)
		}
	}
	return out
}
