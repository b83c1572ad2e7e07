package workflows

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/mo"

	"hockey-notify-service/internal/benchapp"
	"hockey-notify-service/internal/domain/schedule"
	"hockey-notify-service/internal/logging"
	"hockey-notify-service/internal/metrics"
)

// ScheduleProvider looks up the next game for a team and renders the reminder.
type ScheduleProvider interface {
	NextGame(ctx context.Context, teamID, company string, now time.Time) (mo.Option[schedule.Game], error)
	RenderMessage(game schedule.Game) string
}

// FeedFetcher retrieves calendar events from a published iCal feed.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]schedule.CalendarEvent, error)
}

// Notifier delivers content to a Discord webhook.
type Notifier interface {
	PostMessage(ctx context.Context, hookURL, content string) error
	PostAttachment(ctx context.Context, hookURL, filename string, data []byte, caption string) error
}

// Runner executes the requested workflows sequentially and folds their
// outcomes into a single summary.
type Runner struct {
	schedule ScheduleProvider
	feed     FeedFetcher
	notifier Notifier
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

func NewRunner(provider ScheduleProvider, feed FeedFetcher, notifier Notifier, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	return &Runner{
		schedule: provider,
		feed:     feed,
		notifier: notifier,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Run validates the request, executes each requested workflow in order, and
// returns the combined summary. Only configuration problems fail the
// invocation; workflow failures are reported in the summary instead.
func (r *Runner) Run(ctx context.Context, req Request) (Response, error) {
	if err := req.Validate(); err != nil {
		return Response{}, err
	}

	hook := req.TargetHook()
	names := req.NormalizedWorkflows()

	var outcomes []Outcome
	for _, name := range names {
		var outcome Outcome
		switch name {
		case WorkflowDaySmart:
			outcome = r.runDaySmart(ctx, req, hook)
		case WorkflowBenchApp:
			outcome = r.runBenchApp(ctx, req, hook)
		}
		r.metrics.RecordWorkflowRun(outcome.Workflow, outcome.Status)
		logging.Info(r.logger, "workflow finished",
			logging.FieldWorkflow, outcome.Workflow,
			"status", outcome.Status,
			"note", outcome.Note,
		)
		outcomes = append(outcomes, outcome)
	}

	return Response{Message: Summarize(outcomes)}, nil
}

func (r *Runner) runDaySmart(ctx context.Context, req Request, hook string) Outcome {
	start := r.now()
	next, err := r.schedule.NextGame(ctx, req.TeamID, req.Company, start)
	r.metrics.RecordFetchAttempt("daysmart", r.now().Sub(start), err)
	if err != nil {
		logging.Error(r.logger, "next game lookup failed", err,
			logging.FieldWorkflow, WorkflowDaySmart,
			logging.FieldTeamID, req.TeamID,
		)
		return Outcome{
			Workflow: WorkflowDaySmart,
			Status:   StatusFailed,
			Note:     fmt.Sprintf("DaySmart lookup failed: %v", err),
		}
	}

	game, ok := next.Get()
	if !ok {
		return Outcome{
			Workflow: WorkflowDaySmart,
			Status:   StatusSkipped,
			Note:     "DaySmart: no upcoming games (skipped)",
		}
	}

	err = r.notifier.PostMessage(ctx, hook, r.schedule.RenderMessage(game))
	r.metrics.RecordDelivery("message", err)
	if err != nil {
		logging.Error(r.logger, "reminder post failed", err,
			logging.FieldWorkflow, WorkflowDaySmart,
		)
		return Outcome{
			Workflow: WorkflowDaySmart,
			Status:   StatusFailed,
			Note:     fmt.Sprintf("DaySmart post failed: %v", err),
		}
	}

	return Outcome{
		Workflow: WorkflowDaySmart,
		Status:   StatusPosted,
		Note:     "DaySmart message posted",
	}
}

func (r *Runner) runBenchApp(ctx context.Context, req Request, hook string) Outcome {
	if req.ICalURL == "" {
		return Outcome{
			Workflow: WorkflowBenchApp,
			Status:   StatusSkipped,
			Note:     "BenchApp: skipped (no ical_url)",
		}
	}

	start := r.now()
	events, err := r.feed.Fetch(ctx, req.ICalURL)
	r.metrics.RecordFetchAttempt("ical", r.now().Sub(start), err)
	if err != nil {
		logging.Error(r.logger, "calendar fetch failed", err,
			logging.FieldWorkflow, WorkflowBenchApp,
		)
		return Outcome{
			Workflow: WorkflowBenchApp,
			Status:   StatusFailed,
			Note:     fmt.Sprintf("BenchApp CSV generation failed: %v", err),
		}
	}

	cutoff := r.now()
	data, err := benchapp.Generate(events, cutoff)
	if err != nil {
		return Outcome{
			Workflow: WorkflowBenchApp,
			Status:   StatusFailed,
			Note:     fmt.Sprintf("BenchApp CSV generation failed: %v", err),
		}
	}

	if !benchapp.HasRows(data) {
		return Outcome{
			Workflow: WorkflowBenchApp,
			Status:   StatusSkipped,
			Note:     "BenchApp: no upcoming games (skipped)",
		}
	}

	err = r.notifier.PostAttachment(ctx, hook, benchapp.Filename, data, benchapp.Caption(events, cutoff))
	r.metrics.RecordDelivery("attachment", err)
	if err != nil {
		logging.Error(r.logger, "schedule post failed", err,
			logging.FieldWorkflow, WorkflowBenchApp,
		)
		return Outcome{
			Workflow: WorkflowBenchApp,
			Status:   StatusFailed,
			Note:     fmt.Sprintf("BenchApp post failed: %v", err),
		}
	}

	return Outcome{
		Workflow: WorkflowBenchApp,
		Status:   StatusPosted,
		Note:     "BenchApp CSV posted",
	}
}
