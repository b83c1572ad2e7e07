package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type deliveryStats struct {
	posts  int
	errors int
}

// Recorder captures lightweight, in-memory metrics about upstream fetches,
// Discord deliveries, and workflow outcomes. It is intentionally simple so it
// can be swapped for a real backend later.
type Recorder struct {
	mu         sync.Mutex
	sources    map[string]*sourceStats
	deliveries map[string]*deliveryStats
	workflows  map[string]int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources:    make(map[string]*sourceStats),
		deliveries: make(map[string]*deliveryStats),
		workflows:  make(map[string]int),
		otel:       otel,
	}
}

// RecordFetchAttempt increments counters for an upstream fetch and stores the
// last observed latency.
func (r *Recorder) RecordFetchAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.sources[source]
	if !ok {
		stats = &sourceStats{}
		r.sources[source] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(source, duration, err)
	}
}

// RecordDelivery tracks one Discord webhook post attempt. Kind distinguishes
// plain messages from attachments.
func (r *Recorder) RecordDelivery(kind string, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.deliveries[kind]
	if !ok {
		stats = &deliveryStats{}
		r.deliveries[kind] = stats
	}
	stats.posts++
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDelivery(kind, err)
	}
}

// RecordWorkflowRun tracks one workflow outcome (posted, skipped, failed).
func (r *Recorder) RecordWorkflowRun(workflow, outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.workflows[workflow+"/"+outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordWorkflowRun(workflow, outcome)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// FetchCalls returns the total fetch attempts recorded for a source.
func (r *Recorder) FetchCalls(source string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sources[source]; ok {
		return stats.calls
	}
	return 0
}

// FetchErrors returns the failed fetch attempts recorded for a source.
func (r *Recorder) FetchErrors(source string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sources[source]; ok {
		return stats.errors
	}
	return 0
}

// LastFetchLatency returns the last recorded latency for a source.
func (r *Recorder) LastFetchLatency(source string) time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.sources[source]; ok {
		return stats.lastCallLatency
	}
	return 0
}

// Deliveries returns the total delivery attempts for a kind.
func (r *Recorder) Deliveries(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.deliveries[kind]; ok {
		return stats.posts
	}
	return 0
}

// DeliveryErrors returns the failed delivery attempts for a kind.
func (r *Recorder) DeliveryErrors(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.deliveries[kind]; ok {
		return stats.errors
	}
	return 0
}

// WorkflowRuns returns how many times a workflow finished with an outcome.
func (r *Recorder) WorkflowRuns(workflow, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.workflows[workflow+"/"+outcome]
}
