package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder")
	}
	if handler != nil {
		t.Error("disabled setup should not expose a handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestSetupEnabledWiresInstruments(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Errorf("shutdown: %v", err)
		}
	}()
	if handler == nil {
		t.Fatal("expected a Prometheus handler")
	}
	if rec.otel == nil {
		t.Fatal("expected otel instruments")
	}

	// Recording through the otel path should not panic.
	rec.RecordFetchAttempt("daysmart", 0, nil)
	rec.RecordDelivery("message", errors.New("x"))
	rec.RecordWorkflowRun("benchapp", "posted")
	rec.RecordHTTPRequest("POST", "/notify", 200, 0)
}

func TestSetupPropagatesReaderFailure(t *testing.T) {
	orig := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry exploded")
	}
	defer func() { promReaderFactory = orig }()

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil {
		t.Fatal("expected error")
	}
}
