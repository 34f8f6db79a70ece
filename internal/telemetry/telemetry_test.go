package telemetry

import (
	"context"
	"testing"
)

func TestDisable(t *testing.T) {
	shutdown := Disable()

	_, span := Tracer("test").Start(context.Background(), "noop")
	if span.IsRecording() {
		t.Error("spans should not record once telemetry is disabled")
	}
	span.End()

	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error: %v", err)
	}
}

func TestGetHostname(t *testing.T) {
	if getHostname() == "" {
		t.Error("getHostname() returned an empty string")
	}
}
