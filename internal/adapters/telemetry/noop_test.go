package telemetry_test

import (
	"context"
	"testing"

	"weave/internal/adapters/telemetry"
	"weave/internal/core/domain"
)

func TestNoOp(t *testing.T) {
	n := telemetry.NewNoOp()

	ctx, v := n.Record(context.Background(), "setup")
	if ctx == nil || v == nil {
		t.Fatal("expected context and vertex")
	}

	if _, err := v.Stdout().Write([]byte("ignored")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	v.Log(domain.LogLevelInfo, "ignored")
	v.Cached()
	v.Complete(nil)

	if err := n.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
