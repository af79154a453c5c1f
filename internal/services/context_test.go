package services_test

import (
	"context"
	"testing"

	"filings/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id on empty context")
	}

	ctx = services.WithRunID(ctx, "run-123")
	ctx = services.WithPhase(ctx, "identity")
	ctx = services.WithState(ctx, "ohio")

	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("unexpected run id: %q ok=%v", id, ok)
	}
	if phase, ok := services.PhaseFromContext(ctx); !ok || phase != "identity" {
		t.Fatalf("unexpected phase: %q ok=%v", phase, ok)
	}
	if state, ok := services.StateFromContext(ctx); !ok || state != "ohio" {
		t.Fatalf("unexpected state: %q ok=%v", state, ok)
	}
}

func TestContextHelpersIgnoreEmptyValues(t *testing.T) {
	ctx := services.WithPhase(context.Background(), "")
	if _, ok := services.PhaseFromContext(ctx); ok {
		t.Fatal("expected empty phase to be dropped")
	}
}
