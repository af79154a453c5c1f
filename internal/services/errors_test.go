package services_test

import (
	"errors"
	"strings"
	"testing"

	"filings/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrParse, "structural", "extract", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrParse) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"structural", "extract", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "pipeline failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}

func TestIsRecoverable(t *testing.T) {
	configErr := services.Wrap(services.ErrConfiguration, "standards", "load", "bad mapping", nil)
	if services.IsRecoverable(configErr) {
		t.Fatal("expected configuration error to be fatal")
	}

	parseErr := services.Wrap(services.ErrParse, "identity", "resolve", "bad row", errors.New("io"))
	if !services.IsRecoverable(parseErr) {
		t.Fatal("expected parse error to be recoverable")
	}

	if !services.IsRecoverable(nil) {
		t.Fatal("expected nil error to be recoverable")
	}
}
