package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"filings/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The raw directory exists on return; output and log directories are created
// lazily by the code under test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.RawDir = filepath.Join(base, "raw")
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Ledger.Path = filepath.Join(base, "ledger.db")

	if err := os.MkdirAll(cfgVal.Paths.RawDir, 0o755); err != nil {
		t.Fatalf("mkdir raw dir: %v", err)
	}

	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithLedger enables the identity ledger on the test config.
func WithLedger() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Ledger.Enabled = true
	}
}

// WithDisabledPhase turns off a single phase toggle by name.
func WithDisabledPhase(phase string) ConfigOption {
	return func(b *configBuilder) {
		switch phase {
		case "structural":
			b.cfg.Phases.Structural = false
		case "identity":
			b.cfg.Phases.Identity = false
		case "state_cleaning":
			b.cfg.Phases.StateCleaning = false
		case "national_standards":
			b.cfg.Phases.NationalStandards = false
		case "final_processing":
			b.cfg.Phases.FinalProcessing = false
		default:
			b.t.Fatalf("unknown phase %q", phase)
		}
	}
}
