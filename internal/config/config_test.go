package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"filings/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantRaw := filepath.Join(tempHome, ".local", "share", "filings", "raw")
	if cfg.Paths.RawDir != wantRaw {
		t.Fatalf("unexpected raw dir: got %q want %q", cfg.Paths.RawDir, wantRaw)
	}
	if cfg.Paths.OutputDir != filepath.Join(tempHome, ".local", "share", "filings", "final") {
		t.Fatalf("unexpected output dir: %q", cfg.Paths.OutputDir)
	}
	if !cfg.Phases.Structural || !cfg.Phases.Identity || !cfg.Phases.StateCleaning ||
		!cfg.Phases.NationalStandards || !cfg.Phases.FinalProcessing {
		t.Fatal("expected all phases enabled by default")
	}
	if cfg.Ledger.Enabled {
		t.Fatal("expected ledger disabled by default")
	}
	if !cfg.Errors.ContinueOnStateError {
		t.Fatal("expected continue_on_state_error enabled by default")
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("unexpected log format: %q", cfg.Logging.Format)
	}
	if cfg.Output.FinalCSV != "candidate_filings_final.csv" {
		t.Fatalf("unexpected final csv name: %q", cfg.Output.FinalCSV)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "filings.toml")

	type payload struct {
		Paths struct {
			RawDir string `toml:"raw_dir"`
		} `toml:"paths"`
		Phases struct {
			NationalStandards bool `toml:"national_standards"`
		} `toml:"phases"`
		Errors struct {
			ContinueOnPhaseError bool `toml:"continue_on_phase_error"`
		} `toml:"errors"`
		Ledger struct {
			Enabled bool   `toml:"enabled"`
			Path    string `toml:"path"`
		} `toml:"ledger"`
	}
	custom := payload{}
	custom.Paths.RawDir = filepath.Join(tempDir, "extracts")
	custom.Phases.NationalStandards = false
	custom.Errors.ContinueOnPhaseError = false
	custom.Ledger.Enabled = true
	custom.Ledger.Path = filepath.Join(tempDir, "ledger.db")
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.RawDir != filepath.Join(tempDir, "extracts") {
		t.Fatalf("expected raw dir from file, got %q", cfg.Paths.RawDir)
	}
	if cfg.Phases.NationalStandards {
		t.Fatal("expected national_standards disabled from file")
	}
	if !cfg.Phases.Structural {
		t.Fatal("expected unset phases to keep defaults")
	}
	if cfg.Errors.ContinueOnPhaseError {
		t.Fatal("expected continue_on_phase_error disabled from file")
	}
	if !cfg.Ledger.Enabled {
		t.Fatal("expected ledger enabled from file")
	}
	if cfg.Ledger.Path != filepath.Join(tempDir, "ledger.db") {
		t.Fatalf("unexpected ledger path: %q", cfg.Ledger.Path)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "[phases]") {
		t.Fatalf("sample config missing phases section: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.RawDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty raw dir")
	}

	cfg = config.Default()
	cfg.Ledger.Enabled = true
	cfg.Ledger.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for ledger without path")
	}

	cfg = config.Default()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid log level")
	}

	cfg = config.Default()
	cfg.Output.FinalCSV = "out/final.csv"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for final_csv with path separator")
	}
}

func TestLoggingFormatNormalization(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "filings.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nformat = \"Fancy\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected unknown format to fall back to console, got %q", cfg.Logging.Format)
	}
}
