package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration for pipeline runs.
type Paths struct {
	RawDir    string `toml:"raw_dir"`
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Phases toggles individual pipeline phases. A disabled phase passes its
// input through unchanged.
type Phases struct {
	Structural        bool `toml:"structural"`
	Identity          bool `toml:"identity"`
	StateCleaning     bool `toml:"state_cleaning"`
	NationalStandards bool `toml:"national_standards"`
	FinalProcessing   bool `toml:"final_processing"`
}

// Errors controls failure isolation during a run.
type Errors struct {
	// ContinueOnStateError substitutes a state's unmodified input when its
	// cleaner fails, instead of aborting the run.
	ContinueOnStateError bool `toml:"continue_on_state_error"`
	// ContinueOnPhaseError lets a degraded phase hand its input through
	// instead of propagating the failure. Final processing consults it
	// when a cleanup step fails.
	ContinueOnPhaseError bool `toml:"continue_on_phase_error"`
}

// Ledger contains configuration for the cross-run identity ledger.
type Ledger struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Standards toggles the cross-state standardization passes.
type Standards struct {
	Office         bool `toml:"office"`
	Party          bool `toml:"party"`
	ElectionTypes  bool `toml:"election_types"`
	StatewideDedup bool `toml:"statewide_dedup"`
}

// Output controls the file products of a run.
type Output struct {
	FinalCSV       string `toml:"final_csv"`
	SaveStructured bool   `toml:"save_structured"`
	SaveCleaned    bool   `toml:"save_cleaned"`
}

// Config encapsulates all configuration values for the filings pipeline.
//
// Configuration sections by subsystem:
//   - Paths: raw extract, output, and log directories
//   - Phases: the five pipeline phase toggles
//   - Errors: per-state and per-step failure isolation
//   - Ledger: SQLite identity ledger for cross-run reconciliation
//   - Logging: log format and level
//   - Standards: national standardization pass toggles
//   - Output: final CSV name and intermediate file saving
type Config struct {
	Paths     Paths     `toml:"paths"`
	Phases    Phases    `toml:"phases"`
	Errors    Errors    `toml:"errors"`
	Ledger    Ledger    `toml:"ledger"`
	Logging   Logging   `toml:"logging"`
	Standards Standards `toml:"standards"`
	Output    Output    `toml:"output"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/filings/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/filings/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("filings.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a pipeline run writes to.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if c.Ledger.Enabled && strings.TrimSpace(c.Ledger.Path) != "" {
		if err := os.MkdirAll(filepath.Dir(c.Ledger.Path), 0o755); err != nil {
			return fmt.Errorf("create ledger directory: %w", err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
