package config

const (
	defaultRawDir     = "~/.local/share/filings/raw"
	defaultOutputDir  = "~/.local/share/filings/final"
	defaultLogDir     = "~/.local/share/filings/logs"
	defaultLedgerPath = "~/.local/share/filings/ledger.db"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultFinalCSV   = "candidate_filings_final.csv"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			RawDir:    defaultRawDir,
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Phases: Phases{
			Structural:        true,
			Identity:          true,
			StateCleaning:     true,
			NationalStandards: true,
			FinalProcessing:   true,
		},
		Errors: Errors{
			ContinueOnStateError: true,
			ContinueOnPhaseError: true,
		},
		Ledger: Ledger{
			Enabled: false,
			Path:    defaultLedgerPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Standards: Standards{
			Office:         true,
			Party:          true,
			ElectionTypes:  true,
			StatewideDedup: true,
		},
		Output: Output{
			FinalCSV: defaultFinalCSV,
		},
	}
}
