package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"filings/internal/config"
	"filings/internal/extract"
	"filings/internal/finalize"
	"filings/internal/identity"
	"filings/internal/ledger"
	"filings/internal/logging"
	"filings/internal/record"
	"filings/internal/services"
	"filings/internal/standards"
	"filings/internal/statecleaner"
	"filings/internal/structural"
)

// Phase names used in logs, diagnostics, and wrapped errors.
const (
	PhaseStructural        = "structural"
	PhaseIdentity          = "identity"
	PhaseStateCleaning     = "state_cleaning"
	PhaseNationalStandards = "national_standards"
	PhaseFinalProcessing   = "final_processing"
)

// StateError records a failure isolated to a single state. PassedThrough
// is true when the state's input was substituted for the failed phase's
// output instead of aborting the run.
type StateError struct {
	State         string
	Phase         string
	Err           error
	PassedThrough bool
}

// Diagnostics summarizes one run. Degraded paths taken by the later
// phases are surfaced here, not only in logs.
type Diagnostics struct {
	RunID       string
	StartedAt   time.Time
	Duration    time.Duration
	States      []string
	StateRows   map[string]int
	StateErrors []StateError
	Duplicates  int

	Standardization *standards.Report
	Finalization    *finalize.Report

	Ledger      *ledger.Summary
	LedgerError string

	OutputPath string
}

// Result is the product of a run: the canonical table plus diagnostics.
// The table may be empty; an empty table is the fatal-error signal for
// downstream consumers, not a crash.
type Result struct {
	Table       *record.Table
	Diagnostics *Diagnostics
}

// Runner sequences the five phases over the configured raw directory.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	clock  func() time.Time

	// cleanerFor is swappable for tests.
	cleanerFor func(state string, logger *slog.Logger) (statecleaner.Cleaner, error)
}

func New(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:        cfg,
		logger:     logging.NewComponentLogger(logger, "pipeline"),
		clock:      time.Now,
		cleanerFor: statecleaner.CleanerFor,
	}
}

// Run executes the pipeline once. Phase toggles make disabled phases
// pure pass-throughs; per-state failures are isolated when
// continue_on_state_error is set, otherwise they abort the run.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	diag := &Diagnostics{
		RunID:     runID,
		StartedAt: r.clock(),
		StateRows: make(map[string]int),
	}
	log := r.logger.With(logging.String(logging.FieldRunID, runID))
	log.Info("pipeline run starting", logging.String("raw_dir", r.cfg.Paths.RawDir))

	session := identity.NewSession()

	structured, err := r.runStructural(log, diag)
	if err != nil {
		return nil, err
	}

	resolved, err := r.runIdentity(log, diag, session, structured)
	if err != nil {
		return nil, err
	}

	cleaned, err := r.runStateCleaning(log, diag, resolved)
	if err != nil {
		return nil, err
	}

	merged := r.runStandards(log, diag, cleaned)
	final, err := r.runFinalize(log, diag, merged)
	if err != nil {
		return nil, err
	}

	if r.cfg.Ledger.Enabled {
		if err := r.reconcile(ctx, log, diag, final); err != nil {
			diag.LedgerError = err.Error()
			log.Error("ledger reconciliation failed, output is unreconciled", logging.Error(err))
		}
	}

	if err := r.writeOutputs(log, diag, structured, cleaned, final); err != nil {
		return nil, err
	}

	diag.Duration = time.Since(diag.StartedAt)
	log.Info("pipeline run complete",
		logging.Int(logging.FieldRows, final.Len()),
		logging.Int("states", len(diag.States)),
		logging.Int("duplicates", diag.Duplicates),
		logging.Duration("elapsed", diag.Duration))
	return &Result{Table: final, Diagnostics: diag}, nil
}

// runStructural loads raw extracts for every registered state. States
// with no matching files are skipped silently; a failing state is
// isolated or fatal depending on continue_on_state_error.
func (r *Runner) runStructural(log *slog.Logger, diag *Diagnostics) (map[string]*record.Table, error) {
	tables := make(map[string]*record.Table)
	if !r.cfg.Phases.Structural {
		log.Warn("structural phase disabled, no raw extracts will be loaded")
		return tables, nil
	}

	rawDir, err := config.ExpandPath(r.cfg.Paths.RawDir)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, PhaseStructural, "raw_dir", r.cfg.Paths.RawDir, err)
	}

	for _, state := range structural.States() {
		cleaner, err := structural.CleanerFor(state, r.logger)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, PhaseStructural, "registry", state, err)
		}
		table, err := cleaner.ProcessState(rawDir)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				continue
			}
			if !r.cfg.Errors.ContinueOnStateError {
				return nil, err
			}
			diag.StateErrors = append(diag.StateErrors, StateError{State: state, Phase: PhaseStructural, Err: err})
			log.Error("structural cleaning failed, skipping state",
				logging.String(logging.FieldState, state), logging.Error(err))
			continue
		}
		if table.Empty() {
			continue
		}
		tables[state] = table
		diag.States = append(diag.States, state)
	}

	log.Info("structural phase complete", logging.Int("states", len(tables)))
	return tables, nil
}

func (r *Runner) runIdentity(log *slog.Logger, diag *Diagnostics, session *identity.Session, tables map[string]*record.Table) (map[string]*record.Table, error) {
	if !r.cfg.Phases.Identity {
		log.Info("identity phase disabled, passing records through")
		return tables, nil
	}

	resolver := identity.NewResolver(session, r.logger)
	out := make(map[string]*record.Table, len(tables))
	for _, state := range sortedKeys(tables) {
		resolved, err := resolver.Resolve(state, tables[state])
		if err != nil {
			if !r.cfg.Errors.ContinueOnStateError {
				return nil, services.Wrap(services.ErrValidation, PhaseIdentity, "resolve", state, err)
			}
			diag.StateErrors = append(diag.StateErrors, StateError{
				State: state, Phase: PhaseIdentity, Err: err, PassedThrough: true,
			})
			log.Error("identity resolution failed, passing state through",
				logging.String(logging.FieldState, state), logging.Error(err))
			out[state] = tables[state]
			continue
		}
		out[state] = resolved
	}
	diag.Duplicates = session.Duplicates()
	return out, nil
}

// runStateCleaning applies each state's content cleaner. A state with no
// registered cleaner passes through with a warning; the registry is the
// only seam where a cleaner can be missing, and the pipeline degrades to
// a no-op there instead of failing.
func (r *Runner) runStateCleaning(log *slog.Logger, diag *Diagnostics, tables map[string]*record.Table) (map[string]*record.Table, error) {
	if !r.cfg.Phases.StateCleaning {
		log.Info("state cleaning phase disabled, passing records through")
		return tables, nil
	}

	out := make(map[string]*record.Table, len(tables))
	for _, state := range sortedKeys(tables) {
		cleaner, err := r.cleanerFor(state, r.logger)
		if err != nil {
			log.Warn("no cleaner registered, passing state through",
				logging.String(logging.FieldState, state))
			out[state] = tables[state]
			continue
		}
		cleanedTable, err := cleaner.Clean(tables[state])
		if err != nil {
			if !r.cfg.Errors.ContinueOnStateError {
				return nil, services.Wrap(services.ErrValidation, PhaseStateCleaning, "clean", state, err)
			}
			diag.StateErrors = append(diag.StateErrors, StateError{
				State: state, Phase: PhaseStateCleaning, Err: err, PassedThrough: true,
			})
			log.Error("state cleaning failed, passing state through",
				logging.String(logging.FieldState, state), logging.Error(err))
			out[state] = tables[state]
			continue
		}
		out[state] = cleanedTable
	}

	for state, table := range out {
		diag.StateRows[state] = table.Len()
	}
	return out, nil
}

// runStandards merges and standardizes. Disabled, it still has to
// produce a single table, so the state tables are concatenated
// unmodified in sorted key order.
func (r *Runner) runStandards(log *slog.Logger, diag *Diagnostics, tables map[string]*record.Table) *record.Table {
	if !r.cfg.Phases.NationalStandards {
		log.Info("national standards phase disabled, concatenating state tables")
		return concatStates(tables)
	}

	opts := standards.Options{
		Office:         r.cfg.Standards.Office,
		Party:          r.cfg.Standards.Party,
		ElectionTypes:  r.cfg.Standards.ElectionTypes,
		StatewideDedup: r.cfg.Standards.StatewideDedup,
	}
	out, report := standards.NewStandardizer(opts, r.logger).Apply(tables)
	diag.Standardization = report
	if report.Degraded() {
		log.Warn("national standards degraded",
			logging.String("mode", report.Mode),
			logging.Any("errors", report.Errors))
	}
	return out
}

func (r *Runner) runFinalize(log *slog.Logger, diag *Diagnostics, merged *record.Table) (*record.Table, error) {
	if !r.cfg.Phases.FinalProcessing {
		log.Info("final processing phase disabled, passing records through")
		return merged, nil
	}

	out, report := finalize.NewConsolidator(r.logger).Finalize(merged)
	diag.Finalization = report
	if report.Degraded() {
		if !r.cfg.Errors.ContinueOnPhaseError {
			return nil, services.Wrap(services.ErrValidation, PhaseFinalProcessing, "steps",
				fmt.Sprintf("failed steps: %v", report.FailedSteps), nil)
		}
		log.Warn("final processing skipped failed steps",
			logging.Any("steps", report.FailedSteps))
	}
	return out, nil
}

func (r *Runner) reconcile(ctx context.Context, log *slog.Logger, diag *Diagnostics, final *record.Table) error {
	store, err := ledger.Open(r.cfg)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "ledger", "open", r.cfg.Ledger.Path, err)
	}
	defer store.Close()

	if err := store.BeginRun(ctx, diag.RunID, len(diag.States)); err != nil {
		return services.Wrap(services.ErrTransient, "ledger", "begin_run", diag.RunID, err)
	}
	summary, err := store.Reconcile(ctx, final)
	if err != nil {
		return services.Wrap(services.ErrTransient, "ledger", "reconcile", diag.RunID, err)
	}
	diag.Ledger = summary
	if err := store.FinishRun(ctx, diag.RunID, summary); err != nil {
		return services.Wrap(services.ErrTransient, "ledger", "finish_run", diag.RunID, err)
	}

	log.Info("ledger reconciled",
		logging.Int("inserts", summary.Inserts),
		logging.Int("updates", summary.Updates),
		logging.Int("unchanged", summary.Unchanged))
	return nil
}

func (r *Runner) writeOutputs(log *slog.Logger, diag *Diagnostics, structured, cleaned map[string]*record.Table, final *record.Table) error {
	outDir, err := config.ExpandPath(r.cfg.Paths.OutputDir)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, PhaseFinalProcessing, "output_dir", r.cfg.Paths.OutputDir, err)
	}

	if r.cfg.Output.SaveStructured {
		if err := writeStateTables(filepath.Join(outDir, "structured"), structured); err != nil {
			return err
		}
	}
	if r.cfg.Output.SaveCleaned {
		if err := writeStateTables(filepath.Join(outDir, "cleaned"), cleaned); err != nil {
			return err
		}
	}

	name := r.cfg.Output.FinalCSV
	if name == "" {
		name = "candidate_filings_final.csv"
	}
	path := filepath.Join(outDir, name)
	if err := extract.WriteCSV(path, final); err != nil {
		return services.Wrap(services.ErrTransient, PhaseFinalProcessing, "write_csv", path, err)
	}
	diag.OutputPath = path
	log.Info("wrote final output", logging.String("path", path), logging.Int(logging.FieldRows, final.Len()))
	return nil
}

func writeStateTables(dir string, tables map[string]*record.Table) error {
	for _, state := range sortedKeys(tables) {
		path := filepath.Join(dir, fmt.Sprintf("%s.csv", state))
		if err := extract.WriteCSV(path, tables[state]); err != nil {
			return services.Wrap(services.ErrTransient, PhaseFinalProcessing, "write_state_csv", path, err)
		}
	}
	return nil
}

func concatStates(tables map[string]*record.Table) *record.Table {
	out := record.New()
	for _, state := range sortedKeys(tables) {
		out.Concat(tables[state])
	}
	return out
}

func sortedKeys(tables map[string]*record.Table) []string {
	keys := make([]string, 0, len(tables))
	for k := range tables {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
