package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"filings/internal/logging"
	"filings/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the reconciliation pipeline over the raw extract directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}

			result, err := pipeline.New(cfg, logger).Run(cmd.Context())
			if err != nil {
				return err
			}
			printRunSummary(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func printRunSummary(w io.Writer, result *pipeline.Result) {
	diag := result.Diagnostics
	colorize := shouldColorize(w)

	fmt.Fprintln(w, renderTable(
		[]string{"Run", "Rows", "States", "Duplicates", "Elapsed"},
		[][]string{{
			diag.RunID,
			strconv.Itoa(result.Table.Len()),
			strconv.Itoa(len(diag.States)),
			strconv.Itoa(diag.Duplicates),
			diag.Duration.Round(timeRounding).String(),
		}},
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
	))

	if len(diag.StateRows) > 0 {
		states := make([]string, 0, len(diag.StateRows))
		for state := range diag.StateRows {
			states = append(states, state)
		}
		sort.Strings(states)
		rows := make([][]string, 0, len(states))
		for _, state := range states {
			rows = append(rows, []string{state, strconv.Itoa(diag.StateRows[state])})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"State", "Cleaned Rows"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}

	for _, se := range diag.StateErrors {
		note := "aborted"
		if se.PassedThrough {
			note = "passed through unchanged"
		}
		fmt.Fprintln(w, renderStatusLine(se.State,
			fmt.Sprintf("%s failed (%s): %v", se.Phase, note, se.Err), colorize))
	}
	if diag.Standardization != nil && diag.Standardization.Degraded() {
		fmt.Fprintln(w, renderStatusLine("standards",
			fmt.Sprintf("degraded to %s pass", diag.Standardization.Mode), colorize))
	}
	if diag.Finalization != nil && diag.Finalization.Degraded() {
		fmt.Fprintln(w, renderStatusLine("finalize",
			fmt.Sprintf("skipped steps: %v", diag.Finalization.FailedSteps), colorize))
	}
	if diag.LedgerError != "" {
		fmt.Fprintln(w, renderStatusLine("ledger", diag.LedgerError, colorize))
	}

	if diag.Ledger != nil {
		fmt.Fprintln(w, renderTable(
			[]string{"Ledger", "Inserts", "Updates", "Unchanged"},
			[][]string{{
				strconv.Itoa(diag.Ledger.Records),
				strconv.Itoa(diag.Ledger.Inserts),
				strconv.Itoa(diag.Ledger.Updates),
				strconv.Itoa(diag.Ledger.Unchanged),
			}},
			[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
		))
	}

	fmt.Fprintf(w, "Final output: %s\n", diag.OutputPath)
}
