package ledger

import (
	"context"
	"testing"

	"filings/internal/identity"
	"filings/internal/record"
	"filings/internal/testsupport"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithLedger())
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func finalTable(rows ...record.Row) *record.Table {
	t := record.New(record.ColStableID, record.ColFullNameDisplay, record.ColState,
		record.ColOffice, record.ColElectionYear, record.ColParty,
		record.ColFirstAddedDate, record.ColLastUpdatedDate, record.ColActionType)
	for _, row := range rows {
		t.Append(row)
	}
	return t
}

func TestReconcileFirstRunInserts(t *testing.T) {
	store := openTestStore(t)
	table := finalTable(record.Row{
		record.ColStableID:        "abc123def456",
		record.ColFullNameDisplay: "Jane Doe",
		record.ColState:           "Iowa",
		record.ColOffice:          "Governor",
		record.ColElectionYear:    "2022",
		record.ColParty:           "Democratic",
	})

	summary, err := store.Reconcile(context.Background(), table)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Inserts != 1 || summary.Updates != 0 || summary.Unchanged != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	row := table.Rows[0]
	if got := record.String(row[record.ColActionType]); got != identity.ActionInsert {
		t.Fatalf("action_type = %q", got)
	}
	if record.IsBlank(row[record.ColFirstAddedDate]) {
		t.Fatal("first_added_date not set")
	}
	if !record.IsNull(row[record.ColLastUpdatedDate]) {
		t.Fatal("last_updated_date should be null on insert")
	}
	if got := record.String(row[record.ColDataHash]); len(got) != rowHashLength {
		t.Fatalf("data_hash = %q", got)
	}
}

func TestReconcileUnchangedRestoresFirstAdded(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := finalTable(record.Row{
		record.ColStableID:        "abc123def456",
		record.ColFullNameDisplay: "Jane Doe",
		record.ColState:           "Iowa",
		record.ColOffice:          "Governor",
		record.ColElectionYear:    "2022",
		record.ColParty:           "Democratic",
	})
	if _, err := store.Reconcile(ctx, first); err != nil {
		t.Fatal(err)
	}
	firstAdded := record.String(first.Rows[0][record.ColFirstAddedDate])

	second := finalTable(record.Row{
		record.ColStableID:        "abc123def456",
		record.ColFullNameDisplay: "Jane Doe",
		record.ColState:           "Iowa",
		record.ColOffice:          "Governor",
		record.ColElectionYear:    "2022",
		record.ColParty:           "Democratic",
	})
	summary, err := store.Reconcile(ctx, second)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Unchanged != 1 || summary.Inserts != 0 {
		t.Fatalf("summary = %+v", summary)
	}
	row := second.Rows[0]
	if got := record.String(row[record.ColActionType]); got != identity.ActionNoChange {
		t.Fatalf("action_type = %q", got)
	}
	if got := record.String(row[record.ColFirstAddedDate]); got != firstAdded {
		t.Fatalf("first_added_date = %q, want %q restored", got, firstAdded)
	}
}

func TestReconcileContentChangeIsUpdate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := finalTable(record.Row{
		record.ColStableID:        "abc123def456",
		record.ColFullNameDisplay: "Jane Doe",
		record.ColState:           "Iowa",
		record.ColOffice:          "Governor",
		record.ColElectionYear:    "2022",
		record.ColParty:           "Democratic",
	})
	if _, err := store.Reconcile(ctx, first); err != nil {
		t.Fatal(err)
	}
	firstAdded := record.String(first.Rows[0][record.ColFirstAddedDate])

	changed := finalTable(record.Row{
		record.ColStableID:        "abc123def456",
		record.ColFullNameDisplay: "Jane Doe",
		record.ColState:           "Iowa",
		record.ColOffice:          "Governor",
		record.ColElectionYear:    "2022",
		record.ColParty:           "Nonpartisan",
	})
	summary, err := store.Reconcile(ctx, changed)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Updates != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	row := changed.Rows[0]
	if got := record.String(row[record.ColActionType]); got != identity.ActionUpdate {
		t.Fatalf("action_type = %q", got)
	}
	if got := record.String(row[record.ColFirstAddedDate]); got != firstAdded {
		t.Fatalf("first_added_date = %q, want %q preserved", got, firstAdded)
	}
	if record.IsNull(row[record.ColLastUpdatedDate]) {
		t.Fatal("last_updated_date should be set on update")
	}
}

func TestRowHashIgnoresProcessingMetadata(t *testing.T) {
	columns := []string{record.ColStableID, record.ColParty, record.ColProcessingTimestamp}
	a := record.Row{record.ColStableID: "id1", record.ColParty: "Democratic", record.ColProcessingTimestamp: "t1"}
	b := record.Row{record.ColStableID: "id1", record.ColParty: "Democratic", record.ColProcessingTimestamp: "t2"}
	if RowHash(a, columns) != RowHash(b, columns) {
		t.Fatal("processing_timestamp must not affect the hash")
	}
	c := record.Row{record.ColStableID: "id1", record.ColParty: "Republican", record.ColProcessingTimestamp: "t1"}
	if RowHash(a, columns) == RowHash(c, columns) {
		t.Fatal("content change must affect the hash")
	}
}

func TestRunHistoryAndStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.BeginRun(ctx, "run-1", 3); err != nil {
		t.Fatal(err)
	}
	if err := store.FinishRun(ctx, "run-1", &Summary{Records: 10, Inserts: 10}); err != nil {
		t.Fatal(err)
	}

	stats, err := store.GetStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Runs != 1 {
		t.Fatalf("runs = %d", stats.Runs)
	}
	if !stats.LastRun.Valid {
		t.Fatal("last run not recorded")
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	table := finalTable(record.Row{
		record.ColStableID:        "abc123def456",
		record.ColFullNameDisplay: "Jane Doe",
		record.ColState:           "Iowa",
		record.ColOffice:          "Governor",
		record.ColElectionYear:    "2022",
	})
	if _, err := store.Reconcile(ctx, table); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	stats, err := store.GetStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Identities != 0 {
		t.Fatalf("identities = %d after clear", stats.Identities)
	}
}

func TestOpenRejectsConcurrentUse(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLedger())

	first, err := Open(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()

	if _, err := Open(cfg); err == nil {
		t.Fatal("expected second open to fail while lock is held")
	}
}
