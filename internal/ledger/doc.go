// Package ledger persists candidate identities across pipeline runs in
// SQLite. Reconciling a finalized table against the ledger classifies
// each row as INSERT, UPDATE, or NO_CHANGE by content hash and restores
// first-seen dates for known identities.
package ledger
