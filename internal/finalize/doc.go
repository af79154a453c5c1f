// Package finalize produces the canonical output table: schema
// completion, display-name resolution, value repairs left over from
// numeric coercion, identity backfill, deterministic ordering, and
// processing metadata.
package finalize
