// Package identity implements stable-identity resolution for candidate
// filing records.
//
// Every valid structured record receives a deterministic stable_id computed
// from its normalized (candidate_name, state, office, election_year) tuple,
// so the same logical filing always resolves to the same identity across
// runs and across cosmetic cleaning changes. Records that encode "no
// candidate filed" placeholders, or that lack any identity-bearing field,
// are filtered out before hashing.
//
// Duplicate tracking lives in an explicit Session so that resolver state
// never leaks between unrelated pipeline runs.
package identity
