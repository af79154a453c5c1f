// Package standards applies the cross-state normalization pass: merge
// per-state tables, map offices and parties to a national vocabulary
// while preserving source values, normalize casing, states, dates,
// counties, and phones, convert election types to binary columns, and
// collapse county and stable-ID duplicates. The pass is best effort
// and degrades rather than failing the run.
package standards
