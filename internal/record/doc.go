// Package record defines the tabular data model shared by every pipeline
// phase.
//
// A Table is an ordered column set plus rows of loosely typed cells; values
// arrive from raw extracts as strings or numbers and stay loosely typed until
// the final consolidation phase pins them down. Helpers in this package cover
// the column-set operations the phases rely on (ensure, dedupe, reorder,
// concat) and the value coercions that keep identity derivation stable in the
// face of upstream type drift.
//
// Tables are mutated in place by the phase that owns them; phases that must
// not damage their input clone first.
package record
