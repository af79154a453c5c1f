// Package pipeline sequences the five processing phases over the raw
// extract directory: structural extraction, identity resolution, state
// cleaning, national standardization, and final consolidation.
//
// Each phase can be disabled by configuration, in which case its input
// passes through unchanged. Failures cleaning a single state are
// isolated when continue_on_state_error is set; the later phases
// degrade instead of failing and report the degraded path in the run
// diagnostics.
package pipeline
