// Package services defines shared utilities consumed by the pipeline phases.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers, phase names, and state
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that tag failures for
//     consistent classification (recoverable vs fatal).
//
// Use these helpers when wiring new phase logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package services
