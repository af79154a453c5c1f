// Package statecleaner normalizes structured records per state: names
// split into parts with a rebuilt display form, years coerced to plain
// strings, empty-name rows dropped, exact duplicates removed. States
// deviate from the shared path only through small declarative rules.
package statecleaner
