// Package structural turns per-state raw filing exports into a shared
// structured column set. Each state has a Profile describing which
// files belong to it and how its headers map onto the structured
// fields; a single Cleaner drives extraction from those profiles.
package structural
