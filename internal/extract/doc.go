// Package extract reads raw per-state tabular files into tables and writes
// the final consolidated CSV.
//
// Raw extracts arrive however a state's election portal produced them:
// UTF-8, UTF-16, or Latin-1; comma or tab separated; with ragged rows and
// lazy quoting. The parser absorbs all of that, reporting row-level
// anomalies as warnings rather than failures so one bad row never loses a
// file.
package extract
