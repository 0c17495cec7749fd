// Package report assembles and writes the two output artifacts: the full
// analysis report and the reduced engine-ready color export.
//
// Both are deterministic functions of the analyzed set. Analyses are sorted
// by (orientation, hour) before serialization, the summary lists distinct
// orientations in ascending order, and serialization preserves struct field
// order, so byte-identical inputs always produce byte-identical files.
package report
