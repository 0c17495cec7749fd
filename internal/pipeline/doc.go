// Package pipeline orchestrates image discovery, per-file analysis, and
// report generation.
//
// Implemented:
//   - Discover: path resolution (default dir, directory scan, explicit
//     files) with deterministic ordering (discover.go)
//   - AnalyzeImage: parse name → probe → decode → sample → measure
//     (analyze.go)
//   - Run: the sequential batch loop, skip/fail accounting, report assembly
//     and writing (runner.go)
//   - RunStats with ExitCode (stats.go)
//
// Error taxonomy: an unparseable filename is a skip, a probe or decode
// failure is a per-file failure, and both leave the batch running. Only an
// empty input set, a batch with zero successful analyses, or an unwritable
// report is fatal.
package pipeline
