// Package naming parses skybox screenshot filenames into orientation and
// hour components.
//
// Screenshots follow the convention <orientation><hour>.<ext>, where
// orientation is one of W, E, N, S, U (west, east, north, south, up) and
// hour is a zero-padded value from 00 to 23. Matching is case-insensitive
// on the stem; the extension is ignored. Anything else is "no match" —
// callers skip such files rather than treating them as errors.
package naming
