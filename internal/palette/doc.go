// Package palette extracts accent color palettes from skybox screenshots.
// It is an optional enrichment of the per-image analysis: the dominant path
// quantizes the whole frame and picks diverse representatives, the kmeans
// path clusters a pixel subsample. kmeans uses random initialization, so
// its palettes can differ between runs; the dominant path is deterministic.
package palette
