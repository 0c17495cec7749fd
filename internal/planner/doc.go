// Package planner computes the pixel coordinates sampled from each skybox
// screenshot: an evenly spaced vertical gradient ladder and six fixed sky
// zones, all on the horizontal midline.
//
// Implemented:
//   - SamplePoint, Plan (types.go)
//   - BuildPlan: gradient ladder spacing, fixed zone rows, row clamping
//     (planner.go)
//
// Coordinates are pure arithmetic over the image dimensions; the planner
// never touches pixel data. That split keeps the geometry testable without
// decoding images.
package planner
