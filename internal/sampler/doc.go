// Package sampler reads pixel colors from decoded skybox screenshots and
// measures overall brightness.
//
// Implemented:
//   - ColorSample, RGB, NormRGB, Brightness (types.go)
//   - Sample: single-pixel read with bounds and transparency checks;
//     Gradient and Zones walk a planner.Plan (sampler.go)
//   - Measure: 100x100 thumbnail, Rec. 601 luma mean (brightness.go)
//   - Decode: scoped open/decode/close per image (decoder.go)
//
// Individual sample failures are dropped rather than failing the image;
// an image with zero usable samples still analyzes (empty gradient and
// zones), and the caller decides what to do with it.
package sampler
