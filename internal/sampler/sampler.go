package sampler

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/duskfield/skysampler/internal/planner"
)

// Sample reads the pixel at (x, y), where coordinates are relative to the
// image's top-left corner. ok is false when the point lies outside the
// image or the pixel is fully transparent; callers omit such samples and
// keep going.
//
// Grayscale sources broadcast their single channel to R, G, and B through
// the color model conversion, so every successful sample is a full triple.
func Sample(img image.Image, x, y int) (ColorSample, bool) {
	b := img.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return ColorSample{}, false
	}

	col, ok := colorful.MakeColor(img.At(b.Min.X+x, b.Min.Y+y))
	if !ok {
		return ColorSample{}, false
	}

	return ColorSample{
		RGB: RGB{
			R: int(math.Round(col.R * 255)),
			G: int(math.Round(col.G * 255)),
			B: int(math.Round(col.B * 255)),
		},
		Hex: col.Hex(),
		Normalized: NormRGB{
			R: round3(col.R),
			G: round3(col.G),
			B: round3(col.B),
		},
	}, true
}

// Gradient samples the plan's gradient ladder top to bottom. Failed points
// are dropped; dropped reports how many.
func Gradient(img image.Image, plan planner.Plan) (samples []ColorSample, dropped int) {
	samples = make([]ColorSample, 0, len(plan.Gradient))
	for _, p := range plan.Gradient {
		s, ok := Sample(img, p.X, p.Y)
		if !ok {
			dropped++
			continue
		}
		pos := p.Position
		s.Position = &pos
		samples = append(samples, s)
	}
	return samples, dropped
}

// Zones samples the plan's named zones. Failed zones are left out of the
// map; dropped reports how many.
func Zones(img image.Image, plan planner.Plan) (zones map[string]ColorSample, dropped int) {
	zones = make(map[string]ColorSample, len(plan.Zones))
	for _, p := range plan.Zones {
		s, ok := Sample(img, p.X, p.Y)
		if !ok {
			dropped++
			continue
		}
		zones[p.Zone] = s
	}
	return zones, dropped
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
