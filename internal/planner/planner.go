package planner

import "math"

// ZoneOffset pairs a named sky zone with its relative vertical position.
type ZoneOffset struct {
	Name   string
	Offset float64
}

// ZoneOffsets lists the sampled sky zones in top-to-bottom order, from just
// below the zenith down to the water line. Report and engine-export fields
// follow this order.
var ZoneOffsets = []ZoneOffset{
	{"zenith", 0.05},
	{"upper_sky", 0.25},
	{"mid_sky", 0.50},
	{"lower_sky", 0.75},
	{"horizon", 0.90},
	{"water_line", 0.95},
}

// BuildPlan computes the sampling coordinates for an image of the given
// dimensions. Every point sits on the horizontal midline (x = width/2).
//
// The gradient ladder spreads numSamples rows evenly from the top of the
// image to the bottom; a single-sample ladder degenerates to the vertical
// midpoint. Zone rows are fixed fractions of the height. All rows are
// clamped to the last pixel row so relative position 1.0 stays in bounds.
func BuildPlan(width, height, numSamples int) Plan {
	x := width / 2

	plan := Plan{
		Gradient: make([]SamplePoint, 0, numSamples),
		Zones:    make([]SamplePoint, 0, len(ZoneOffsets)),
	}

	// --- Gradient ladder ---
	if numSamples == 1 {
		plan.Gradient = append(plan.Gradient, SamplePoint{
			Position: 0.5,
			X:        x,
			Y:        clampRow(height/2, height),
		})
	} else {
		for i := 0; i < numSamples; i++ {
			plan.Gradient = append(plan.Gradient, SamplePoint{
				Position: round2(float64(i) / float64(numSamples-1)),
				X:        x,
				Y:        clampRow(height*i/(numSamples-1), height),
			})
		}
	}

	// --- Fixed zones ---
	for _, z := range ZoneOffsets {
		plan.Zones = append(plan.Zones, SamplePoint{
			Zone:     z.Name,
			Position: z.Offset,
			X:        x,
			Y:        clampRow(int(float64(height)*z.Offset), height),
		})
	}

	return plan
}

func clampRow(y, height int) int {
	if y > height-1 {
		return height - 1
	}
	if y < 0 {
		return 0
	}
	return y
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
