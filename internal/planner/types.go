package planner

// SamplePoint is one pixel coordinate the sampler will read, tagged with
// where it sits in the image.
type SamplePoint struct {
	Zone     string  // zone name, empty for gradient points
	Position float64 // relative vertical position, 0.0 (top) to 1.0 (bottom)
	X        int
	Y        int
}

// Plan holds every coordinate sampled from a single image: the vertical
// gradient ladder plus the named sky zones. It is produced by BuildPlan and
// consumed by the sampler package.
type Plan struct {
	Gradient []SamplePoint
	Zones    []SamplePoint
}
