package sampler

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// NormRGB is a color triple normalized to [0,1], rounded to 3 decimals.
// Engine-side gradient ramps consume these directly.
type NormRGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// ColorSample is one sampled pixel in every representation the report
// needs. Position is set only for gradient points; zone samples leave it
// nil so the field is omitted.
type ColorSample struct {
	Position   *float64 `json:"position,omitempty"`
	RGB        RGB      `json:"rgb"`
	Hex        string   `json:"hex"`
	Normalized NormRGB  `json:"normalized"`
}

// Brightness summarizes overall image luminance on a 0-255 scale.
// IsDark and IsBright are fixed-threshold flags computed from the
// unrounded average.
type Brightness struct {
	Average    float64 `json:"average"`
	Normalized float64 `json:"normalized"`
	IsDark     bool    `json:"is_dark"`
	IsBright   bool    `json:"is_bright"`
}
