package report

import (
	"github.com/duskfield/skysampler/internal/naming"
	"github.com/duskfield/skysampler/internal/palette"
	"github.com/duskfield/skysampler/internal/sampler"
)

// Dimensions is the raw pixel size of an analyzed screenshot.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ZoneColors holds the named sky zone samples in top-to-bottom order.
// A zone whose sample failed stays nil and is omitted from output.
type ZoneColors struct {
	Zenith    *sampler.ColorSample `json:"zenith,omitempty"`
	UpperSky  *sampler.ColorSample `json:"upper_sky,omitempty"`
	MidSky    *sampler.ColorSample `json:"mid_sky,omitempty"`
	LowerSky  *sampler.ColorSample `json:"lower_sky,omitempty"`
	Horizon   *sampler.ColorSample `json:"horizon,omitempty"`
	WaterLine *sampler.ColorSample `json:"water_line,omitempty"`
}

// Set stores a sample under its zone name. Unknown names are dropped.
func (z *ZoneColors) Set(name string, s sampler.ColorSample) {
	switch name {
	case "zenith":
		z.Zenith = &s
	case "upper_sky":
		z.UpperSky = &s
	case "mid_sky":
		z.MidSky = &s
	case "lower_sky":
		z.LowerSky = &s
	case "horizon":
		z.Horizon = &s
	case "water_line":
		z.WaterLine = &s
	}
}

// ImageAnalysis is the complete result for one screenshot. Created once per
// input image and never mutated after assembly.
type ImageAnalysis struct {
	Filename         string                `json:"filename"`
	Orientation      naming.Orientation    `json:"orientation"`
	Hour             int                   `json:"hour"`
	Time             string                `json:"time"`
	Dimensions       Dimensions            `json:"dimensions"`
	VerticalGradient []sampler.ColorSample `json:"vertical_gradient"`
	SkyZones         ZoneColors            `json:"sky_zones"`
	Brightness       sampler.Brightness    `json:"brightness"`
	Palette          []palette.Color       `json:"palette,omitempty"`
}

// Summary describes the analyzed batch as a whole.
type Summary struct {
	TotalImages  int                  `json:"total_images"`
	Orientations []naming.Orientation `json:"orientations"`
	Purpose      string               `json:"purpose"`
}

// Report is the full write-once output artifact.
type Report struct {
	Summary  Summary         `json:"summary"`
	Analyses []ImageAnalysis `json:"analyses"`
}
