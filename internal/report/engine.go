package report

import (
	"github.com/duskfield/skysampler/internal/naming"
	"github.com/duskfield/skysampler/internal/sampler"
)

// EngineColor wraps a zone's normalized triple for the reduced export.
// A zone that never sampled serializes as an empty object rather than
// null, so engine-side loaders can index it without nil checks.
type EngineColor struct {
	*sampler.NormRGB
}

// MarshalJSON emits {} for missing zones and the plain triple otherwise.
func (c EngineColor) MarshalJSON() ([]byte, error) {
	if c.NormRGB == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.NormRGB)
}

// EngineColors is the fixed six-zone subset the sky-gradient shader reads.
type EngineColors struct {
	Zenith  EngineColor `json:"zenith"`
	Upper   EngineColor `json:"upper"`
	Middle  EngineColor `json:"middle"`
	Lower   EngineColor `json:"lower"`
	Horizon EngineColor `json:"horizon"`
	Water   EngineColor `json:"water"`
}

// EngineEntry is one reduced record: where the camera pointed, when, and
// the sky colors the engine interpolates between.
type EngineEntry struct {
	Orientation naming.Orientation `json:"orientation"`
	Hour        int                `json:"hour"`
	Time        string             `json:"time"`
	Colors      EngineColors       `json:"colors"`
	Brightness  float64            `json:"brightness"`
}

// BuildEngineExport reduces a report to the engine-ready list, preserving
// the report's (orientation, hour) ordering.
func BuildEngineExport(r Report) []EngineEntry {
	entries := make([]EngineEntry, 0, len(r.Analyses))
	for _, a := range r.Analyses {
		entries = append(entries, EngineEntry{
			Orientation: a.Orientation,
			Hour:        a.Hour,
			Time:        a.Time,
			Colors: EngineColors{
				Zenith:  engineColor(a.SkyZones.Zenith),
				Upper:   engineColor(a.SkyZones.UpperSky),
				Middle:  engineColor(a.SkyZones.MidSky),
				Lower:   engineColor(a.SkyZones.LowerSky),
				Horizon: engineColor(a.SkyZones.Horizon),
				Water:   engineColor(a.SkyZones.WaterLine),
			},
			Brightness: a.Brightness.Normalized,
		})
	}
	return entries
}

func engineColor(s *sampler.ColorSample) EngineColor {
	if s == nil {
		return EngineColor{}
	}
	return EngineColor{NormRGB: &s.Normalized}
}
