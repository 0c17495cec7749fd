package report

import (
	"sort"

	"github.com/duskfield/skysampler/internal/naming"
)

// purposeLabel identifies the report format to downstream tooling.
const purposeLabel = "Skybox color extraction by orientation and hour"

// Build assembles the final report: analyses sorted ascending by
// (orientation letter, hour, filename), summary listing the distinct
// orientations present in the same ascending order. Input order never
// leaks into the output.
func Build(analyses []ImageAnalysis) Report {
	sorted := make([]ImageAnalysis, len(analyses))
	copy(sorted, analyses)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Orientation != b.Orientation {
			return a.Orientation < b.Orientation
		}
		if a.Hour != b.Hour {
			return a.Hour < b.Hour
		}
		return a.Filename < b.Filename
	})

	orientations := make([]naming.Orientation, 0, len(naming.Orientations))
	seen := make(map[naming.Orientation]bool)
	for _, a := range sorted {
		if !seen[a.Orientation] {
			seen[a.Orientation] = true
			orientations = append(orientations, a.Orientation)
		}
	}

	return Report{
		Summary: Summary{
			TotalImages:  len(sorted),
			Orientations: orientations,
			Purpose:      purposeLabel,
		},
		Analyses: sorted,
	}
}
