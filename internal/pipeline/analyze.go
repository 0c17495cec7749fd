package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/duskfield/skysampler/internal/config"
	"github.com/duskfield/skysampler/internal/naming"
	"github.com/duskfield/skysampler/internal/palette"
	"github.com/duskfield/skysampler/internal/planner"
	"github.com/duskfield/skysampler/internal/probe"
	"github.com/duskfield/skysampler/internal/report"
	"github.com/duskfield/skysampler/internal/sampler"
)

// ErrNameMismatch marks files whose names carry no orientation and hour.
// Callers treat it as a skip rather than a failure.
var ErrNameMismatch = errors.New("filename does not encode orientation and hour")

// AnalyzeImage runs the full per-file analysis: parse the name, probe the
// header, decode, sample the gradient ladder and the fixed sky zones, and
// measure overall brightness. The int result is the number of planned sample
// points that fell outside the image and were omitted.
func AnalyzeImage(cfg *config.Config, path string) (report.ImageAnalysis, int, error) {
	var analysis report.ImageAnalysis

	basename := filepath.Base(path)
	parsed, ok := naming.ParseFilename(basename)
	if !ok {
		return analysis, 0, fmt.Errorf("%w: %s", ErrNameMismatch, basename)
	}

	pr, err := probe.Probe(path)
	if err != nil {
		return analysis, 0, fmt.Errorf("probe %q: %w", path, err)
	}

	img, err := sampler.Decode(path)
	if err != nil {
		return analysis, 0, err
	}

	plan := planner.BuildPlan(pr.Width, pr.Height, cfg.GradientSamples)
	gradient, droppedGradient := sampler.Gradient(img, plan)
	zones, droppedZones := sampler.Zones(img, plan)

	analysis = report.ImageAnalysis{
		Filename:         basename,
		Orientation:      parsed.Orientation,
		Hour:             parsed.Hour,
		Time:             parsed.Clock(),
		Dimensions:       report.Dimensions{Width: pr.Width, Height: pr.Height},
		VerticalGradient: gradient,
		Brightness:       sampler.Measure(img),
	}
	for _, z := range planner.ZoneOffsets {
		if s, ok := zones[z.Name]; ok {
			analysis.SkyZones.Set(z.Name, s)
		}
	}

	if cfg.PaletteMode != config.PaletteOff {
		colors, _ := palette.Extract(img, cfg.PaletteSize, paletteMethod(cfg.PaletteMode))
		analysis.Palette = colors
	}

	return analysis, droppedGradient + droppedZones, nil
}

func paletteMethod(mode config.PaletteMode) palette.Method {
	if mode == config.PaletteKMeans {
		return palette.MethodKMeans
	}
	return palette.MethodDominant
}
