package pipeline

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/duskfield/skysampler/internal/config"
	"github.com/duskfield/skysampler/internal/display"
	"github.com/duskfield/skysampler/internal/logging"
	"github.com/duskfield/skysampler/internal/report"
)

// Run is the top-level batch entry point. It discovers images, analyzes each
// one sequentially, assembles the sorted report, and writes the JSON outputs.
// Fatal conditions (no inputs, nothing analyzed, unwritable report) are
// recorded on the returned stats rather than aborting the process here.
func Run(cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.Paths)
	if err != nil {
		log.Errorf("Image discovery failed: %v", err)
		stats.Fatal = true
		return stats
	}
	if len(files) == 0 {
		log.Errorf("No images found")
		stats.Fatal = true
		return stats
	}

	stats.Found = len(files)
	logBatchHeader(cfg, log, &stats)

	var analyses []report.ImageAnalysis
	for i, path := range files {
		stats.Current = i + 1
		if a, ok := processFile(cfg, log, path, &stats); ok {
			analyses = append(analyses, a)
		}
	}

	if len(analyses) == 0 {
		log.Errorf("No images were successfully analyzed")
		stats.Fatal = true
		return stats
	}

	rep := report.Build(analyses)

	if cfg.DryRun {
		log.Warnf("[DRY] Would write %s and %s to %s",
			report.ReportFilename, report.EngineFilename, cfg.OutputDir)
		logSummary(log, &stats)
		return stats
	}

	reportPath, enginePath, err := report.Write(rep, cfg.OutputDir)
	if err != nil {
		log.Errorf("Cannot write report: %v", err)
		stats.Fatal = true
		return stats
	}
	log.Successf("Saved JSON report: %s", reportPath)
	log.Successf("Saved engine colors: %s", enginePath)

	logSummary(log, &stats)
	return stats
}

// processFile handles one image: validate → analyze → record. The bool
// result reports whether the analysis should go into the report.
func processFile(cfg *config.Config, log *logging.Logger, path string, stats *RunStats) (report.ImageAnalysis, bool) {
	basename := filepath.Base(path)
	log.Infof("[%d/%d] %s", stats.Current, stats.Found, basename)

	// --- Validate ---
	fi, err := os.Stat(path)
	if err != nil {
		log.Errorf("✗ File not found: %s", path)
		stats.Failed++
		return report.ImageAnalysis{}, false
	}

	// --- Analyze ---
	analysis, dropped, err := AnalyzeImage(cfg, path)
	if errors.Is(err, ErrNameMismatch) {
		log.Warnf("Skipping %s (expected <W|E|N|S|U><00-23>, e.g. E12.png)", basename)
		stats.Skipped++
		return report.ImageAnalysis{}, false
	}
	if err != nil {
		log.Errorf("✗ Error analyzing %s: %v", path, err)
		stats.Failed++
		return report.ImageAnalysis{}, false
	}

	if dropped > 0 {
		log.Warnf("  %s fell outside the image and were omitted",
			display.FormatCount(dropped, "sample point"))
		stats.SamplesDropped += dropped
	}

	stats.TotalInputBytes += fi.Size()
	stats.Analyzed++

	log.Infof("  %s @ %s | %dx%d | brightness %.2f",
		analysis.Orientation.Label(), analysis.Time,
		analysis.Dimensions.Width, analysis.Dimensions.Height,
		analysis.Brightness.Average)
	return analysis, true
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Infof("==============================")
	log.Infof("Found %s", display.FormatCount(stats.Found, "image"))
	log.Infof("Gradient: %d sample rows at the horizontal midline", cfg.GradientSamples)
	if cfg.PaletteMode != config.PaletteOff {
		log.Infof("Palette: %s, up to %d colors", cfg.PaletteMode, cfg.PaletteSize)
	}
	if cfg.DryRun {
		log.Infof("Mode: dry run (nothing will be written)")
	}
	log.Infof("Output: %s", cfg.OutputDir)
	log.Infof("==============================")
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Infof("==============================")
	log.Infof("Done: %d analyzed, %d skipped, %d failed",
		stats.Analyzed, stats.Skipped, stats.Failed)
	if stats.SamplesDropped > 0 {
		log.Warnf("  %s omitted across the batch",
			display.FormatCount(stats.SamplesDropped, "sample point"))
	}
	log.Infof("  Total input read: %s", display.FormatBytes(stats.TotalInputBytes))
}
