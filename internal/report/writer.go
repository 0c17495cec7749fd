package report

import (
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Output filenames are fixed so downstream tooling can find them.
const (
	ReportFilename = "skybox_analysis_report.json"
	EngineFilename = "skybox_colors_engine.json"
)

// Write serializes the full report and the reduced engine export into dir.
// Both use two-space indentation and no trailing newline; identical inputs
// produce byte-identical files.
func Write(r Report, dir string) (reportPath, enginePath string, err error) {
	reportPath = filepath.Join(dir, ReportFilename)
	if err := writeJSON(reportPath, r); err != nil {
		return "", "", err
	}

	enginePath = filepath.Join(dir, EngineFilename)
	if err := writeJSON(enginePath, BuildEngineExport(r)); err != nil {
		return "", "", err
	}
	return reportPath, enginePath, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
