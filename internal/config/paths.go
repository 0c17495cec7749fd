package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// PrepareOutputDir creates the output directory if needed and returns its
// absolute path. An existing non-directory at the path is an error.
func PrepareOutputDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %q: %w", dir, err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("output path %q is not a directory", abs)
	}
	return abs, nil
}
