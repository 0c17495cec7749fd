package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/duskfield/skysampler/internal/config"
)

// Supported image file extensions (lowercase, with leading dot). These match
// the decoders the sampler registers.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Discover resolves the command-line paths into a list of candidate images.
// No paths scans the default screenshot directory; a single path that is a
// directory scans that directory; anything else is taken as explicit image
// paths. The result is sorted lexicographically either way so processing
// order is deterministic.
func Discover(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return scanDir(config.DefaultInputDir)
	}
	if len(paths) == 1 {
		if fi, err := os.Stat(paths[0]); err == nil && fi.IsDir() {
			return scanDir(paths[0])
		}
	}

	files := make([]string, len(paths))
	copy(files, paths)
	sort.Strings(files)
	return files, nil
}

// scanDir collects image files directly inside dir. Subdirectories are not
// descended into; skyboxes live flat in their screenshot folder.
func scanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if imageExtensions[ext] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
