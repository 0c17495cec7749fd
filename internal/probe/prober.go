package probe

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Probe reads the image header at path and returns its dimensions and
// format without decoding the pixel data. A file whose header no decoder
// recognizes is an error; callers skip such files.
func Probe(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("probe %q: degenerate dimensions %dx%d", path, cfg.Width, cfg.Height)
	}

	return &Result{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}
