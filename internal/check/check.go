// Package check provides system diagnostics (the `check` subcommand) and
// pre-run validation (Verify) for the image codecs and the output directory.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/duskfield/skysampler/internal/config"
	"github.com/duskfield/skysampler/internal/display"
	"github.com/duskfield/skysampler/internal/pipeline"
)

// Sentinel errors returned by Verify when a codec or the output directory
// fails its check.
var (
	ErrDecoderBroken     = errors.New("image codec self-test failed")
	ErrOutputNotWritable = errors.New("output directory is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Infof(string, ...interface{})
	Successf(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})
}

// codec pairs a format name with its encoder so the self-test can run the
// same round-trip for every format the analyzer accepts.
type codec struct {
	name   string
	encode func(io.Writer, image.Image) error
}

var codecs = []codec{
	{"png", png.Encode},
	{"jpeg", func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) }},
	{"gif", func(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) }},
	{"bmp", bmp.Encode},
	{"tiff", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
}

// RunCheck runs the interactive `check` flow: round-trips every supported
// image codec, resolves the input paths, and probes the output directory
// for writability. It reports each result and returns false if anything
// failed.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Infof("=== System Check ===")

	ok := checkCodecs(log)
	if !checkInput(cfg.Paths, log) {
		ok = false
	}
	if !checkOutputDir(cfg.OutputDir, log) {
		ok = false
	}
	return ok
}

// checkCodecs round-trips a tiny image through every codec and logs the
// result per format.
func checkCodecs(log Logger) bool {
	ok := true
	for _, c := range codecs {
		if err := roundTrip(c); err != nil {
			log.Errorf("%s codec: %v", c.name, err)
			ok = false
			continue
		}
		log.Successf("%s codec: encode/decode OK", c.name)
	}
	log.Infof("webp: decode only, self-test skipped")
	return ok
}

// checkInput resolves the configured input paths and reports how many
// candidate images they contain. An unresolvable path fails the check; an
// empty result is only a warning, since the directory may simply not be
// populated yet.
func checkInput(paths []string, log Logger) bool {
	files, err := pipeline.Discover(paths)
	if err != nil {
		log.Errorf("input: %v", err)
		return false
	}
	if len(files) == 0 {
		log.Warnf("input: no candidate images found")
		return true
	}
	log.Successf("input: %s found", display.FormatCount(len(files), "candidate image"))
	return true
}

// checkOutputDir probes the configured output directory and logs the result.
func checkOutputDir(dir string, log Logger) bool {
	if err := writeProbe(dir); err != nil {
		log.Errorf("output dir %s not writable: %v", dir, err)
		return false
	}
	log.Successf("output dir %s is writable", dir)
	return true
}

// Verify is the pre-run validation: every supported codec must pass a
// round-trip self-test and the output directory must accept writes. Returns
// a sentinel error on failure. Dry runs skip the output directory probe
// since nothing will be written.
func Verify(cfg *config.Config) error {
	for _, c := range codecs {
		if err := roundTrip(c); err != nil {
			return fmt.Errorf("%w: %v", ErrDecoderBroken, err)
		}
	}
	if cfg.DryRun {
		return nil
	}
	if err := writeProbe(cfg.OutputDir); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputNotWritable, err)
	}
	return nil
}

// --- internal helpers ---

// roundTrip encodes a 2x2 gray image with the codec and decodes it back,
// verifying the decoded dimensions match.
func roundTrip(c codec) error {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := c.encode(&buf, src); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	img, _, err := image.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		return fmt.Errorf("decoded to %dx%d, want 2x2", b.Dx(), b.Dy())
	}
	return nil
}

// writeProbe creates the directory if needed, then creates and removes a
// temp file inside it to prove the directory accepts writes.
func writeProbe(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".skysampler-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
