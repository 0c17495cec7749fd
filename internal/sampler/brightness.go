package sampler

import (
	"image"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"
)

// Brightness is measured on a fixed-size thumbnail so the cost is bounded
// and the scale comparable across differing screenshot resolutions.
const thumbSize = 100

// Luma thresholds on the 0-255 scale.
const (
	darkThreshold   = 85
	brightThreshold = 170
)

// Measure downsamples img to a thumbSize x thumbSize grid and averages the
// Rec. 601 luma (0.299R + 0.587G + 0.114B) over every cell.
func Measure(img image.Image) Brightness {
	thumb := image.NewRGBA(image.Rect(0, 0, thumbSize, thumbSize))
	draw.CatmullRom.Scale(thumb, thumb.Bounds(), img, img.Bounds(), draw.Src, nil)

	lumas := make([]float64, 0, thumbSize*thumbSize)
	for y := 0; y < thumbSize; y++ {
		for x := 0; x < thumbSize; x++ {
			i := thumb.PixOffset(x, y)
			r := float64(thumb.Pix[i])
			g := float64(thumb.Pix[i+1])
			b := float64(thumb.Pix[i+2])
			lumas = append(lumas, 0.299*r+0.587*g+0.114*b)
		}
	}

	avg := stat.Mean(lumas, nil)
	return Brightness{
		Average:    round2(avg),
		Normalized: round3(avg / 255),
		IsDark:     avg < darkThreshold,
		IsBright:   avg > brightThreshold,
	}
}
