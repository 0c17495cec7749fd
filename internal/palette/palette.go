package palette

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Method selects the palette extraction algorithm.
type Method int

const (
	MethodDominant Method = iota
	MethodKMeans
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	default:
		return "dominant"
	}
}

// Color is one palette entry: a hex color and its share of the total
// selected weight. Shares sum to 1 (modulo rounding).
type Color struct {
	Hex    string  `json:"hex"`
	Weight float64 `json:"weight"`
}

type weightedColor struct {
	col    colorful.Color
	weight float64
}

// Extract pulls up to k accent colors from img. The returned Method is the
// one that actually produced the palette: kmeans falls back to the
// dominant-color path when it yields nothing.
func Extract(img image.Image, k int, method Method) ([]Color, Method) {
	if method == MethodKMeans {
		if sel := extractKMeans(img, k); len(sel) != 0 {
			return finalize(sel), MethodKMeans
		}
	}
	return finalize(extractDominant(img, k)), MethodDominant
}

func extractDominant(img image.Image, k int) []weightedColor {
	if k <= 0 {
		return nil
	}

	nCandidates := max(24, k*8)
	candidates := dominantcolor.FindWeight(img, nCandidates)
	if len(candidates) == 0 {
		// Last resort: a neutral gray beats an empty palette.
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}

	cands := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		w := c.Weight
		if w <= 0 {
			w = 1e-6
		}
		cands = append(cands, weightedColor{col: col.Clamped(), weight: w})
	}
	return selectDiverse(cands, k)
}

func extractKMeans(img image.Image, k int) []weightedColor {
	if k <= 0 {
		return nil
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	// Subsample to keep kmeans tractable on large screenshots.
	maxSamples := 12000
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}

	workK := min(max(k*4, k+2), len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}

	// Most populated clusters first so dominant sky tones lead.
	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	cands := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		w := float64(len(c.Observations))
		if w <= 0 {
			w = 1e-6
		}
		cands = append(cands, weightedColor{col: col, weight: w})
	}
	return selectDiverse(cands, k)
}

// selectDiverse greedily picks k candidates, seeding with the strongest and
// then scoring the rest by Lab-space distance from everything already
// selected, weighted toward heavier candidates.
func selectDiverse(cands []weightedColor, k int) []weightedColor {
	if k <= 0 || len(cands) == 0 {
		return nil
	}

	type item struct {
		col colorful.Color
		lab [3]float64
		w   float64
	}
	items := make([]item, 0, len(cands))
	maxW := 0.0
	for _, c := range cands {
		col := c.col.Clamped()
		l, a, b := col.Lab()
		w := c.weight
		if w <= 0 {
			w = 1e-6
		}
		if w > maxW {
			maxW = w
		}
		items = append(items, item{col: col, lab: [3]float64{l, a, b}, w: w})
	}
	if k > len(items) {
		k = len(items)
	}
	if maxW <= 0 {
		maxW = 1.0
	}

	selectedIdx := make([]int, 0, k)
	selected := make([]bool, len(items))

	bestSeed := 0
	for i := 1; i < len(items); i++ {
		if items[i].w > items[bestSeed].w {
			bestSeed = i
		}
	}
	selectedIdx = append(selectedIdx, bestSeed)
	selected[bestSeed] = true

	for len(selectedIdx) < k {
		bestIdx := -1
		bestScore := -1.0
		for i := range items {
			if selected[i] {
				continue
			}
			minD2 := math.MaxFloat64
			for _, s := range selectedIdx {
				d0 := items[i].lab[0] - items[s].lab[0]
				d1 := items[i].lab[1] - items[s].lab[1]
				d2 := items[i].lab[2] - items[s].lab[2]
				d2v := d0*d0 + d1*d1 + d2*d2
				if d2v < minD2 {
					minD2 = d2v
				}
			}
			normW := items[i].w / maxW
			score := math.Sqrt(minD2) * (0.55 + 0.45*math.Sqrt(normW))
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}
		if bestIdx < 0 {
			break
		}
		selected[bestIdx] = true
		selectedIdx = append(selectedIdx, bestIdx)
	}

	out := make([]weightedColor, 0, len(selectedIdx))
	for _, idx := range selectedIdx {
		out = append(out, weightedColor{col: items[idx].col, weight: items[idx].w})
	}
	return out
}

// finalize converts selected candidates to report entries: weights become
// shares of the selected total, heaviest first, hex as tie-break.
func finalize(sel []weightedColor) []Color {
	if len(sel) == 0 {
		return nil
	}

	total := 0.0
	for _, s := range sel {
		total += s.weight
	}
	if total <= 0 {
		total = 1.0
	}

	out := make([]Color, 0, len(sel))
	for _, s := range sel {
		out = append(out, Color{
			Hex:    s.col.Hex(),
			Weight: round3(s.weight / total),
		})
	}
	slices.SortFunc(out, func(a, b Color) int {
		if a.Weight != b.Weight {
			if a.Weight > b.Weight {
				return -1
			}
			return 1
		}
		if a.Hex < b.Hex {
			return -1
		}
		if a.Hex > b.Hex {
			return 1
		}
		return 0
	})
	return out
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
