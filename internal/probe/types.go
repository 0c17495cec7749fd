package probe

import "fmt"

// Result holds the image header properties read without decoding pixels.
type Result struct {
	Width  int
	Height int
	Format string // registered decoder name, e.g. "png" or "jpeg"
}

// Resolution returns "WxH", or "unknown" when the header is degenerate.
func (r *Result) Resolution() string {
	if r.Width <= 0 || r.Height <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Pixels returns the total pixel count.
func (r *Result) Pixels() int {
	return r.Width * r.Height
}
