package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// ParsedName holds the structured result of filename parsing.
type ParsedName struct {
	Orientation Orientation
	Hour        int
}

// Clock returns the hour as a "HH:00" time-of-day string.
func (p ParsedName) Clock() string {
	return fmt.Sprintf("%02d:00", p.Hour)
}

// stemPattern matches an orientation letter followed by a two-digit hour,
// e.g. "E12" or "U06". Matching runs against the uppercased stem.
var stemPattern = regexp.MustCompile(`^([WENSU])([0-9]{2})$`)

// ParseFilename parses a skybox screenshot filename into its orientation and
// hour. basename is the filename (with extension); the extension is stripped
// and the stem matched case-insensitively. ok is false when the stem does not
// fit the <letter><hour> pattern or the hour exceeds 23.
func ParseFilename(basename string) (ParsedName, bool) {
	ext := filepath.Ext(basename)
	stem := strings.ToUpper(strings.TrimSuffix(basename, ext))

	m := stemPattern.FindStringSubmatch(stem)
	if m == nil {
		return ParsedName{}, false
	}

	hour, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return ParsedName{}, false
	}

	return ParsedName{Orientation: Orientation(m[1]), Hour: hour}, true
}
