package naming

// Orientation is the compass direction a skybox screenshot faces.
type Orientation string

const (
	West  Orientation = "W"
	East  Orientation = "E"
	North Orientation = "N"
	South Orientation = "S"
	Up    Orientation = "U"
)

// Orientations lists the recognized orientation letters in ascending order.
var Orientations = []Orientation{East, North, South, Up, West}

// Valid reports whether o is one of the five recognized letters.
func (o Orientation) Valid() bool {
	switch o {
	case West, East, North, South, Up:
		return true
	}
	return false
}

// Label returns the compass name for the letter ("W" → "West").
func (o Orientation) Label() string {
	switch o {
	case West:
		return "West"
	case East:
		return "East"
	case North:
		return "North"
	case South:
		return "South"
	case Up:
		return "Up"
	}
	return string(o)
}
