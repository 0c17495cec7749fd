package naming

import "testing"

func TestParseFilename(t *testing.T) {
	cases := []struct {
		name     string
		basename string

		wantOK          bool
		wantOrientation Orientation
		wantHour        int
	}{
		{
			name: "uppercase stem", basename: "E12.png",
			wantOK: true, wantOrientation: East, wantHour: 12,
		},
		{
			name: "lowercase stem", basename: "u06.jpg",
			wantOK: true, wantOrientation: Up, wantHour: 6,
		},
		{
			name: "mixed case extension", basename: "n08.JPEG",
			wantOK: true, wantOrientation: North, wantHour: 8,
		},
		{
			name: "midnight", basename: "W00.png",
			wantOK: true, wantOrientation: West, wantHour: 0,
		},
		{
			name: "last hour", basename: "W23.png",
			wantOK: true, wantOrientation: West, wantHour: 23,
		},
		{
			name: "south noon", basename: "s12.jpeg",
			wantOK: true, wantOrientation: South, wantHour: 12,
		},

		// No-match cases: skipped by callers, never an error.
		{name: "unknown letter", basename: "X99.png"},
		{name: "two letters", basename: "EE12.png"},
		{name: "single digit hour", basename: "N1.png"},
		{name: "hour out of range", basename: "N24.png"},
		{name: "hour way out of range", basename: "E99.png"},
		{name: "trailing garbage", basename: "E12b.png"},
		{name: "bare letter", basename: "W.png"},
		{name: "empty stem", basename: ".png"},
		{name: "no extension still parses", basename: "E12",
			wantOK: true, wantOrientation: East, wantHour: 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseFilename(tc.basename)
			if ok != tc.wantOK {
				t.Fatalf("ParseFilename(%q) ok = %v, want %v", tc.basename, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if got.Orientation != tc.wantOrientation {
				t.Errorf("orientation = %q, want %q", got.Orientation, tc.wantOrientation)
			}
			if got.Hour != tc.wantHour {
				t.Errorf("hour = %d, want %d", got.Hour, tc.wantHour)
			}
		})
	}
}

func TestClock(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "00:00"},
		{6, "06:00"},
		{12, "12:00"},
		{23, "23:00"},
	}

	for _, tc := range cases {
		p := ParsedName{Orientation: East, Hour: tc.hour}
		if got := p.Clock(); got != tc.want {
			t.Errorf("Clock() for hour %d = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestOrientationValid(t *testing.T) {
	for _, o := range Orientations {
		if !o.Valid() {
			t.Errorf("Valid() = false for %q", o)
		}
	}
	for _, o := range []Orientation{"X", "", "WE", "w"} {
		if o.Valid() {
			t.Errorf("Valid() = true for %q", o)
		}
	}
}

func TestOrientationLabel(t *testing.T) {
	cases := []struct {
		o    Orientation
		want string
	}{
		{West, "West"},
		{East, "East"},
		{North, "North"},
		{South, "South"},
		{Up, "Up"},
		{"Z", "Z"},
	}

	for _, tc := range cases {
		if got := tc.o.Label(); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.o, got, tc.want)
		}
	}
}
