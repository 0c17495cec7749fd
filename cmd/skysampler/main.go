// Command skysampler analyzes skybox screenshots named
// <orientation><hour> (e.g. E12.png) and writes JSON color reports for a
// rendering engine's sky-gradient system.
package main

import "os"

// version and commit are injected at build time via -ldflags.
// When built with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}
