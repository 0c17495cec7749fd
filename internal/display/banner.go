package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

const banner = ` ____   _  __ __   __ ____      _     __  __  ____   _      _____  ____
/ ___| | |/ / \ \ / // ___|    / \   |  \/  ||  _ \ | |    | ____||  _ \
\___ \ | ' /   \ V / \___ \   / _ \  | |\/| || |_) || |    |  _|  | |_) |
 ___) || . \    | |   ___) | / ___ \ | |  | ||  __/ | |___ | |___ |  _ <
|____/ |_|\_\   |_|  |____/ /_/   \_\|_|  |_||_|    |_____||_____||_| \_\
`

// PrintBanner prints the ASCII art banner in cyan. Piped output skips it:
// color is only on for interactive terminals (or --color=always), and logs
// scraped from a pipe don't need art in them.
func PrintBanner() {
	if color.NoColor {
		return
	}
	fmt.Fprint(os.Stdout, color.CyanString(banner))
	fmt.Fprintln(os.Stdout)
}
