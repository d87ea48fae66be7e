package display

import (
	"fmt"
	"os"

	"github.com/thmsn/ffrenc/internal/term"
)

// PrintBanner prints the ASCII art banner; colored when colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  __  __
 / _|/ _|_ __ ___ _ __   ___
| |_| |_| '__/ _ \ '_ \ / __|
|  _|  _| | |  __/ | | | (__
|_| |_| |_|  \___|_| |_|\___|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
