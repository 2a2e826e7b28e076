package theme

import (
	"fmt"
)

// Banner returns the sunset-palette startup banner.
func Banner() string {
	// ANSI colors for the savanna sunset
	const orange = "\033[38;5;208m"
	const yellow = "\033[33m"
	const green = "\033[32m"
	const reset = "\033[0m"

	art := "" +
		"  ☀  " + orange + "HAPPY AFRICA" + reset + "  ☀\n" +
		yellow + "   ▄█▀▀█▄  ▄▀▀▀▄  █▀▀▀▄  █▀▀▀▄  █   █\n" + reset +
		yellow + "   █▄▄▄▄█  █▄▄▄█  █▄▄▄▀  █▄▄▄▀  ▀▄▄▄▀\n" + reset +
		orange + "   █    █  █   █  █      █        █\n" + reset +
		green + "     ────────────────────────────────\n" + reset +
		"   short videos, local vibes, a feed that learns you ✨\n"

	return art
}

// PrintBanner prints the banner to stdout.
func PrintBanner() {
	fmt.Print(Banner())
}
