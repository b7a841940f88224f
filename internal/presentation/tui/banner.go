package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown when the interactive client
// starts.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Teal-to-blue gradient.
	lines := []struct {
		text  string
		color string
	}{
		{"        _____       _       ", "#2dd4bf"},
		{"   ___ / ____|     (_)      ", "#22d3ee"},
		{"  / _ \\ |  __  __ _ _ _ __  ", "#38bdf8"},
		{" |  __/ | |_ |/ _` | | '_ \\ ", "#60a5fa"},
		{"  \\___| |__| | (_| | | | | |", "#818cf8"},
		{"       \\_____|\\__,_|_|_| |_|", "#a78bfa"},
	}

	fmt.Println()
	for _, line := range lines {
		fmt.Println(termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Println()
	fmt.Println(termenv.String("  Pricing Assistant").Foreground(p.Color("#94a3b8")).Bold())
	fmt.Println()
}
