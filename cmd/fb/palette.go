package main

import (
	"os"

	"golang.org/x/term"
)

// palette applies ANSI colors to list output. Colors are only emitted when
// stdout is a terminal; piped output stays plain.
type palette struct {
	enabled bool
	dark    bool
}

func newPalette(dark bool) palette {
	return palette{
		enabled: term.IsTerminal(int(os.Stdout.Fd())),
		dark:    dark,
	}
}

func (p palette) votes(s string) string {
	if !p.enabled {
		return s
	}
	if p.dark {
		return "\x1b[93m" + s + "\x1b[0m" // bright yellow
	}
	return "\x1b[33m" + s + "\x1b[0m" // yellow
}

func (p palette) category(s string) string {
	if !p.enabled {
		return s
	}
	if p.dark {
		return "\x1b[96m" + s + "\x1b[0m" // bright cyan
	}
	return "\x1b[36m" + s + "\x1b[0m" // cyan
}
