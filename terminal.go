package msg

import (
	"os"

	"golang.org/x/term"
)

// Fallback dimensions for non-interactive output.
const (
	defaultColumns = 80
	defaultRows    = 24
)

// detectSize queries the terminal attached to stdout. Piped or redirected
// output has no terminal size, so the 80x24 fallback applies.
func detectSize() (columns, rows int) {
	c, r, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || c <= 0 || r <= 0 {
		return defaultColumns, defaultRows
	}
	return c, r
}

// colorDefault reports whether colour should start enabled: stdout must be a
// real terminal and NO_COLOR (https://no-color.org/) must be unset.
func colorDefault() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
