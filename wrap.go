package msg

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapLine reflows one logical line into physical lines no wider than width.
// The first physical line carries the rendered prefix; continuation lines
// are indented with spaces to the prefix width so text columns align. Words
// are never split: a single word wider than the available width stands alone
// on an over-width line. With wrapping off the line is returned unbroken.
func wrapLine(prefix, text string, width int, wrap bool) []string {
	if text == "" {
		return []string{strings.TrimRight(prefix, " ")}
	}
	first := prefix + text
	if !wrap || runewidth.StringWidth(first) <= width {
		return []string{first}
	}

	avail := width - runewidth.StringWidth(prefix)
	if avail < 1 {
		avail = 1
	}
	indent := strings.Repeat(" ", runewidth.StringWidth(prefix))

	var (
		out  []string
		line string
		lead = prefix
	)
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= avail:
			line += " " + word
		default:
			out = append(out, lead+line)
			lead = indent
			line = word
		}
	}
	return append(out, strings.TrimRight(lead+line, " "))
}

// repeatToWidth repeats fill until the result occupies exactly width
// columns. The caller guarantees fill has a positive display width.
func repeatToWidth(fill string, width int) string {
	if width <= 0 {
		return ""
	}
	fw := runewidth.StringWidth(fill)
	n := (width + fw - 1) / fw
	return runewidth.Truncate(strings.Repeat(fill, n), width, "")
}
