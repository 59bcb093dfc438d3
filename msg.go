package msg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Prefix rendering: segments are joined and shown as one bracketed unit,
// e.g. "[prog, subsystem] message text".
const (
	prefixSeparator = ", "
	prefixOpen      = "["
	prefixClose     = "] "
)

// defaultFill is the rule character used by Line.
const defaultFill = "-"

// Printer formats and prints messages to stdout and stderr. Construct one
// with New; the zero value is not usable.
type Printer struct {
	columns  int
	rows     int
	color    bool
	wrap     bool
	prefixes []string
	styles   map[Kind]Style
	stdout   io.Writer
	stderr   io.Writer
}

// Option configures a Printer during construction.
type Option func(*Printer)

// WithColumns overrides the detected terminal width. Non-positive values are
// ignored and the detected width is kept.
func WithColumns(n int) Option {
	return func(p *Printer) {
		if n > 0 {
			p.columns = n
		}
	}
}

// WithRows overrides the detected terminal height. Non-positive values are
// ignored and the detected height is kept.
func WithRows(n int) Option {
	return func(p *Printer) {
		if n > 0 {
			p.rows = n
		}
	}
}

// WithColor overrides the detected colour default.
func WithColor(on bool) Option {
	return func(p *Printer) { p.color = on }
}

// WithWrap overrides the word-wrapping default (on).
func WithWrap(on bool) Option {
	return func(p *Printer) { p.wrap = on }
}

// WithPrefix sets the initial prefix, with the same comma-splitting rules as
// SetPrefix.
func WithPrefix(s string) Option {
	return func(p *Printer) { p.SetPrefix(s) }
}

// WithStyle sets the initial style triple for one kind.
func WithStyle(kind Kind, s Style) Option {
	return func(p *Printer) { p.styles[kind] = s }
}

// WithOutput redirects plain and info messages away from os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Printer) { p.stdout = w }
}

// WithErrOutput redirects warnings and errors away from os.Stderr.
func WithErrOutput(w io.Writer) Option {
	return func(p *Printer) { p.stderr = w }
}

// New builds a Printer with the terminal size and colour support detected
// from stdout, then applies the given options.
func New(opts ...Option) *Printer {
	columns, rows := detectSize()
	p := &Printer{
		columns: columns,
		rows:    rows,
		color:   colorDefault(),
		wrap:    true,
		styles:  defaultStyles(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetColumns sets the terminal width used for wrapping and rules.
// Returns ErrInvalidDimension for non-positive values, leaving the previous
// width in place.
func (p *Printer) SetColumns(n int) error {
	if n <= 0 {
		return fmt.Errorf("columns %d: %w", n, ErrInvalidDimension)
	}
	p.columns = n
	return nil
}

// SetRows sets the terminal height. The value is informational only; output
// is never truncated to it. Returns ErrInvalidDimension for non-positive
// values, leaving the previous height in place.
func (p *Printer) SetRows(n int) error {
	if n <= 0 {
		return fmt.Errorf("rows %d: %w", n, ErrInvalidDimension)
	}
	p.rows = n
	return nil
}

// EnableColor turns colour output on or off for all subsequent messages.
// When off, no escape sequences are emitted regardless of configured styles.
func (p *Printer) EnableColor(on bool) {
	p.color = on
}

// EnableWrap turns word wrapping on or off. When off, lines are printed
// unbroken regardless of the configured width.
func (p *Printer) EnableWrap(on bool) {
	p.wrap = on
}

// SetPrefix replaces the prefix stack. The value may carry several
// comma-separated segments ("prog, subsystem"); segments are trimmed and
// empty ones dropped. An empty value clears the prefix entirely.
func (p *Printer) SetPrefix(s string) {
	p.prefixes = p.prefixes[:0]
	for _, seg := range strings.Split(s, ",") {
		if seg = strings.TrimSpace(seg); seg != "" {
			p.prefixes = append(p.prefixes, seg)
		}
	}
}

// PushPrefix appends one segment to the prefix stack. Empty or blank
// segments are ignored.
func (p *Printer) PushPrefix(s string) {
	if s = strings.TrimSpace(s); s != "" {
		p.prefixes = append(p.prefixes, s)
	}
}

// PopPrefix removes the most recently added prefix segment. Popping an empty
// stack is a no-op.
func (p *Printer) PopPrefix() {
	if len(p.prefixes) > 0 {
		p.prefixes = p.prefixes[:len(p.prefixes)-1]
	}
}

// Prefix returns a copy of the current prefix segments.
func (p *Printer) Prefix() []string {
	return append([]string(nil), p.prefixes...)
}

// SetKindStyle updates the style triple for one kind. Empty fields are left
// untouched, so a single colour can be changed without disturbing the rest.
// All names are resolved before any mutation: an unknown name returns
// ErrUnknownColorName and leaves the triple unchanged.
func (p *Printer) SetKindStyle(kind Kind, foreground, background, style string) error {
	st, ok := p.styles[kind]
	if !ok {
		return fmt.Errorf("%w: unknown message kind %q", ErrInvalidArgument, kind.String())
	}
	if foreground != "" {
		attr, err := ParseForeground(foreground)
		if err != nil {
			return err
		}
		st.Foreground = attr
	}
	if background != "" {
		attr, err := ParseBackground(background)
		if err != nil {
			return err
		}
		st.Background = attr
	}
	if style != "" {
		attr, err := ParseStyle(style)
		if err != nil {
			return err
		}
		st.Attr = attr
	}
	p.styles[kind] = st
	return nil
}

// KindStyle returns the current style triple for a kind.
func (p *Printer) KindStyle(kind Kind) Style {
	return p.styles[kind]
}

// Columns returns the current terminal width.
func (p *Printer) Columns() int { return p.columns }

// Rows returns the current terminal height.
func (p *Printer) Rows() int { return p.rows }

// ColorEnabled reports whether colour output is on.
func (p *Printer) ColorEnabled() bool { return p.color }

// WrapEnabled reports whether word wrapping is on.
func (p *Printer) WrapEnabled() bool { return p.wrap }

// Plain prints standard messages to stdout. Each argument is one logical
// line, individually wrapped; no arguments print a single empty line.
func (p *Printer) Plain(lines ...string) error {
	return p.print(KindPlain, p.stdout, lines)
}

// Info prints info messages to stdout.
func (p *Printer) Info(lines ...string) error {
	return p.print(KindInfo, p.stdout, lines)
}

// Warn prints warning messages to stderr.
func (p *Printer) Warn(lines ...string) error {
	return p.print(KindWarn, p.stderr, lines)
}

// Error prints error messages to stderr.
func (p *Printer) Error(lines ...string) error {
	return p.print(KindError, p.stderr, lines)
}

// print renders each logical line with the current prefix, wraps it to the
// terminal width, applies the kind's style as one start/reset pair around
// the whole wrapped unit, and writes it with a trailing newline.
func (p *Printer) print(kind Kind, w io.Writer, lines []string) error {
	if len(lines) == 0 {
		lines = []string{""}
	}
	prefix := p.renderPrefix()
	var paint *color.Color
	if p.color {
		paint = p.styles[kind].colored()
	}
	for _, line := range lines {
		text := strings.Join(wrapLine(prefix, line, p.columns, p.wrap), "\n")
		if paint != nil {
			text = paint.Sprint(text)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return fmt.Errorf("writing %s message: %w", kind, err)
		}
	}
	return nil
}

// renderPrefix returns the bracketed prefix with its trailing space, or the
// empty string when no segments are set.
func (p *Printer) renderPrefix() string {
	if len(p.prefixes) == 0 {
		return ""
	}
	return prefixOpen + strings.Join(p.prefixes, prefixSeparator) + prefixClose
}

// Line prints a plain-styled horizontal rule of dashes across the full
// terminal width.
func (p *Printer) Line() error {
	return p.LineOf(defaultFill, p.columns)
}

// LineOf prints a plain-styled rule built from fill, sized to exactly length
// columns. A set prefix consumes leading columns so the total width still
// equals length. Returns ErrInvalidArgument for an empty or zero-width fill,
// or a non-positive length.
func (p *Printer) LineOf(fill string, length int) error {
	if fill == "" || runewidth.StringWidth(fill) == 0 {
		return fmt.Errorf("empty fill string: %w", ErrInvalidArgument)
	}
	if length <= 0 {
		return fmt.Errorf("length %d: %w", length, ErrInvalidArgument)
	}
	prefix := p.renderPrefix()
	width := length - runewidth.StringWidth(prefix)
	rule := prefix + repeatToWidth(fill, width)
	if p.color {
		rule = p.styles[KindPlain].colored().Sprint(rule)
	}
	if _, err := fmt.Fprintln(p.stdout, rule); err != nil {
		return fmt.Errorf("writing rule: %w", err)
	}
	return nil
}
