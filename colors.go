package msg

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Kind identifies a message category. The kind selects both the destination
// stream (plain and info to stdout, warn and error to stderr) and the
// default style triple.
type Kind int

const (
	KindPlain Kind = iota
	KindInfo
	KindWarn
	KindError
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindInfo:
		return "info"
	case KindWarn:
		return "warn"
	case KindError:
		return "error"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Style is the foreground/background/attribute triple applied to one message
// kind. A zero field is unset and contributes no escape code.
type Style struct {
	Foreground color.Attribute
	Background color.Attribute
	Attr       color.Attribute
}

// colored builds the renderer for the triple with colour forced on, so the
// printer's own colour switch stays authoritative over fatih/color's global
// terminal detection.
func (s Style) colored() *color.Color {
	attrs := make([]color.Attribute, 0, 3)
	if s.Foreground != 0 {
		attrs = append(attrs, s.Foreground)
	}
	if s.Background != 0 {
		attrs = append(attrs, s.Background)
	}
	if s.Attr != 0 {
		attrs = append(attrs, s.Attr)
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// colorNames maps symbolic colour names and abbreviations to foreground
// attributes. Backgrounds are derived from the same table by SGR offset.
var colorNames = map[string]color.Attribute{
	"black":   color.FgBlack,
	"k":       color.FgBlack,
	"red":     color.FgRed,
	"r":       color.FgRed,
	"green":   color.FgGreen,
	"g":       color.FgGreen,
	"yellow":  color.FgYellow,
	"y":       color.FgYellow,
	"blue":    color.FgBlue,
	"b":       color.FgBlue,
	"magenta": color.FgMagenta,
	"m":       color.FgMagenta,
	"cyan":    color.FgCyan,
	"c":       color.FgCyan,
	"white":   color.FgWhite,
	"w":       color.FgWhite,

	"lightblack":   color.FgHiBlack,
	"lk":           color.FgHiBlack,
	"gray":         color.FgHiBlack,
	"grey":         color.FgHiBlack,
	"lightred":     color.FgHiRed,
	"lr":           color.FgHiRed,
	"lightgreen":   color.FgHiGreen,
	"lg":           color.FgHiGreen,
	"lightyellow":  color.FgHiYellow,
	"ly":           color.FgHiYellow,
	"lightblue":    color.FgHiBlue,
	"lb":           color.FgHiBlue,
	"lightmagenta": color.FgHiMagenta,
	"lm":           color.FgHiMagenta,
	"lightcyan":    color.FgHiCyan,
	"lc":           color.FgHiCyan,
	"lightwhite":   color.FgHiWhite,
	"lw":           color.FgHiWhite,
}

// styleNames maps text style names and abbreviations to attributes.
// "normal" resolves to the zero attribute, clearing any previous style.
var styleNames = map[string]color.Attribute{
	"normal":    0,
	"n":         0,
	"bold":      color.Bold,
	"bright":    color.Bold,
	"b":         color.Bold,
	"dim":       color.Faint,
	"faint":     color.Faint,
	"d":         color.Faint,
	"italic":    color.Italic,
	"i":         color.Italic,
	"underline": color.Underline,
	"u":         color.Underline,
	"reverse":   color.ReverseVideo,
}

// backgroundOffset is the SGR distance between a foreground code and its
// background counterpart (30s to 40s, 90s to 100s).
const backgroundOffset = 10

// ParseForeground resolves a symbolic colour name ("red", "r", "lightblue")
// to its foreground attribute. Lookup is case-insensitive.
func ParseForeground(name string) (color.Attribute, error) {
	attr, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
	}
	return attr, nil
}

// ParseBackground resolves a symbolic colour name to its background
// attribute. The same names and abbreviations as ParseForeground apply.
func ParseBackground(name string) (color.Attribute, error) {
	attr, err := ParseForeground(name)
	if err != nil {
		return 0, err
	}
	return attr + backgroundOffset, nil
}

// ParseStyle resolves a text style name ("bold", "dim", "underline") to its
// attribute. "normal" resolves to the zero attribute.
func ParseStyle(name string) (color.Attribute, error) {
	attr, ok := styleNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
	}
	return attr, nil
}

// defaultStyles returns the out-of-the-box style triples for each kind.
func defaultStyles() map[Kind]Style {
	return map[Kind]Style{
		KindPlain: {Foreground: color.FgWhite, Background: color.BgBlack},
		KindInfo:  {Foreground: color.FgGreen, Background: color.BgBlack, Attr: color.Faint},
		KindWarn:  {Foreground: color.FgYellow, Background: color.BgBlack},
		KindError: {Foreground: color.FgRed, Background: color.BgBlack, Attr: color.Bold},
	}
}
