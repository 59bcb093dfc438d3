// Package msg prints simple, coloured, formatted messages to the terminal.
//
// A Printer holds the output configuration (terminal size, colour switch,
// prefix stack, per-kind styles) and exposes one print method per message
// kind. Plain and info messages go to stdout; warnings and errors go to
// stderr. Long lines are wrapped at word boundaries to the configured
// terminal width, with continuation lines aligned under the message text.
//
// # Usage
//
//	p := msg.New(msg.WithPrefix("myprog"))
//	p.Info("starting up")
//	p.Warn("config file missing, using defaults")
//	p.Line()
//
// # Colour Behavior
//
// Colour is enabled by default only when stdout is a real terminal and the
// NO_COLOR environment variable (https://no-color.org/) is unset, so piped
// or redirected output never contains escape sequences. EnableColor
// overrides the detected default in either direction.
//
// Per-kind colours are set by symbolic name, full or abbreviated:
//
//	p.SetKindStyle(msg.KindInfo, "lightblue", "", "bold")
//	p.SetKindStyle(msg.KindWarn, "y", "", "")
//
// # Concurrency
//
// A Printer is not safe for concurrent use. Programs sharing one instance
// across goroutines must provide their own locking around configuration
// changes and print calls.
package msg
