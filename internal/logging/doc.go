// Package logger provides verbosity-gated diagnostic logging for the msg CLI.
//
// Diagnostics are kept separate from the message printer itself: the printer
// produces the user's requested output, while this logger reports what the
// CLI is doing on its way there.
//
// # Verbosity Levels
//
// Output is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Debugf("printer ready: columns=%d", columns)
//
// The root command builds one in its PersistentPreRunE and shares it with
// the subcommands.
package logger
