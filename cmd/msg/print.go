package main

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/msg"
)

// Per-kind style overrides shared by the print subcommands. Only the command
// that runs reads them, so shared storage is safe.
var (
	flagFore  string
	flagBack  string
	flagStyle string
)

var plainCmd = &cobra.Command{
	Use:   "plain [text ...]",
	Short: "Print a standard message to stdout",
	Long: `Print one or more standard messages to stdout.

Each argument is printed as its own line, sharing the configured prefix and
styling. With no arguments a single empty line is printed, which is useful
as a spacer in script output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKind(msg.KindPlain, args)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [text ...]",
	Short: "Print an info message to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKind(msg.KindInfo, args)
	},
}

var warnCmd = &cobra.Command{
	Use:   "warn [text ...]",
	Short: "Print a warning message to stderr",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKind(msg.KindWarn, args)
	},
}

var errorCmd = &cobra.Command{
	Use:   "error [text ...]",
	Short: "Print an error message to stderr",
	Long: `Print one or more error messages to stderr.

Colours can be overridden per call by symbolic name, full or abbreviated:

  msg error --fore lightred --style bold "migration failed"
  msg error --fore r "short form works too"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKind(msg.KindError, args)
	},
}

// runKind applies any style overrides for the kind and prints the arguments
// through the shared printer.
func runKind(kind msg.Kind, args []string) error {
	if flagFore != "" || flagBack != "" || flagStyle != "" {
		diag.Debugf("overriding %s style: fore=%q back=%q style=%q", kind, flagFore, flagBack, flagStyle)
		if err := printer.SetKindStyle(kind, flagFore, flagBack, flagStyle); err != nil {
			return diag.ErrorfAndReturn("invalid style override: %w", err)
		}
	}
	switch kind {
	case msg.KindInfo:
		return printer.Info(args...)
	case msg.KindWarn:
		return printer.Warn(args...)
	case msg.KindError:
		return printer.Error(args...)
	default:
		return printer.Plain(args...)
	}
}

func init() {
	for _, cmd := range []*cobra.Command{plainCmd, infoCmd, warnCmd, errorCmd} {
		cmd.Flags().StringVar(&flagFore, "fore", "", "foreground colour name (e.g. red, r, lightblue)")
		cmd.Flags().StringVar(&flagBack, "back", "", "background colour name")
		cmd.Flags().StringVar(&flagStyle, "style", "", "text style (normal, bold, dim, italic, underline, reverse)")
	}
}
