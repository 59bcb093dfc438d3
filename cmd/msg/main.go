package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/msg"
	logger "github.com/PolarWolf314/msg/internal/logging"
)

var (
	flagPrefix  string
	flagColumns int
	flagNoColor bool
	flagNoWrap  bool
	verbose     bool
	debug       bool

	printer *msg.Printer
	diag    logger.Logger

	rootCmd = &cobra.Command{
		Use:   "msg",
		Short: "Msg - print styled, prefixed, width-aware messages from the shell.",
		Long: `Msg prints single- or multi-line messages to the terminal with consistent
colour, styling, prefixing, and word wrapping.

Plain and info messages go to stdout; warnings and errors go to stderr, so
script output and diagnostics can be redirected independently. Colour is
enabled automatically on real terminals and suppressed for piped output.

Examples:
  msg info "build finished"
  msg --prefix "deploy, web" warn "rolling back release"
  msg error --fore lightred "migration failed"
  msg line --fill = --length 40

Run 'msg help <command>' for more details on a specific command.
`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Run 'msg --help' to see available commands.")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			diag = logger.Logger{Verbose: verbose, Debug: debug}
			opts := []msg.Option{
				msg.WithOutput(cmd.OutOrStdout()),
				msg.WithErrOutput(cmd.ErrOrStderr()),
			}
			if flagPrefix != "" {
				opts = append(opts, msg.WithPrefix(flagPrefix))
			}
			if flagColumns > 0 {
				opts = append(opts, msg.WithColumns(flagColumns))
			}
			if flagNoColor {
				opts = append(opts, msg.WithColor(false))
			}
			if flagNoWrap {
				opts = append(opts, msg.WithWrap(false))
			}
			printer = msg.New(opts...)
			diag.Debugf("printer ready: columns=%d rows=%d color=%t wrap=%t",
				printer.Columns(), printer.Rows(), printer.ColorEnabled(), printer.WrapEnabled())
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPrefix, "prefix", "p", "", "prefix segments, comma separated")
	rootCmd.PersistentFlags().IntVarP(&flagColumns, "columns", "C", 0, "override the detected terminal width")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable coloured output")
	rootCmd.PersistentFlags().BoolVar(&flagNoWrap, "no-wrap", false, "disable word wrapping")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(warnCmd)
	rootCmd.AddCommand(errorCmd)
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
