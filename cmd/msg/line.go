package main

import (
	"github.com/spf13/cobra"
)

var (
	lineFill   string
	lineLength int

	lineCmd = &cobra.Command{
		Use:   "line",
		Short: "Print a horizontal rule",
		Long: `Print a horizontal rule across the terminal.

By default the rule is made of dashes and spans the full terminal width.
Both the fill character and the length can be overridden:

  msg line
  msg line --fill = --length 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			length := lineLength
			if !cmd.Flags().Changed("length") {
				length = printer.Columns()
			}
			diag.Debugf("printing rule: fill=%q length=%d", lineFill, length)
			if err := printer.LineOf(lineFill, length); err != nil {
				return diag.ErrorfAndReturn("cannot print rule: %w", err)
			}
			return nil
		},
	}
)

func init() {
	lineCmd.Flags().StringVar(&lineFill, "fill", "-", "fill string for the rule")
	lineCmd.Flags().IntVar(&lineLength, "length", 0, "rule length in columns (default: terminal width)")
}
