package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// startSpinner starts a progress spinner unless verbose or debug output is
// active, where it would interleave badly with log lines. The returned
// cleanup stops the spinner and prints its final message.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it
		diag.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
	} else {
		diag.Infof("%s", message)
	}

	cleanup := func() {
		// Ensure the final message ends with a newline
		if s.FinalMSG != "" && !strings.HasSuffix(s.FinalMSG, "\n") {
			s.FinalMSG += "\n"
		}
		if !verbose && !debug {
			s.Stop()
		} else if s.FinalMSG != "" {
			fmt.Print(s.FinalMSG)
		}
	}
	return s, cleanup
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Showcase the message kinds and styles",
	Long: `Print a short showcase of every message kind with the current
configuration, including prefixing, styling, and word wrapping.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cleanup := startSpinner("Preparing showcase...")
		time.Sleep(400 * time.Millisecond)
		s.FinalMSG = color.GreenString("✓") + " Showcase ready"
		cleanup()

		steps := []func() error{
			printer.Line,
			func() error { return printer.Plain("This is a standard message.") },
			func() error { return printer.Info("This is an info message.") },
			func() error { return printer.Warn("This is a warning message.") },
			func() error { return printer.Error("This is an error message.") },
			func() error {
				return printer.Info("Long lines are wrapped at word boundaries so that no line " +
					"exceeds the terminal width, and continuation lines are aligned " +
					"under the start of the message text.")
			},
			printer.Line,
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return diag.ErrorfAndReturn("showcase failed: %w", err)
			}
		}
		return nil
	},
}
