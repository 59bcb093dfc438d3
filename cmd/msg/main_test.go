package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/PolarWolf314/msg"
)

// resetCLIState restores flag-backed globals between Execute calls, since
// cobra keeps flag values across runs within one process.
func resetCLIState() {
	flagPrefix = ""
	flagColumns = 0
	flagNoColor = false
	flagNoWrap = false
	verbose = false
	debug = false
	flagFore = ""
	flagBack = ""
	flagStyle = ""
	lineFill = "-"
	lineLength = 0

	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

// execute runs the CLI with the given arguments and returns the captured
// stdout and stderr streams.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetCLIState()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestInfoWritesToStdout(t *testing.T) {
	stdout, stderr, err := execute(t, "--no-color", "--prefix", "app", "info", "hello")
	if err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if stdout != "[app] hello\n" {
		t.Errorf("stdout = %q, want %q", stdout, "[app] hello\n")
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestWarnWritesToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "--no-color", "warn", "careful")
	if err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if stderr != "careful\n" {
		t.Errorf("stderr = %q, want %q", stderr, "careful\n")
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
}

func TestLineCommand(t *testing.T) {
	stdout, _, err := execute(t, "--no-color", "line", "--length", "12")
	if err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if stdout != strings.Repeat("-", 12)+"\n" {
		t.Errorf("stdout = %q, want a 12-column rule", stdout)
	}
}

func TestLineExplicitZeroLengthRejected(t *testing.T) {
	// An explicit --length 0 is invalid input, not a request for the
	// terminal-width default.
	_, _, err := execute(t, "--no-color", "line", "--length", "0")
	if !errors.Is(err, msg.ErrInvalidArgument) {
		t.Fatalf("execute error = %v, want ErrInvalidArgument", err)
	}
}

func TestColumnsFlagControlsWrapping(t *testing.T) {
	stdout, _, err := execute(t, "--no-color", "--columns", "10", "plain", "aaaa bbbb cccc")
	if err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(stdout, "\n"), "\n") {
		if len(line) > 10 {
			t.Errorf("line %q exceeds 10 columns", line)
		}
	}
}

func TestInvalidStyleOverrideFails(t *testing.T) {
	_, _, err := execute(t, "--no-color", "error", "--fore", "sparkly", "boom")
	if err == nil {
		t.Fatal("execute with unknown colour name succeeded, want error")
	}
}
