package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a widget is rendered.
type OutputMode int

const (
	// OutputModePlain prints one static render without colour.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints one static render with colour.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode picks the output mode for stdout.
// plain and noColor force plain output; forceColor styles non-terminal output.
// The NO_COLOR and CI conventions and TERM=dumb are honoured.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, isTerminal(os.Stdout), os.LookupEnv)
}

func detectOutputMode(
	forceColor, noColor, plain, tty bool,
	lookupEnv func(string) (string, bool),
) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := lookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if v, _ := lookupEnv("TERM"); v == "dumb" {
		return OutputModePlain
	}

	_, ci := lookupEnv("CI")
	if tty && !ci {
		return OutputModeInteractive
	}
	if forceColor {
		return OutputModeStyled
	}
	return OutputModePlain
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return isTerminal(os.Stdout)
}
