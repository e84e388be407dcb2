// Package detector picks the log format from the terminal environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents how log lines are written.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModePretty writes colored, human-readable lines.
	ModePretty
	// ModeJSON writes one JSON object per line for log collectors.
	ModeJSON
)

// DetectEnvironment returns the recommended mode. Logs go to stderr, so a
// redirected stderr or a CI environment selects JSON.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeJSON
	}
	return ModePretty
}

// ResolveMode applies the user's --log-format flag to the detected mode.
// userFlag should be one of "auto", "pretty", "json" or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "pretty", "text":
		return ModePretty
	case "json":
		return ModeJSON
	default:
		return autoDetected
	}
}
