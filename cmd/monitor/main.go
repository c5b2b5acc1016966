package main

import (
	"fmt"
	"os"
)

// Supported subcommands:
// - login:    Sign in and store the session
// - logout:   Forget the stored session
// - whoami:   Show the stored session and profile
// - watch:    Poll for falls and rotate the posture display
// - speak:    Synthesize text into a WAV file
// - research: Ask the medical research assistant
// - sos:      Raise an emergency alert

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
