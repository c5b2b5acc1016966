package main

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

// Local speech programs, tried in order.
var localSpeechCommands = []string{"say", "spd-say", "espeak-ng", "espeak"}

var lookPath = exec.LookPath

// speakLocally reads text with the first available system speech program.
// Without one, the text is printed instead.
func speakLocally(ctx context.Context, text string, out io.Writer) error {
	for _, name := range localSpeechCommands {
		path, err := lookPath(name)
		if err != nil {
			continue
		}

		fmt.Fprintf(out, "Speaking with %s\n", name)
		if err := exec.CommandContext(ctx, path, text).Run(); err != nil {
			return errors.Wrapf(err, "run %s", name)
		}

		return nil
	}

	fmt.Fprintf(out, "Audio playback unavailable. Text:\n\n%s\n", text)

	return nil
}
