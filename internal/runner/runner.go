// Package runner runs the external diagnostic and kill commands whose text
// output the dialects parse.
package runner

import (
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

// Runner runs a command to completion and returns its stdout.
// A non-zero exit or a missing binary is reported as an error; stdout
// captured before the failure is still returned.
type Runner interface {
	Output(name string, args ...string) (string, error)
}

// Exec runs commands with os/exec. It imposes no timeout.
type Exec struct {
	Log zerolog.Logger
}

func (e Exec) Output(name string, args ...string) (string, error) {
	start := time.Now()
	out, err := exec.Command(name, args...).Output()
	ev := e.Log.Debug().Str("cmd", name).Strs("args", args).Dur("took", time.Since(start))
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			ev = ev.Int("exit", exitErr.ExitCode())
		}
		ev.Err(err).Msg("command failed")
		return string(out), fmt.Errorf("%s: %w", name, err)
	}
	ev.Int("bytes", len(out)).Msg("command ok")
	return string(out), nil
}
