// Package dialect wraps the per-OS commands used to find the process that
// owns a listening port, look up its name, and force-kill it.
//
// Every operation degrades to a "no result" value (absent PID, UnknownName,
// false) when a command is missing, exits non-zero, or prints something that
// does not match the expected line grammar. Nothing here returns an error.
package dialect

import (
	"strconv"
	"strings"

	"killports/internal/platform"
	"killports/internal/runner"

	"github.com/rs/zerolog"
)

// UnknownName is reported when a process name cannot be looked up.
const UnknownName = "Unknown"

// Dialect is the command set of one OS family.
type Dialect interface {
	// ResolvePID returns the PID listening on port, if any.
	ResolvePID(port int) (pid int, ok bool)
	// ProcessName returns a display name for pid, or UnknownName.
	ProcessName(pid int) string
	// Terminate force-kills pid and reports whether the kill command succeeded.
	Terminate(pid int) bool
}

// New returns the dialect for kind.
func New(kind platform.Kind, run runner.Runner, log zerolog.Logger) Dialect {
	switch kind {
	case platform.Windows:
		return &windows{run: run, log: log}
	case platform.MacOS:
		return &darwin{unix{run: run, log: log}}
	default:
		return &linux{unix{run: run, log: log}}
	}
}

// unix holds the name lookup and kill commands shared by macOS and Linux.
type unix struct {
	run runner.Runner
	log zerolog.Logger
}

func (u *unix) ProcessName(pid int) string {
	out, err := u.run.Output("ps", "-p", strconv.Itoa(pid), "-o", "comm=")
	if err != nil {
		return UnknownName
	}
	return parsePsComm(out)
}

func (u *unix) Terminate(pid int) bool {
	_, err := u.run.Output("kill", "-9", strconv.Itoa(pid))
	return err == nil
}

// parsePsComm trims `ps -o comm=` output; empty output means no such process.
func parsePsComm(out string) string {
	name := strings.TrimSpace(out)
	if name == "" {
		return UnknownName
	}
	return name
}

func lines(out string) []string {
	return strings.Split(strings.ReplaceAll(out, "\r\n", "\n"), "\n")
}
