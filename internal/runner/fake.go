package runner

import (
	"fmt"
	"os/exec"
	"strings"
)

// Response is the canned result of one command line.
type Response struct {
	Out string
	Err error
}

// Fake answers commands from a table keyed by CommandLine. Commands missing
// from the table fail as if the binary were not installed.
type Fake struct {
	Responses map[string]Response
	Calls     []string
}

func (f *Fake) Output(name string, args ...string) (string, error) {
	line := CommandLine(name, args...)
	f.Calls = append(f.Calls, line)
	r, ok := f.Responses[line]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, exec.ErrNotFound)
	}
	return r.Out, r.Err
}

// Called reports whether any recorded call starts with prefix.
func (f *Fake) Called(prefix string) bool {
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// CommandLine joins a command and its args with single spaces.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
