// Package sweep walks a list of ports, kills whatever listens on each one and
// reports progress as it goes.
package sweep

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"killports/internal/dialect"
	"killports/internal/platform"
)

// Outcome is what happened to one port.
type Outcome int

const (
	Free Outcome = iota
	Killed
	KillFailed
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Free:
		return "free"
	case Killed:
		return "killed"
	case KillFailed:
		return "kill-failed"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the per-port record of a sweep. PID and Name are zero for free ports.
type Result struct {
	Port    int
	PID     int
	Name    string
	Outcome Outcome
}

type Sweeper struct {
	Kind    platform.Kind
	Dialect dialect.Dialect
	Out     io.Writer
	// Program is the command name shown in the sudo hint.
	Program string
	// DryRun reports owning processes without killing them.
	DryRun bool

	styles styles
}

func New(kind platform.Kind, d dialect.Dialect, out io.Writer, program string) *Sweeper {
	return &Sweeper{
		Kind:    kind,
		Dialect: d,
		Out:     out,
		Program: program,
		styles:  newStyles(out),
	}
}

// Run checks ports in the order given. A failure on one port never stops the
// ones after it.
func (s *Sweeper) Run(ports []int) []Result {
	s.printf("%s\n", s.styles.header.Render("Operating System: "+s.Kind.String()))
	s.printf("%s\n", s.styles.header.Render("Checking ports: "+joinPorts(ports, ", ")))
	s.printf("%s\n", strings.Repeat("-", 50))

	results := make([]Result, 0, len(ports))
	for _, port := range ports {
		results = append(results, s.sweepPort(port, ports))
	}

	s.printf("\n%s\n", s.styles.done.Render("✨ Done!"))
	return results
}

func (s *Sweeper) sweepPort(port int, all []int) Result {
	s.printf("\n%s\n", s.styles.check.Render(fmt.Sprintf("🔍 Checking port %d...", port)))

	pid, ok := s.Dialect.ResolvePID(port)
	if !ok {
		s.printf("  %s\n", s.styles.ok.Render(fmt.Sprintf("✅ Port %d is free", port)))
		return Result{Port: port, Outcome: Free}
	}

	name := s.Dialect.ProcessName(pid)
	res := Result{Port: port, PID: pid, Name: name}
	s.printf("  %s\n", s.styles.warn.Render(fmt.Sprintf("⚠️  Found process: %s (PID: %d)", name, pid)))

	if s.DryRun {
		s.printf("  %s\n", s.styles.hint.Render(fmt.Sprintf("⏭️  Would kill process %d (dry run)", pid)))
		res.Outcome = Skipped
		return res
	}

	if s.Dialect.Terminate(pid) {
		s.printf("  %s\n", s.styles.ok.Render(fmt.Sprintf("✅ Successfully killed process %d", pid)))
		res.Outcome = Killed
		return res
	}

	s.printf("  %s\n", s.styles.fail.Render(fmt.Sprintf("❌ Failed to kill process %d (may need admin privileges)", pid)))
	if s.Kind.Unix() {
		s.printf("     %s\n", s.styles.hint.Render("Try running with: "+s.sudoHint(all)))
	}
	res.Outcome = KillFailed
	return res
}

func (s *Sweeper) sudoHint(ports []int) string {
	program := s.Program
	if program == "" {
		program = "killports"
	}
	return "sudo " + program + " " + joinPorts(ports, " ")
}

func (s *Sweeper) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

func joinPorts(ports []int, sep string) string {
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		parts = append(parts, strconv.Itoa(p))
	}
	return strings.Join(parts, sep)
}
