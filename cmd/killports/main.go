package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"killports/internal/config"
	"killports/internal/dialect"
	"killports/internal/platform"
	"killports/internal/runner"
	"killports/internal/sweep"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

// app carries what the root command needs from the process environment, so
// tests can swap in a fake runner and platform.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	program string
	kind    platform.Kind
	known   bool
	// run is nil outside tests; the real runner is built once the log level is known.
	run runner.Runner
}

func main() {
	kind, known := platform.Detect()
	a := &app{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		program: filepath.Base(os.Args[0]),
		kind:    kind,
		known:   known,
	}
	os.Exit(a.execute(os.Args[1:]))
}

// execute runs the CLI and returns the process exit code.
func (a *app) execute(args []string) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	root := a.newRootCmd()
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	if errors.Is(err, config.ErrInvalidPort) {
		fmt.Fprintf(a.stderr, "Error: Invalid port number(s): %v\n", err)
		fmt.Fprintf(a.stderr, "Usage: %s [port1] [port2] ...\n", a.program)
		return 1
	}
	fmt.Fprintln(a.stderr, err)
	return 1
}

func (a *app) newRootCmd() *cobra.Command {
	var file string
	var dryRun bool
	var verbose bool
	root := &cobra.Command{
		Use:   a.program + " [port ...]",
		Short: "Kill the processes listening on the given TCP ports (default 3000 4000 4001)",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := config.Resolve(args, file)
			if err != nil {
				return err
			}

			log := newLogger(a.stderr, verbose)
			if !a.known {
				log.Warn().Str("goos", runtime.GOOS).Msgf("unrecognized platform, using %s commands", a.kind)
			}
			run := a.run
			if run == nil {
				run = runner.Exec{Log: log}
			}

			s := sweep.New(a.kind, dialect.New(a.kind, run, log), a.stdout, a.program)
			s.DryRun = dryRun
			s.Run(ports)
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.Flags().StringVarP(&file, "file", "f", "", "Read ports from a YAML file (ports: [3000, 4000])")
	root.Flags().BoolVar(&dryRun, "dry-run", false, "Report owning processes without killing them")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every command run to stderr")

	root.AddCommand(a.cmdVersion())
	return root
}

func (a *app) cmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "%s version %s\n", a.program, version)
			return nil
		},
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
}
