package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/digest"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !IsReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

// reportedError wraps an error a command has already written to stderr.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already shown to the user by the
// command that returned it.
func IsReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}

// Main represents the program.
type Main struct {
	// Environ replaces the process environment when non-nil.
	Environ map[string]string

	// Service replaces the wired pipeline when set. Used in tests.
	Service digest.Service

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases fetchers and the browser.
func (m *Main) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := LoadConfig(m.Environ)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("digest"),
		kong.Description("Summarize a YouTube video or web page with a hosted LLM"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		cfg.Vars(),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'digest --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.LogLevel)

	if m.Service == nil {
		m.Service = m.wire(cli, deps.Logger)
		defer m.Close()
	}
	deps.Service = m.Service

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
