// Command shawty exposes the shawty primitives on the command line.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lev10x/shawty/console"
	"github.com/Lev10x/shawty/errors"
	"github.com/Lev10x/shawty/exec"
	"github.com/Lev10x/shawty/filesystem"
	"github.com/Lev10x/shawty/internal/config"
	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitUsage     = 2
	exitIO        = 3
	exitRequest   = 4
	exitCommand   = 5
	exitInvariant = 10
)

// CLI definition & global flags.
type CLI struct {
	Config  string `short:"c" help:"Configuration file path (YAML)"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	JSON    bool   `name:"json" help:"Report errors as JSON on stderr"`

	Cwd   CwdCmd   `cmd:"" help:"Print the current working directory"`
	Ls    LsCmd    `cmd:"" help:"List a directory"`
	Mkdir MkdirCmd `cmd:"" help:"Create a directory and verify it exists"`
	Ask   AskCmd   `cmd:"" help:"Prompt for a line of input and print it"`
	Hold  HoldCmd  `cmd:"" help:"Wait for Enter"`
	Debug DebugCmd `cmd:"" help:"Print a debug message"`
	Clear ClearCmd `cmd:"" help:"Clear the terminal"`

	NetworkCmds `embed:""`
}

// Global is shared state bound into every command's Run method.
type Global struct {
	Context context.Context
	Logger  *slog.Logger
	Console *console.Console
	FS      *filesystem.FS
	Config  *config.Config
	Metrics *prometheus.Registry
}

// app holds the process surface so tests can replace it.
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	stdin    io.Reader
	fs       *filesystem.FS
	executor exec.Executor
	exit     func(int)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
		fs:     filesystem.Local(),
		exit:   os.Exit,
	}
	code := a.run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}

func (a *app) run(ctx context.Context, args []string) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("shawty"),
		kong.Description("Panic-free console, filesystem and HTTP utilities."),
		kong.UsageOnError(),
		kong.Writers(a.stdout, a.stderr),
		kong.Exit(a.exit),
	)
	if err != nil {
		fmt.Fprintf(a.stderr, "shawty: %v\n", err)
		return exitFailure
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(a.stderr, "shawty: %v\n", err)
		return exitUsage
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return a.report(logger, cli.JSON, "failed to load configuration", err)
	}
	logger.Debug("configuration loaded", "path", cli.Config, "timeout", cfg.HTTP.Timeout)

	var opts []console.Option
	if a.executor != nil {
		opts = append(opts, console.WithExecutor(a.executor))
	}

	g := &Global{
		Context: ctx,
		Logger:  logger,
		Console: console.New(a.stdout, a.stdin, opts...),
		FS:      a.fs,
		Config:  cfg,
	}
	if cfg.HTTP.Metrics {
		g.Metrics = prometheus.NewRegistry()
	}

	err = kctx.Run(g)
	if g.Metrics != nil {
		logMetrics(logger, g.Metrics)
	}
	if err != nil {
		return a.report(logger, cli.JSON, "command failed", err)
	}
	return exitOK
}

// report writes err to stderr and returns the matching exit code.
func (a *app) report(logger *slog.Logger, asJSON bool, msg string, err error) int {
	if asJSON {
		data, merr := json.Marshal(errors.ToJSON(err))
		if merr == nil {
			fmt.Fprintln(a.stderr, string(data))
			return exitCode(err)
		}
		logger.Warn("failed to render error as JSON", "error", merr)
	}

	if e := errors.From(err); e != nil {
		logger.Error(msg, "error", e)
	} else {
		logger.Error(msg, "error", err)
	}
	return exitCode(err)
}

// exitCode maps an error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.IsInvariantViolation(err) {
		return exitInvariant
	}

	switch errors.GetFamily(err) {
	case errors.FamilyIO:
		return exitIO
	case errors.FamilyRequest:
		return exitRequest
	}

	if errors.GetKind(err) == errors.KindCommand {
		return exitCommand
	}
	return exitFailure
}
