package exec

import (
	"context"
	"io"
)

// Executor is the main interface for executing commands.
// It provides a fluent API for configuring and running commands.
type Executor interface {
	// WithEnv sets environment variables for the command.
	// These are local settings that override any global environment variables.
	WithEnv(env map[string]string) Executor

	// WithContext sets the context for the next Run only.
	// The command will be canceled if the context is canceled.
	WithContext(ctx context.Context) Executor

	// WithInheritEnv inherits environment variables from the parent process.
	WithInheritEnv() Executor

	// WithStdout sets the writer connected to stdout in interactive mode.
	WithStdout(w io.Writer) Executor

	// WithStderr sets the writer connected to stderr in interactive mode.
	WithStderr(w io.Writer) Executor

	// WithStdin sets the reader connected to the command's standard input.
	WithStdin(r io.Reader) Executor

	// WithInteractive connects the configured stdin, stdout and stderr to the
	// command directly, without capture. Terminal handles stay terminals, which
	// console programs such as cls need.
	WithInteractive() Executor

	// Run spawns the command with the given arguments and waits for it.
	//
	// A failure to start is reported as an *errors.Error of KindCommand with
	// StageSpawning; a failure while waiting as StageExecuting. A non-zero exit
	// status is not a failure: it is reported in Result.ExitCode.
	Run(args ...string) (*Result, error)

	// Clone creates a copy of the executor with the same configuration.
	// A clone shares no mutable state with the original, so each goroutine
	// can configure and run its own.
	Clone() Executor
}

// Result represents the result of a command execution.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined is the combined stdout and stderr output
	Combined string

	// ExitCode is the exit code returned by the command
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Option is a function that configures a Command with global settings.
// These settings are applied at creation time and can be overridden by local settings.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithContext returns an Option that sets the context used by every Run
// that does not set its own.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.ctx = ctx
	}
}

// WithInheritEnv returns an Option that globally enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}

// WithStdout returns an Option that sets the global stdout writer.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr returns an Option that sets the global stderr writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithStdin returns an Option that sets the global stdin reader.
func WithStdin(r io.Reader) Option {
	return func(c *Command) {
		c.stdin = r
	}
}

// WithInteractive returns an Option that globally connects the standard
// streams to the command without capture.
func WithInteractive() Option {
	return func(c *Command) {
		c.config.globalInteractive = true
	}
}
