package exec

import (
	"context"
	"io"
)

// CommandWrapper wraps an Executor to provide a command-specific interface.
// It prepends a fixed command prefix to all Run() calls, which suits shells
// invoked the same way every time (for example "cmd /c").
// CommandWrapper implements the Executor interface, allowing it to be used
// anywhere an Executor is expected.
type CommandWrapper struct {
	executor Executor
	prefix   []string
}

// NewWrapper creates a new CommandWrapper that prepends cmd and any leading
// arguments to all Run() calls.
// The executor parameter can be any implementation of the Executor interface,
// including fakes for testing.
func NewWrapper(executor Executor, cmd string, leading ...string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		prefix:   append([]string{cmd}, leading...),
	}
}

// WithEnv sets environment variables for the command.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithContext sets the context for the command.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithInheritEnv enables environment inheritance.
func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// WithStdout sets the stdout writer.
func (w *CommandWrapper) WithStdout(w2 io.Writer) Executor {
	w.executor = w.executor.WithStdout(w2)
	return w
}

// WithStderr sets the stderr writer.
func (w *CommandWrapper) WithStderr(w2 io.Writer) Executor {
	w.executor = w.executor.WithStderr(w2)
	return w
}

// WithStdin sets the stdin reader.
func (w *CommandWrapper) WithStdin(r io.Reader) Executor {
	w.executor = w.executor.WithStdin(r)
	return w
}

// WithInteractive connects the standard streams without capture.
func (w *CommandWrapper) WithInteractive() Executor {
	w.executor = w.executor.WithInteractive()
	return w
}

// Run executes the wrapped command with the given arguments.
// The prefix is prepended to the arguments.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	fullArgs := make([]string, 0, len(w.prefix)+len(args))
	fullArgs = append(fullArgs, w.prefix...)
	fullArgs = append(fullArgs, args...)
	return w.executor.Run(fullArgs...)
}

// Clone creates a copy of the wrapper with the same configuration.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		prefix:   append([]string(nil), w.prefix...),
	}
}
