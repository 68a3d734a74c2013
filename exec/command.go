package exec

import (
	"context"
	"io"
	"os"
	osexec "os/exec"

	"github.com/Lev10x/shawty/errors"
)

// Command is the concrete implementation of the Executor interface.
// It provides command execution with configurable settings.
type Command struct {
	config   *config
	ctx      context.Context
	localCtx context.Context
	stdout   io.Writer
	stderr   io.Writer
	stdin    io.Reader
}

// New creates a new Command with the given options.
// Options set global defaults that can be overridden by local settings.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		ctx:    context.Background(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		stdin:  os.Stdin,
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the command.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithContext sets the context for the next Run.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.localCtx = ctx
	return c
}

// WithInheritEnv enables environment inheritance.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// WithStdout sets the stdout writer.
func (c *Command) WithStdout(w io.Writer) Executor {
	c.stdout = w
	return c
}

// WithStderr sets the stderr writer.
func (c *Command) WithStderr(w io.Writer) Executor {
	c.stderr = w
	return c
}

// WithStdin sets the stdin reader.
func (c *Command) WithStdin(r io.Reader) Executor {
	c.stdin = r
	return c
}

// WithInteractive connects the standard streams without capture.
func (c *Command) WithInteractive() Executor {
	val := true
	c.config.localInteractive = &val
	return c
}

// Run spawns the command with the given arguments and waits for it to finish.
func (c *Command) Run(args ...string) (*Result, error) {
	defer c.reset()

	if len(args) == 0 {
		return nil, errors.Command("", nil, errors.StageSpawning, osexec.ErrNotFound)
	}
	name, rest := args[0], args[1:]

	ctx := c.ctx
	if c.localCtx != nil {
		ctx = c.localCtx
	}

	cmd := osexec.CommandContext(ctx, name, rest...)

	if c.config.effectiveInheritEnv() {
		cmd.Env = os.Environ()
	}
	for k, v := range c.config.effectiveEnv() {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdoutCapture, stderrCapture *outputCapture
	var combined *combinedWriter

	if c.config.effectiveInteractive() {
		cmd.Stdin = c.stdin
		cmd.Stdout = c.stdout
		cmd.Stderr = c.stderr
	} else {
		stdoutCapture = newOutputCapture()
		stderrCapture = newOutputCapture()
		combined = newCombinedWriter()
		cmd.Stdout = newMultiWriter(stdoutCapture.Writer(), combined)
		cmd.Stderr = newMultiWriter(stderrCapture.Writer(), combined)
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.Command(name, rest, errors.StageSpawning, err)
	}

	waitErr := cmd.Wait()

	result := &Result{ExitCode: -1}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}
	if stdoutCapture != nil {
		result.Stdout = stdoutCapture.String()
		result.Stderr = stderrCapture.String()
		result.Combined = combined.String()
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, errors.Command(name, rest, errors.StageExecuting, ctxErr)
	}

	var exitErr *osexec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return result, errors.Command(name, rest, errors.StageExecuting, waitErr)
	}

	return result, nil
}

// reset clears local configuration so it does not carry over to the next Run.
func (c *Command) reset() {
	c.config.resetLocal()
	c.localCtx = nil
}

// Clone creates a copy of the executor with the same configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config:   c.config.clone(),
		ctx:      c.ctx,
		localCtx: c.localCtx,
		stdout:   c.stdout,
		stderr:   c.stderr,
		stdin:    c.stdin,
	}
}
