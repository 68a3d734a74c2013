package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/Lev10x/shawty/errors"
	"github.com/Lev10x/shawty/exec"
)

const (
	// DebugPrefix is prepended to every Debug message.
	DebugPrefix = "[DEBUG] "

	// DefaultHoldMessage is printed by Hold when no message is given.
	DefaultHoldMessage = "Press 'Enter' to continue..."
)

// Flusher is implemented by buffered output streams. Console flushes the
// output stream before every read when it implements Flusher.
type Flusher interface {
	Flush() error
}

// Console performs panic-free I/O over one output and one input stream.
//
// Each call acquires the stream it uses for the duration of its own
// write, flush or read, then releases it. Calls from several goroutines are
// safe, but a single Input (write, flush, read) is not atomic with respect to
// other calls; callers serialize concurrent console use themselves.
type Console struct {
	outMu sync.Mutex
	out   io.Writer

	inMu sync.Mutex
	in   *bufio.Reader

	executor exec.Executor
}

// Option configures a Console.
type Option func(*Console)

// WithExecutor sets the executor used by Clear.
func WithExecutor(e exec.Executor) Option {
	return func(c *Console) {
		c.executor = e
	}
}

// New creates a Console writing to out and reading from in.
func New(out io.Writer, in io.Reader, opts ...Option) *Console {
	c := &Console{
		out: out,
		in:  bufio.NewReader(in),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.executor == nil {
		c.executor = c.defaultExecutor(out, in)
	}

	return c
}

// defaultExecutor hands terminal files to the child directly. Any other
// output is written under the console's output lock, and any other input is
// left to the console so the child cannot consume it.
func (c *Console) defaultExecutor(out io.Writer, in io.Reader) exec.Executor {
	opts := []exec.Option{exec.WithInheritEnv(), exec.WithInteractive()}

	if f, ok := out.(*os.File); ok {
		opts = append(opts, exec.WithStdout(f))
	} else {
		opts = append(opts, exec.WithStdout(lockedWriter{c: c}))
	}

	if f, ok := in.(*os.File); ok {
		opts = append(opts, exec.WithStdin(f))
	} else {
		opts = append(opts, exec.WithStdin(nil))
	}

	return exec.New(opts...)
}

// lockedWriter writes to the console output while holding its lock.
type lockedWriter struct {
	c *Console
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.c.outMu.Lock()
	defer w.c.outMu.Unlock()
	return w.c.out.Write(p)
}

var (
	defaultOnce    sync.Once
	defaultConsole *Console
)

// Default returns the process-wide Console bound to os.Stdout and os.Stdin.
func Default() *Console {
	defaultOnce.Do(func() {
		defaultConsole = New(os.Stdout, os.Stdin)
	})
	return defaultConsole
}

// write acquires the output stream, writes s and optionally flushes.
func (c *Console) write(s, desc string) error {
	c.outMu.Lock()
	defer c.outMu.Unlock()

	if _, err := io.WriteString(c.out, s); err != nil {
		return errors.Write(desc, err)
	}
	return nil
}

// flush acquires the output stream and flushes it if it is buffered.
func (c *Console) flush() error {
	c.outMu.Lock()
	defer c.outMu.Unlock()

	if f, ok := c.out.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.Flush("Failed to flush stdout", err)
		}
	}
	return nil
}

// Print writes the operands to the output stream using fmt.Sprint formatting.
// No line terminator is added.
func (c *Console) Print(a ...any) error {
	return c.write(fmt.Sprint(a...), "Failed to print. (Failed to write to stdout)")
}

// Println writes the operands followed by a newline, using fmt.Sprintln
// formatting.
func (c *Console) Println(a ...any) error {
	return c.write(fmt.Sprintln(a...), "Failed to println. (Failed to write to stdout)")
}

// Debug writes the message with DebugPrefix and a trailing newline.
func (c *Console) Debug(a ...any) error {
	return c.write(DebugPrefix+fmt.Sprint(a...)+"\n", "Failed to print debug message. (Failed to write to stdout)")
}

// Input prints prompt, flushes the output, reads one line and returns it with
// surrounding whitespace trimmed.
//
// An empty prompt prints nothing at all. End of input is not an error: the
// partial line, possibly empty, is returned.
func (c *Console) Input(prompt string) (string, error) {
	if prompt != "" {
		if err := c.Print(prompt); err != nil {
			return "", err
		}
	}

	if err := c.flush(); err != nil {
		return "", err
	}

	c.inMu.Lock()
	defer c.inMu.Unlock()

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Read("Failed to get input. (Failed to read stdin)", err)
	}

	return strings.TrimSpace(line), nil
}

// Hold prints message, or DefaultHoldMessage when message is empty, then
// blocks until a single byte can be read from the input stream.
func (c *Console) Hold(message string) error {
	if message == "" {
		message = DefaultHoldMessage
	}
	if err := c.Println(message); err != nil {
		return err
	}

	if err := c.flush(); err != nil {
		return err
	}

	c.inMu.Lock()
	defer c.inMu.Unlock()

	if _, err := c.in.ReadByte(); err != nil && !errors.Is(err, io.EOF) {
		return errors.Read("Failed to hold console. (Failed to read stdin)", err)
	}
	return nil
}

// Clear clears the terminal by spawning the platform's clear command and
// waiting for it. Output is flushed first.
//
// Each call runs on its own clone of the executor, so concurrent calls do not
// share per-run settings.
func (c *Console) Clear(ctx context.Context) error {
	if err := c.flush(); err != nil {
		return err
	}

	_, err := clearCommand(c.executor.Clone()).WithContext(ctx).Run(clearArgs...)
	return err
}
