package exec

import (
	"bytes"
	"io"
	"sync"
)

// multiWriter writes to multiple writers in order, stopping at the first failure.
type multiWriter struct {
	writers []io.Writer
	mu      sync.Mutex
}

func newMultiWriter(writers ...io.Writer) *multiWriter {
	return &multiWriter{writers: writers}
}

// Write writes data to all underlying writers.
func (mw *multiWriter) Write(p []byte) (n int, err error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	for _, w := range mw.writers {
		n, err = w.Write(p)
		if err != nil {
			return n, err
		}
		if n != len(p) {
			return n, io.ErrShortWrite
		}
	}
	return len(p), nil
}

// syncBuffer is a bytes.Buffer safe for concurrent writes from the stdout
// and stderr copy goroutines.
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// outputCapture captures one output stream of a command.
type outputCapture struct {
	buffer *syncBuffer
}

func newOutputCapture() *outputCapture {
	return &outputCapture{buffer: &syncBuffer{}}
}

// Writer returns an io.Writer that captures output.
func (oc *outputCapture) Writer() io.Writer {
	return oc.buffer
}

// String returns the captured output as a string.
func (oc *outputCapture) String() string {
	return oc.buffer.String()
}

// combinedWriter combines stdout and stderr into a single output stream.
type combinedWriter = syncBuffer

func newCombinedWriter() *combinedWriter {
	return &combinedWriter{}
}
