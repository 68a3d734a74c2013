package errors

import "fmt"

// IOLeaf is a leaf that belongs to the I/O family.
//
// The set of I/O leaves is defined by this package and may grow; callers that
// switch over IOLeaf values should keep a default case.
type IOLeaf interface {
	Leaf
	ioLeaf()
}

// WriteError reports a failed write to a console stream or the filesystem.
type WriteError struct {
	message string
	err     error
}

// NewWriteError returns a WriteError leaf for use with NewIOError.
func NewWriteError(message string, err error) *WriteError {
	return &WriteError{message: message, err: err}
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write: '%s'%s", e.message, causeSuffix(e.err))
}

// Kind returns KindWrite.
func (e *WriteError) Kind() Kind { return KindWrite }

// Message describes what was being written.
func (e *WriteError) Message() string { return e.message }

// Unwrap returns the underlying fault.
func (e *WriteError) Unwrap() error { return e.err }

func (e *WriteError) ioLeaf() {}

// ReadError reports a failed read from a console stream or the filesystem.
type ReadError struct {
	message string
	err     error
}

// NewReadError returns a ReadError leaf for use with NewIOError.
func NewReadError(message string, err error) *ReadError {
	return &ReadError{message: message, err: err}
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read: '%s'%s", e.message, causeSuffix(e.err))
}

// Kind returns KindRead.
func (e *ReadError) Kind() Kind { return KindRead }

// Message describes what was being read.
func (e *ReadError) Message() string { return e.message }

// Unwrap returns the underlying fault.
func (e *ReadError) Unwrap() error { return e.err }

func (e *ReadError) ioLeaf() {}

// FlushError reports a failed flush of a buffered output stream.
type FlushError struct {
	message string
	err     error
}

// NewFlushError returns a FlushError leaf for use with NewIOError.
func NewFlushError(message string, err error) *FlushError {
	return &FlushError{message: message, err: err}
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("failed to flush: '%s'%s", e.message, causeSuffix(e.err))
}

// Kind returns KindFlush.
func (e *FlushError) Kind() Kind { return KindFlush }

// Message describes which stream was being flushed.
func (e *FlushError) Message() string { return e.message }

// Unwrap returns the underlying fault.
func (e *FlushError) Unwrap() error { return e.err }

func (e *FlushError) ioLeaf() {}

// OtherIOError reports an I/O fault that is not a read, write or flush,
// such as failing to resolve the working directory.
type OtherIOError struct {
	message string
	err     error
}

// NewOtherIOError returns a OtherIOError leaf for use with NewIOError.
func NewOtherIOError(message string, err error) *OtherIOError {
	return &OtherIOError{message: message, err: err}
}

func (e *OtherIOError) Error() string {
	return fmt.Sprintf("io error: '%s'%s", e.message, causeSuffix(e.err))
}

// Kind returns KindOtherIO.
func (e *OtherIOError) Kind() Kind { return KindOtherIO }

// Message describes the attempted operation.
func (e *OtherIOError) Message() string { return e.message }

// Unwrap returns the underlying fault.
func (e *OtherIOError) Unwrap() error { return e.err }

func (e *OtherIOError) ioLeaf() {}

// IOError is the I/O family aggregator. It wraps exactly one IOLeaf and never
// carries a cause of its own.
type IOError struct {
	inner IOLeaf
}

// NewIOError folds an I/O leaf into its family.
func NewIOError(leaf IOLeaf) *IOError {
	return &IOError{inner: leaf}
}

// Error returns the leaf message unchanged.
func (e *IOError) Error() string { return e.inner.Error() }

// Kind returns the kind of the wrapped leaf.
func (e *IOError) Kind() Kind { return e.inner.Kind() }

// Leaf returns the wrapped leaf.
func (e *IOError) Leaf() IOLeaf { return e.inner }

// Unwrap returns the wrapped leaf.
func (e *IOError) Unwrap() error { return e.inner }

func (e *IOError) leaf() Leaf { return e.inner }

func (e *IOError) family() Family { return FamilyIO }

// FromIO lifts an I/O family error into the top-level Error without losing
// any information. Returns nil if err is nil.
func FromIO(err *IOError) *Error {
	if err == nil {
		return nil
	}
	return newError(err.Kind(), FamilyIO, err, err.inner)
}

// Write builds a write failure and lifts it to the top level.
//
// Example:
//
//	if _, err := fmt.Fprint(w, msg); err != nil {
//	    return errors.Write("failed to print to stdout", err)
//	}
func Write(message string, err error) *Error {
	return FromIO(NewIOError(NewWriteError(message, err)))
}

// Read builds a read failure and lifts it to the top level.
func Read(message string, err error) *Error {
	return FromIO(NewIOError(NewReadError(message, err)))
}

// Flush builds a flush failure and lifts it to the top level.
func Flush(message string, err error) *Error {
	return FromIO(NewIOError(NewFlushError(message, err)))
}

// OtherIO builds a generic I/O failure and lifts it to the top level.
func OtherIO(message string, err error) *Error {
	return FromIO(NewIOError(NewOtherIOError(message, err)))
}
