package errors

import "fmt"

// Leaf is the most specific description of one failure mode.
//
// Leaves that carry an underlying fault expose it through Unwrap so that
// errors.Is and errors.As reach the original value.
type Leaf interface {
	error

	// Kind returns the failure mode this leaf describes.
	Kind() Kind
}

// fielder is implemented by leaves that have structured attributes worth
// exposing through Error.Context.
type fielder interface {
	fields() map[string]interface{}
}

// aggregator is implemented by the family types. Each wraps exactly one leaf.
type aggregator interface {
	error
	leaf() Leaf
	family() Family
}

// Error is the single error type returned by every shawty primitive.
//
// An Error holds either a family aggregator (*IOError, *RequestError) or a
// flat leaf (*ExampleError, *WeirdError, *CommandError, *ConfigError). It and
// its leaf are immutable once created; construct them through the package
// functions.
type Error struct {
	kind           Kind
	family         Family
	classification Classification
	err            error
	context        map[string]interface{}
}

// newError builds an Error around a family aggregator or flat leaf.
func newError(kind Kind, family Family, err error, leaf Leaf) *Error {
	var ctx map[string]interface{}
	if f, ok := leaf.(fielder); ok {
		ctx = f.fields()
	}
	return &Error{
		kind:           kind,
		family:         family,
		classification: getDefaultClassification(kind),
		err:            err,
		context:        ctx,
	}
}

// Error returns the string representation of the error.
// Format: "[KIND] leaf message", where the leaf message ends with its cause.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.kind, e.err.Error())
}

// Kind returns the kind of the wrapped leaf.
func (e *Error) Kind() Kind {
	return e.kind
}

// Family returns the family of the wrapped leaf, or FamilyNone for flat leaves.
func (e *Error) Family() Family {
	return e.family
}

// Classification returns the retry classification.
func (e *Error) Classification() Classification {
	return e.classification
}

// Message returns the leaf message, including its cause, without the kind prefix.
func (e *Error) Message() string {
	return e.err.Error()
}

// Context returns a copy of the attached metadata.
// Returns nil if no context has been attached.
func (e *Error) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Leaf returns the innermost leaf, looking through any family aggregator.
func (e *Error) Leaf() Leaf {
	switch v := e.err.(type) {
	case aggregator:
		return v.leaf()
	case Leaf:
		return v
	default:
		return nil
	}
}

// IO returns the I/O family aggregator if this error belongs to FamilyIO.
func (e *Error) IO() (*IOError, bool) {
	v, ok := e.err.(*IOError)
	return v, ok
}

// Unwrap returns the family aggregator or flat leaf held by this error.
func (e *Error) Unwrap() error {
	return e.err
}

func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if ctx == nil {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}

// causeSuffix renders ": cause" or nothing when there is no cause.
func causeSuffix(cause error) string {
	if cause == nil {
		return ""
	}
	return ": " + cause.Error()
}
