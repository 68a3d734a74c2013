package errors

import stderrors "errors"

// From returns the top-level Error for any value produced by this package:
// an *Error anywhere in the chain, a family aggregator, or a flat leaf.
// Returns nil if err is nil or was not produced by this package.
//
// Example:
//
//	if e := errors.From(err); e != nil && e.Family() == errors.FamilyIO {
//	    // Handle I/O failure
//	}
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var top *Error
	if stderrors.As(err, &top) {
		return top
	}

	var agg aggregator
	if stderrors.As(err, &agg) {
		return newError(agg.leaf().Kind(), agg.family(), agg, agg.leaf())
	}

	var leaf Leaf
	if stderrors.As(err, &leaf) {
		if l, ok := leaf.(IOLeaf); ok {
			return FromIO(NewIOError(l))
		}
		if top := fromRequestLeaf(leaf); top != nil {
			return top
		}
		return newError(leaf.Kind(), FamilyNone, leaf, leaf)
	}

	return nil
}
