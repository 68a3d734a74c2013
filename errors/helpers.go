package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, fs.ErrPermission) {
//	    // Handle permission denied, wherever it sits in the chain
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var cmdErr *errors.CommandError
//	if errors.As(err, &cmdErr) {
//	    fmt.Println(cmdErr.Stage())
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind extracts the Kind from an error.
// Returns KindUnknown if the error is nil or was not produced by this package.
func GetKind(err error) Kind {
	if e := From(err); e != nil {
		return e.Kind()
	}
	return KindUnknown
}

// GetFamily extracts the Family from an error.
// Returns FamilyNone for flat kinds and for foreign errors.
func GetFamily(err error) Family {
	if e := From(err); e != nil {
		return e.Family()
	}
	return FamilyNone
}

// GetClassification extracts the Classification from an error.
// Returns ClassificationPermanent if the error is nil or foreign.
// This is a safe default that prevents inappropriate retry attempts.
func GetClassification(err error) Classification {
	if e := From(err); e != nil {
		return e.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or foreign.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// IsInvariantViolation reports whether err describes an impossible state
// observed by a primitive rather than an ordinary recoverable fault.
func IsInvariantViolation(err error) bool {
	var weird *WeirdError
	return stderrors.As(err, &weird)
}
