package errors

// WithContext adds a single context field to an error.
// Returns a new Error with the field added; existing fields are preserved.
//
// If err was not produced by this package it is kept as the cause of a new
// Error with KindUnknown. Returns nil if err is nil.
//
// Example:
//
//	err := filesystem.CreateDirAndCheck(path)
//	err = errors.WithContext(err, "attempt", 2)
func WithContext(err error, key string, value interface{}) *Error {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err was not produced by this package it is kept as the cause of a new
// Error with KindUnknown. Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) *Error {
	if err == nil {
		return nil
	}

	base := From(err)
	if base == nil {
		base = &Error{
			kind:           KindUnknown,
			family:         FamilyNone,
			classification: ClassificationPermanent,
			err:            err,
		}
	}

	merged := make(map[string]interface{}, len(base.context)+len(ctx))
	for k, v := range base.context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}

	return &Error{
		kind:           base.kind,
		family:         base.family,
		classification: base.classification,
		err:            base.err,
		context:        merged,
	}
}
