package errors

// Classification indicates whether a caller may reasonably retry the failed
// operation. The library never retries on its own; this is advice only.
type Classification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: request timeouts, connection resets.
	ClassificationRetryable Classification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: rejected webhook hosts, missing parent directories.
	ClassificationPermanent Classification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c Classification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps kinds to their default classification.
// Network kinds are registered from request.go when networking is compiled in.
var defaultClassifications = map[Kind]Classification{
	KindWrite:   ClassificationPermanent,
	KindRead:    ClassificationPermanent,
	KindFlush:   ClassificationPermanent,
	KindOtherIO: ClassificationPermanent,

	KindExample: ClassificationPermanent,
	KindWeird:   ClassificationPermanent,
	KindCommand: ClassificationPermanent,
	KindConfig:  ClassificationPermanent,
	KindUnknown: ClassificationPermanent,
}

// getDefaultClassification returns the default classification for a kind.
// Returns ClassificationPermanent if the kind is not in the map.
func getDefaultClassification(kind Kind) Classification {
	if class, ok := defaultClassifications[kind]; ok {
		return class
	}
	return ClassificationPermanent
}
