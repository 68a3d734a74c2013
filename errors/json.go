package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure used when rendering an error
// for machine consumption, such as the CLI's --json mode.
type ErrorResponse struct {
	// Kind is the leaf kind.
	Kind string `json:"kind"`

	// Family is the family name, omitted for flat kinds.
	Family string `json:"family,omitempty"`

	// Message is the full leaf message, including the causal chain.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// Foreign errors are reported with KindUnknown, ClassificationPermanent and
// their own message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	e := From(err)
	if e == nil {
		return &ErrorResponse{
			Kind:           string(KindUnknown),
			Message:        err.Error(),
			Classification: string(ClassificationPermanent),
		}
	}
	return e.response()
}

func (e *Error) response() *ErrorResponse {
	return &ErrorResponse{
		Kind:           string(e.kind),
		Family:         string(e.family),
		Message:        e.Message(),
		Classification: string(e.classification),
		Context:        e.Context(),
	}
}

// MarshalJSON implements json.Marshaler for Error.
//
// Example:
//
//	err := errors.Example()
//	data, _ := json.Marshal(err)
//	// {"kind":"EXAMPLE","message":"this is an example error","classification":"PERMANENT"}
func (e *Error) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.response())
	if err != nil {
		// Only reachable through unmarshalable context values.
		return nil, OtherIO("failed to marshal error response", err)
	}
	return data, nil
}
