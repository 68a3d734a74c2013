//go:build !nonetwork

package errors

import "fmt"

// Network kinds. They exist only when the package is built without the
// nonetwork tag.
const (
	// KindURLParse indicates a URL could not be parsed.
	KindURLParse Kind = "URL_PARSE_FAILED"

	// KindHostMismatch indicates a URL pointed at a host other than the expected one.
	KindHostMismatch Kind = "HOST_MISMATCH"

	// KindClientBuild indicates an HTTP client could not be constructed.
	KindClientBuild Kind = "CLIENT_BUILD_FAILED"

	// KindRequest indicates an HTTP request failed at the transport or protocol level.
	KindRequest Kind = "REQUEST_FAILED"
)

func init() {
	defaultClassifications[KindURLParse] = ClassificationPermanent
	defaultClassifications[KindHostMismatch] = ClassificationPermanent
	defaultClassifications[KindClientBuild] = ClassificationPermanent
	defaultClassifications[KindRequest] = ClassificationRetryable
}

// RequestLeaf is a leaf that belongs to the request family.
//
// The set of request leaves is defined by this package and may grow; callers
// that switch over RequestLeaf values should keep a default case.
type RequestLeaf interface {
	Leaf
	requestLeaf()
}

// URLParseError reports a URL that could not be parsed.
type URLParseError struct {
	url string
	err error
}

// NewURLParseError returns a URLParseError leaf for use with NewRequestError.
func NewURLParseError(url string, err error) *URLParseError {
	return &URLParseError{url: url, err: err}
}

func (e *URLParseError) Error() string {
	return fmt.Sprintf("failed to parse URL: '%s'%s", e.url, causeSuffix(e.err))
}

// Kind returns KindURLParse.
func (e *URLParseError) Kind() Kind { return KindURLParse }

// URL returns the raw input.
func (e *URLParseError) URL() string { return e.url }

// Unwrap returns the underlying parse fault.
func (e *URLParseError) Unwrap() error { return e.err }

func (e *URLParseError) requestLeaf() {}

func (e *URLParseError) fields() map[string]interface{} {
	return map[string]interface{}{"url": e.url}
}

// HostMismatchError reports a URL whose host is absent or not the expected one.
// There is no underlying fault.
type HostMismatchError struct {
	input   string
	message string
}

// NewHostMismatchError returns a HostMismatchError leaf for use with
// NewRequestError.
func NewHostMismatchError(input, message string) *HostMismatchError {
	return &HostMismatchError{input: input, message: message}
}

func (e *HostMismatchError) Error() string {
	return fmt.Sprintf("host name: '%s' does not match the expected host: %s", e.input, e.message)
}

// Kind returns KindHostMismatch.
func (e *HostMismatchError) Kind() Kind { return KindHostMismatch }

// Input returns the offending URL.
func (e *HostMismatchError) Input() string { return e.input }

// Message explains what was expected.
func (e *HostMismatchError) Message() string { return e.message }

func (e *HostMismatchError) requestLeaf() {}

func (e *HostMismatchError) fields() map[string]interface{} {
	return map[string]interface{}{"input": e.input}
}

// ClientBuildError reports an HTTP client that could not be built.
type ClientBuildError struct {
	message string
	err     error
}

// NewClientBuildError returns a ClientBuildError leaf for use with
// NewRequestError.
func NewClientBuildError(message string, err error) *ClientBuildError {
	return &ClientBuildError{message: message, err: err}
}

func (e *ClientBuildError) Error() string {
	return fmt.Sprintf("failed to build client: '%s'%s", e.message, causeSuffix(e.err))
}

// Kind returns KindClientBuild.
func (e *ClientBuildError) Kind() Kind { return KindClientBuild }

// Message describes the rejected setting.
func (e *ClientBuildError) Message() string { return e.message }

// Unwrap returns the underlying fault.
func (e *ClientBuildError) Unwrap() error { return e.err }

func (e *ClientBuildError) requestLeaf() {}

// RequestFailedError reports a request that did not produce a response.
// HTTP status codes are never reported through this type.
type RequestFailedError struct {
	url    string
	method string
	err    error
}

// NewRequestFailedError returns a RequestFailedError leaf for use with
// NewRequestError.
func NewRequestFailedError(url, method string, err error) *RequestFailedError {
	return &RequestFailedError{url: url, method: method, err: err}
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("error while making request to: '%s' with method: '%s'%s", e.url, e.method, causeSuffix(e.err))
}

// Kind returns KindRequest.
func (e *RequestFailedError) Kind() Kind { return KindRequest }

// URL returns the request target.
func (e *RequestFailedError) URL() string { return e.url }

// Method returns the HTTP method name, e.g. "GET".
func (e *RequestFailedError) Method() string { return e.method }

// Unwrap returns the underlying transport fault.
func (e *RequestFailedError) Unwrap() error { return e.err }

func (e *RequestFailedError) requestLeaf() {}

func (e *RequestFailedError) fields() map[string]interface{} {
	return map[string]interface{}{"url": e.url, "method": e.method}
}

// RequestError is the request family aggregator. It wraps exactly one
// RequestLeaf and never carries a cause of its own.
type RequestError struct {
	inner RequestLeaf
}

// NewRequestError folds a request leaf into its family.
func NewRequestError(leaf RequestLeaf) *RequestError {
	return &RequestError{inner: leaf}
}

// Error returns the leaf message unchanged.
func (e *RequestError) Error() string { return e.inner.Error() }

// Kind returns the kind of the wrapped leaf.
func (e *RequestError) Kind() Kind { return e.inner.Kind() }

// Leaf returns the wrapped leaf.
func (e *RequestError) Leaf() RequestLeaf { return e.inner }

// Unwrap returns the wrapped leaf.
func (e *RequestError) Unwrap() error { return e.inner }

func (e *RequestError) leaf() Leaf { return e.inner }

func (e *RequestError) family() Family { return FamilyRequest }

// FromRequest lifts a request family error into the top-level Error without
// losing any information. Returns nil if err is nil.
func FromRequest(err *RequestError) *Error {
	if err == nil {
		return nil
	}
	return newError(err.Kind(), FamilyRequest, err, err.inner)
}

func fromRequestLeaf(leaf Leaf) *Error {
	if l, ok := leaf.(RequestLeaf); ok {
		return FromRequest(NewRequestError(l))
	}
	return nil
}

// Request returns the request family aggregator if this error belongs to FamilyRequest.
func (e *Error) Request() (*RequestError, bool) {
	v, ok := e.err.(*RequestError)
	return v, ok
}

// URLParse builds a URL parse failure and lifts it to the top level.
func URLParse(url string, err error) *Error {
	return FromRequest(NewRequestError(NewURLParseError(url, err)))
}

// HostMismatch builds a host mismatch failure and lifts it to the top level.
func HostMismatch(input, message string) *Error {
	return FromRequest(NewRequestError(NewHostMismatchError(input, message)))
}

// ClientBuild builds a client construction failure and lifts it to the top level.
func ClientBuild(message string, err error) *Error {
	return FromRequest(NewRequestError(NewClientBuildError(message, err)))
}

// RequestFailed builds a request failure and lifts it to the top level.
//
// Example:
//
//	resp, err := client.Do(req)
//	if err != nil {
//	    return nil, errors.RequestFailed(url, http.MethodGet, err)
//	}
func RequestFailed(url, method string, err error) *Error {
	return FromRequest(NewRequestError(NewRequestFailedError(url, method, err)))
}
