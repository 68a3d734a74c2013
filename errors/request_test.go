//go:build !nonetwork

package errors_test

import (
	stderrors "errors"
	"net/url"
	"testing"

	"github.com/Lev10x/shawty/errors"
	"github.com/stretchr/testify/require"
)

func TestRequestFamily_PreservesCause(t *testing.T) {
	_, parseErr := url.Parse("http://[::1")
	require.Error(t, parseErr)
	transportErr := stderrors.New("connection refused")

	tests := []struct {
		name    string
		err     *errors.Error
		kind    errors.Kind
		context string
		cause   error
	}{
		{
			name:    "url parse",
			err:     errors.URLParse("http://[::1", parseErr),
			kind:    errors.KindURLParse,
			context: "http://[::1",
			cause:   parseErr,
		},
		{
			name:    "client build",
			err:     errors.ClientBuild("invalid proxy", transportErr),
			kind:    errors.KindClientBuild,
			context: "invalid proxy",
			cause:   transportErr,
		},
		{
			name:    "request failed",
			err:     errors.RequestFailed("https://example.com", "GET", transportErr),
			kind:    errors.KindRequest,
			context: "https://example.com",
			cause:   transportErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.err.Kind())
			require.Equal(t, errors.FamilyRequest, tt.err.Family())
			require.Contains(t, tt.err.Error(), tt.context)
			require.Contains(t, tt.err.Error(), tt.cause.Error())
			require.True(t, stderrors.Is(tt.err, tt.cause))

			family, ok := tt.err.Request()
			require.True(t, ok)
			require.Equal(t, tt.err.Leaf(), family.Leaf())
		})
	}
}

func TestURLParse_KeepsTypedCause(t *testing.T) {
	_, parseErr := url.Parse("http://[::1")
	err := errors.URLParse("http://[::1", parseErr)

	var urlErr *url.Error
	require.True(t, errors.As(err, &urlErr))
	require.Equal(t, "parse", urlErr.Op)
}

func TestHostMismatch(t *testing.T) {
	err := errors.HostMismatch("https://example.com/api", "only Discord webhooks are accepted")

	require.Equal(t, errors.KindHostMismatch, err.Kind())
	require.Equal(t, errors.FamilyRequest, err.Family())
	require.Contains(t, err.Error(), "https://example.com/api")
	require.Contains(t, err.Error(), "only Discord webhooks are accepted")
	require.Equal(t, "https://example.com/api", err.Context()["input"])

	var leaf *errors.HostMismatchError
	require.True(t, errors.As(err, &leaf))
	require.Equal(t, "https://example.com/api", leaf.Input())
}

func TestRequestFailed_Context(t *testing.T) {
	err := errors.RequestFailed("https://example.com", "POST", nil)
	ctx := err.Context()
	require.Equal(t, "https://example.com", ctx["url"])
	require.Equal(t, "POST", ctx["method"])
	require.True(t, errors.IsRetryable(err))
}

func TestFromRequest_Nil(t *testing.T) {
	require.Nil(t, errors.FromRequest(nil))
}

func TestFrom_RequestLeaf(t *testing.T) {
	got := errors.From(errors.NewClientBuildError("bad", nil))
	require.NotNil(t, got)
	require.Equal(t, errors.KindClientBuild, got.Kind())
	require.Equal(t, errors.FamilyRequest, got.Family())

	got = errors.From(errors.NewRequestError(errors.NewHostMismatchError("x", "")))
	require.NotNil(t, got)
	require.Equal(t, errors.KindHostMismatch, got.Kind())
	require.Equal(t, errors.FamilyRequest, got.Family())
}

func TestClassification_NetworkKinds(t *testing.T) {
	require.True(t, errors.IsRetryable(errors.RequestFailed("u", "GET", nil)))
	require.False(t, errors.IsRetryable(errors.HostMismatch("u", "m")))
	require.False(t, errors.IsRetryable(errors.URLParse("u", nil)))
	require.False(t, errors.IsRetryable(errors.ClientBuild("m", nil)))
}
