//go:build !nonetwork

package request

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/Lev10x/shawty/errors"
)

var errMissingSchemeOrHost = stderrors.New("missing scheme or host")

// Get sends a GET request to rawURL. Any response, whatever its status code,
// is returned to the caller, who must close its body. Only transport and
// protocol faults are reported as errors.
func Get(ctx context.Context, client Doer, rawURL string) (*http.Response, error) {
	return do(ctx, client, http.MethodGet, rawURL, nil, nil)
}

// Post sends a POST request to rawURL. A nil body sends no body. Headers are
// applied before sending. As with Get, HTTP status codes are not faults.
//
// Example:
//
//	resp, err := request.Post(ctx, client, url, []byte(`{"a":1}`),
//	    map[string]string{"Content-Type": "application/json"})
//	if err != nil {
//	    return err
//	}
//	defer resp.Body.Close()
func Post(ctx context.Context, client Doer, rawURL string, body []byte, headers map[string]string) (*http.Response, error) {
	return do(ctx, client, http.MethodPost, rawURL, body, headers)
}

func do(ctx context.Context, client Doer, method, rawURL string, body []byte, headers map[string]string) (*http.Response, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, errors.RequestFailed(rawURL, method, err)
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.RequestFailed(rawURL, method, err)
	}
	return resp, nil
}
