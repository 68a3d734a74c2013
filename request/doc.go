//go:build !nonetwork

// Package request provides panic-free HTTP primitives: a reusable client
// builder, GET and POST, and a Discord webhook sender with a host check.
//
// Every fault is returned as *errors.Error in the request family. HTTP status
// codes are never faults; a 404 or 405 comes back as a normal response.
//
// The package is excluded from builds that set the nonetwork tag.
//
// Usage:
//
//	client, err := request.NewClient(request.WithUserAgent("shawty"))
//	if err != nil {
//	    return err
//	}
//	resp, err := request.Get(ctx, client, "https://example.com")
//	if err != nil {
//	    return err
//	}
//	defer resp.Body.Close()
//
// Functions accept a Doer rather than *http.Client so tests can count or
// intercept requests.
package request
