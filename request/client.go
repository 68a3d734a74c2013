//go:build !nonetwork

package request

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/Lev10x/shawty/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTimeout bounds each request made by a client from NewClient when no
// timeout is given.
const DefaultTimeout = 30 * time.Second

// Doer sends an HTTP request and returns its response. *http.Client
// implements Doer.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type clientConfig struct {
	timeout    time.Duration
	userAgent  string
	proxy      string
	transport  http.RoundTripper
	registerer prometheus.Registerer
	logger     *slog.Logger
}

// ClientOption configures NewClient.
type ClientOption func(*clientConfig)

// WithTimeout sets the total time limit for each request. Zero disables the
// limit; negative values are rejected by NewClient.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithUserAgent sets the User-Agent header on requests that do not set one.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithProxy routes every request through the proxy at rawURL.
func WithProxy(rawURL string) ClientOption {
	return func(c *clientConfig) {
		c.proxy = rawURL
	}
}

// WithTransport sets the base round tripper. Defaults to a clone of
// http.DefaultTransport.
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *clientConfig) {
		c.transport = rt
	}
}

// WithMetrics instruments the client with request counters, latency
// histograms and an in-flight gauge registered on reg.
func WithMetrics(reg prometheus.Registerer) ClientOption {
	return func(c *clientConfig) {
		c.registerer = reg
	}
}

// WithLogger logs every request at debug level.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// NewClient builds a reusable HTTP client. The client is safe for concurrent
// use and should be shared across requests.
//
// Example:
//
//	client, err := request.NewClient(
//	    request.WithTimeout(10*time.Second),
//	    request.WithUserAgent("shawty/1.0"),
//	)
func NewClient(opts ...ClientOption) (*http.Client, error) {
	cfg := &clientConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.timeout < 0 {
		return nil, errors.ClientBuild("timeout must not be negative: "+cfg.timeout.String(), nil)
	}

	rt := cfg.transport
	if cfg.proxy != "" {
		proxyURL, err := url.Parse(cfg.proxy)
		if err != nil {
			return nil, errors.ClientBuild("invalid proxy URL: "+cfg.proxy, err)
		}
		if proxyURL.Scheme == "" || proxyURL.Host == "" {
			return nil, errors.ClientBuild("invalid proxy URL: "+cfg.proxy, errMissingSchemeOrHost)
		}
		base, ok := rt.(*http.Transport)
		if rt != nil && !ok {
			return nil, errors.ClientBuild("proxy requires an *http.Transport", nil)
		}
		if base == nil {
			base = defaultTransport()
		} else {
			base = base.Clone()
		}
		base.Proxy = http.ProxyURL(proxyURL)
		rt = base
	}
	if rt == nil {
		rt = defaultTransport()
	}

	if cfg.userAgent != "" {
		rt = &userAgentTransport{next: rt, userAgent: cfg.userAgent}
	}

	if cfg.registerer != nil {
		m, err := newClientMetrics(cfg.registerer)
		if err != nil {
			return nil, errors.ClientBuild("failed to register client metrics", err)
		}
		rt = m.instrument(rt)
	}

	if cfg.logger != nil {
		rt = &loggingTransport{next: rt, logger: cfg.logger}
	}

	return &http.Client{
		Timeout:   cfg.timeout,
		Transport: rt,
	}, nil
}

func defaultTransport() *http.Transport {
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		return t.Clone()
	}
	return &http.Transport{Proxy: http.ProxyFromEnvironment}
}

// userAgentTransport sets a default User-Agent header.
type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.next.RoundTrip(clone)
}

// loggingTransport logs each round trip at debug level.
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	attrs := []any{
		slog.String("method", req.Method),
		slog.String("url", redact(req.URL)),
		slog.Duration("duration", time.Since(start)),
	}
	if err != nil {
		t.logger.DebugContext(req.Context(), "http request failed", append(attrs, slog.Any("error", err))...)
		return nil, err
	}
	t.logger.DebugContext(req.Context(), "http request", append(attrs, slog.Int("status", resp.StatusCode))...)
	return resp, nil
}

// redact drops credentials and the path from u. Webhook paths carry tokens.
func redact(u *url.URL) string {
	if u == nil {
		return ""
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host}).String()
}
