//go:build !nonetwork

package request

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/Lev10x/shawty/errors"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

const (
	// DiscordDomain is the registrable domain every webhook URL must belong to.
	DiscordDomain = "discord.com"

	// HostMismatchMessage explains a rejected webhook URL.
	HostMismatchMessage = "send to webhook only accepts Discord webhook URLs"
)

type webhookPayload struct {
	Content string `json:"content"`
}

// SendToWebhook posts message to a Discord webhook as {"content": message}.
//
// The URL is checked before anything is sent: a URL that does not parse is a
// URL parse failure, and a URL whose host is missing or outside DiscordDomain
// is a host mismatch. Neither case calls client.
func SendToWebhook(ctx context.Context, client Doer, webhookURL, message string) (*http.Response, error) {
	if _, err := CheckHost(webhookURL, DiscordDomain); err != nil {
		return nil, err
	}

	body, err := json.Marshal(webhookPayload{Content: message})
	if err != nil {
		return nil, errors.RequestFailed(webhookURL, http.MethodPost, err)
	}

	return Post(ctx, client, webhookURL, body, map[string]string{
		"Content-Type": "application/json",
	})
}

// CheckHost parses rawURL and verifies that its host belongs to domain,
// either equal to it or a subdomain of it. Hosts are compared in their
// ASCII form, so internationalized names are normalized first.
func CheckHost(rawURL, domain string) (*url.URL, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, errors.URLParse(rawURL, err)
	}
	if u.Scheme == "" {
		return nil, errors.URLParse(rawURL, errMissingSchemeOrHost)
	}

	host := u.Hostname()
	if host == "" {
		return nil, errors.HostMismatch(rawURL, HostMismatchMessage)
	}

	ascii, err := idna.Lookup.ToASCII(strings.TrimSuffix(host, "."))
	if err != nil {
		return nil, errors.HostMismatch(rawURL, HostMismatchMessage)
	}
	ascii = strings.ToLower(ascii)

	registrable, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil || registrable != domain {
		return nil, errors.HostMismatch(rawURL, HostMismatchMessage)
	}
	return u, nil
}
