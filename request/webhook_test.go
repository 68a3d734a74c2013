//go:build !nonetwork

package request_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Lev10x/shawty/errors"
	"github.com/Lev10x/shawty/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validWebhook = "https://discord.com/api/webhooks/123/token"

func TestSendToWebhook_HostMismatchMakesNoCalls(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "other domain", url: "https://example.com/api/webhooks/1/t"},
		{name: "suffix lookalike", url: "https://evildiscord.com/api/webhooks/1/t"},
		{name: "domain as subdomain", url: "https://discord.com.example.com/api/webhooks/1/t"},
		{name: "no host", url: "file:///etc/passwd"},
		{name: "ip address", url: "http://127.0.0.1/api/webhooks/1/t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &countingDoer{}

			resp, err := request.SendToWebhook(context.Background(), doer, tt.url, "hello")
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, errors.KindHostMismatch, errors.GetKind(err))
			assert.Zero(t, doer.calls.Load())

			var mismatch *errors.HostMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tt.url, mismatch.Input())
			assert.Equal(t, request.HostMismatchMessage, mismatch.Message())
		})
	}
}

func TestSendToWebhook_UnparsableURL(t *testing.T) {
	for _, raw := range []string{"not a url", "discord.com/api/webhooks/1/t", "/api/webhooks"} {
		t.Run(raw, func(t *testing.T) {
			doer := &countingDoer{}

			_, err := request.SendToWebhook(context.Background(), doer, raw, "hello")
			require.Error(t, err)
			assert.Equal(t, errors.KindURLParse, errors.GetKind(err))
			assert.Zero(t, doer.calls.Load())
		})
	}
}

func TestSendToWebhook_Sends(t *testing.T) {
	doer := &countingDoer{}
	message := `say "hi"` + "\n" + `\ done`

	resp, err := request.SendToWebhook(context.Background(), doer, validWebhook, message)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.EqualValues(t, 1, doer.calls.Load())
	assert.Equal(t, "application/json", doer.last.Header.Get("Content-Type"))
	assert.Equal(t, validWebhook, doer.last.URL.String())

	var payload map[string]string
	require.NoError(t, json.Unmarshal(doer.body, &payload))
	assert.Equal(t, map[string]string{"content": message}, payload)
}

func TestCheckHost(t *testing.T) {
	tests := []struct {
		url  string
		ok   bool
		kind errors.Kind
	}{
		{url: "https://discord.com/api/webhooks/1/t", ok: true},
		{url: "https://canary.discord.com/api/webhooks/1/t", ok: true},
		{url: "https://DISCORD.com./api/webhooks/1/t", ok: true},
		{url: "https://discord.com:443/api/webhooks/1/t", ok: true},
		{url: "https://discordapp.com/api/webhooks/1/t", kind: errors.KindHostMismatch},
		{url: "::", kind: errors.KindURLParse},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := request.CheckHost(tt.url, request.DiscordDomain)
			if tt.ok {
				require.NoError(t, err)
				assert.NotNil(t, u)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.GetKind(err))
		})
	}
}
