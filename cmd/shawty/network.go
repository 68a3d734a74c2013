//go:build !nonetwork

package main

import (
	"io"
	"net/http"
	"strings"

	"github.com/Lev10x/shawty/errors"
	"github.com/Lev10x/shawty/request"
)

// NetworkCmds holds the commands that need the network feature.
type NetworkCmds struct {
	Get     GetCmd     `cmd:"" help:"Send a GET request and print the response"`
	Post    PostCmd    `cmd:"" help:"Send a POST request and print the response"`
	Webhook WebhookCmd `cmd:"" help:"Send a message to a Discord webhook"`
}

// client builds the HTTP client described by the configuration.
func (g *Global) client() (*http.Client, error) {
	opts := []request.ClientOption{
		request.WithTimeout(g.Config.HTTP.TimeoutDuration()),
		request.WithLogger(g.Logger),
	}
	if ua := g.Config.HTTP.UserAgent; ua != "" {
		opts = append(opts, request.WithUserAgent(ua))
	}
	if proxy := g.Config.HTTP.Proxy; proxy != "" {
		opts = append(opts, request.WithProxy(proxy))
	}
	if g.Metrics != nil {
		opts = append(opts, request.WithMetrics(g.Metrics))
	}
	return request.NewClient(opts...)
}

// printResponse prints the status line and body of resp, then closes it.
func printResponse(g *Global, resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Read("failed to read response body", err)
	}

	g.Logger.Debug("response received", "status", resp.StatusCode, "bytes", len(body))
	if err := g.Console.Println(resp.Status); err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return g.Console.Print(string(body))
}

// GetCmd implements the 'get' command.
type GetCmd struct {
	URL string `arg:"" help:"Request URL"`
}

func (c *GetCmd) Run(g *Global) error {
	client, err := g.client()
	if err != nil {
		return err
	}
	resp, err := request.Get(g.Context, client, c.URL)
	if err != nil {
		return err
	}
	return printResponse(g, resp)
}

// PostCmd implements the 'post' command.
type PostCmd struct {
	URL    string            `arg:"" help:"Request URL"`
	Body   string            `short:"d" help:"Request body"`
	Header map[string]string `short:"H" help:"Request header as NAME=VALUE (repeatable)"`
}

func (c *PostCmd) Run(g *Global) error {
	client, err := g.client()
	if err != nil {
		return err
	}

	var body []byte
	if c.Body != "" {
		body = []byte(c.Body)
	}
	resp, err := request.Post(g.Context, client, c.URL, body, c.Header)
	if err != nil {
		return err
	}
	return printResponse(g, resp)
}

// WebhookCmd implements the 'webhook' command.
type WebhookCmd struct {
	Message []string `arg:"" help:"Message words"`
	URL     string   `help:"Webhook URL; defaults to webhook.url from the configuration"`
}

func (c *WebhookCmd) Run(g *Global) error {
	target := c.URL
	if target == "" {
		target = g.Config.Webhook.URL
	}

	client, err := g.client()
	if err != nil {
		return err
	}
	resp, err := request.SendToWebhook(g.Context, client, target, strings.Join(c.Message, " "))
	if err != nil {
		return err
	}
	return printResponse(g, resp)
}
