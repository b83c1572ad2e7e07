// Package discord posts messages and file attachments to Discord webhooks.
package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"hockey-notify-service/internal/providers"
)

const defaultHTTPTimeout = 10 * time.Second

// Client executes Discord webhooks. The zero value is not usable; construct
// with NewClient.
type Client struct {
	session *discordgo.Session
}

// NewClient builds a webhook client. Webhook execution needs no bot token;
// the session exists only to reuse discordgo's REST plumbing. A custom HTTP
// client may be injected for tests and timeouts.
func NewClient(httpClient *http.Client) (*Client, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	session.Client = httpClient
	return &Client{session: session}, nil
}

// PostMessage posts a plain text message to the webhook URL. One attempt, no
// retries; repeated calls produce repeated Discord messages.
func (c *Client) PostMessage(ctx context.Context, hookURL, content string) error {
	if c == nil || c.session == nil {
		return &providers.DeliveryError{Err: errors.New("webhook client not configured")}
	}
	id, token, err := parseWebhookURL(hookURL)
	if err != nil {
		return &providers.DeliveryError{Err: err}
	}

	params := &discordgo.WebhookParams{Content: content}
	if _, err := c.session.WebhookExecute(id, token, true, params, discordgo.WithContext(ctx)); err != nil {
		return asDeliveryError(err)
	}
	return nil
}

// PostAttachment posts a single file with an optional caption to the webhook
// URL using a multipart form.
func (c *Client) PostAttachment(ctx context.Context, hookURL, filename string, data []byte, caption string) error {
	if c == nil || c.session == nil {
		return &providers.DeliveryError{Err: errors.New("webhook client not configured")}
	}
	id, token, err := parseWebhookURL(hookURL)
	if err != nil {
		return &providers.DeliveryError{Err: err}
	}

	params := &discordgo.WebhookParams{
		Content: caption,
		Files: []*discordgo.File{
			{
				Name:        filename,
				ContentType: "text/csv",
				Reader:      bytes.NewReader(data),
			},
		},
	}
	if _, err := c.session.WebhookExecute(id, token, true, params, discordgo.WithContext(ctx)); err != nil {
		return asDeliveryError(err)
	}
	return nil
}

// parseWebhookURL extracts the webhook ID and token from a Discord webhook
// URL of the form https://discord.com/api/webhooks/{id}/{token}.
func parseWebhookURL(raw string) (id, token string, err error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("malformed webhook URL: %w", err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, segment := range segments {
		if segment == "webhooks" && i+2 < len(segments) && segments[i+1] != "" && segments[i+2] != "" {
			return segments[i+1], segments[i+2], nil
		}
	}
	return "", "", errors.New("webhook URL missing id/token")
}

func asDeliveryError(err error) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return &providers.DeliveryError{StatusCode: restErr.Response.StatusCode, Err: err}
	}
	return &providers.DeliveryError{Err: err}
}
