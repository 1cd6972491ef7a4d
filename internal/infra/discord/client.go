package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	domainDiscord "activity_notification_bot/internal/domain/discord"
)

const DefaultBaseURL = "https://discord.com/api/v9"

// HTTPClient is a thin stateless adapter over the three Discord REST calls the
// sweep needs. The bot token is passed per call because it lives in the
// settings store and is re-read on every sweep.
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Ensure HTTPClient implements the domain client interface
var _ domainDiscord.Client = (*HTTPClient)(nil)

type messagePayload struct {
	Content string `json:"content"`
}

type dmChannelPayload struct {
	RecipientID string `json:"recipient_id"`
}

type idResponse struct {
	ID string `json:"id"`
}

// statusError reports a non-200 response, keeping the body Discord returned.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

// PostMessage posts a plain-text message to a channel (shared or DM).
func (c *HTTPClient) PostMessage(ctx context.Context, token, channelID, content string) error {
	endpoint := fmt.Sprintf("%s/channels/%s/messages", c.BaseURL, url.PathEscape(channelID))
	_, err := c.doJSON(ctx, http.MethodPost, endpoint, token, messagePayload{Content: content})
	if err != nil {
		return fmt.Errorf("failed to post message to channel %s: %w", channelID, err)
	}
	return nil
}

// LookupUserID resolves a stored handle to a Discord user ID.
func (c *HTTPClient) LookupUserID(ctx context.Context, token, handle string) (string, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.BaseURL, url.PathEscape(handle))
	body, err := c.doJSON(ctx, http.MethodGet, endpoint, token, nil)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return "", fmt.Errorf("no user for handle %q: %w", handle, domainDiscord.ErrUserNotFound)
		}
		return "", fmt.Errorf("failed to look up user for handle %q: %w", handle, err)
	}
	var resp idResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.ID == "" {
		return "", fmt.Errorf("user lookup for handle %q returned no id: %w", handle, domainDiscord.ErrUserNotFound)
	}
	return resp.ID, nil
}

// CreateDMChannel opens (or reuses) a DM channel with the given Discord user.
func (c *HTTPClient) CreateDMChannel(ctx context.Context, token, recipientID string) (string, error) {
	endpoint := c.BaseURL + "/users/@me/channels"
	body, err := c.doJSON(ctx, http.MethodPost, endpoint, token, dmChannelPayload{RecipientID: recipientID})
	if err != nil {
		return "", fmt.Errorf("failed to create DM channel for user %s: %w", recipientID, err)
	}
	var resp idResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.ID == "" {
		return "", fmt.Errorf("DM channel response for user %s carried no id", recipientID)
	}
	return resp.ID, nil
}

// doJSON performs one request and returns the response body. Any non-200 status
// is an error carrying the body, so callers can log what Discord said.
func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint, token string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error encoding request payload: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, body: string(body)}
	}
	return body, nil
}
