package sendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/messenger-webview-api/internal/messenger"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// SendFailureCode is the code returned when the Send API call failed.
	SendFailureCode = -1

	// Default timeout for Send API requests
	defaultSendTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// ErrMissingRecipient is returned when a message has no recipient PSID.
var ErrMissingRecipient = errors.New("recipient id is required")

// Client posts messages to the Messenger Send API.
type Client struct {
	client      *http.Client
	endpoint    string
	accessToken string
}

// NewClient creates a Client for the Send API at baseURL (for example https://graph.facebook.com)
// and API version (for example v2.6). A nil http client gets a default one.
func NewClient(client *http.Client, baseURL, version, accessToken string) *Client {
	if client == nil {
		client = &http.Client{
			Timeout: defaultSendTimeout,
		}
	}
	endpoint := strings.TrimSuffix(baseURL, "/") + "/" + strings.Trim(version, "/") + "/me/messages"
	return &Client{
		client:      client,
		endpoint:    endpoint,
		accessToken: accessToken,
	}
}

// SendMessage delivers a single envelope. It does not retry.
func (c *Client) SendMessage(ctx context.Context, req *messenger.SendRequest) error {
	if req == nil || req.Recipient.ID == "" {
		return ErrMissingRecipient
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	target := c.endpoint + "?" + url.Values{"access_token": {c.accessToken}}.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewBuffer(body))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return richerrors.Error{
				Code: SendFailureCode,
				Err:  fmt.Errorf("invalid Send API URL: %w", err),
			}
		}
		return fmt.Errorf("failed to create send request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("failed to POST to Send API: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: SendFailureCode,
			Err:  fmt.Errorf("send API returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	return nil
}
