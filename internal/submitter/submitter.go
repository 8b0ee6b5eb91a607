package submitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/greencode4523/applyctl/internal/model"
	"github.com/greencode4523/applyctl/internal/signature"
)

// Client posts signed submissions to a single endpoint. One-shot: no retries,
// no redirect overrides, timeout owned by the embedded http.Client.
type Client struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// StatusError is a non-2xx response from the endpoint.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.Code, e.Body)
}

// RejectedError is a 2xx response whose success field was falsy or absent.
type RejectedError struct {
	Body string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("submission was not successful, response: %s", e.Body)
}

// Submit POSTs body with the given signature header and classifies the
// outcome. On confirmation it returns the receipt ("" if the service sent
// none); every other outcome is an error carrying enough detail to diagnose.
func (c *Client) Submit(ctx context.Context, body []byte, sig string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set(signature.Header, sig)

	res, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", c.endpoint, err)
	}

	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode/100 != 2 {
		errBody := strings.TrimSpace(string(raw))
		if errBody == "" {
			errBody = "no error details"
		}

		return "", &StatusError{Code: res.StatusCode, Body: errBody}
	}

	var decoded model.Response
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if !decoded.Accepted() {
		return "", &RejectedError{Body: strings.TrimSpace(string(raw))}
	}

	return decoded.Receipt(), nil
}
