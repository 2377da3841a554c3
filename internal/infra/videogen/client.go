package videogen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"pro-video-services/internal/pkg/errs"
)

// maxErrorBody caps how much of a failed response is kept in the error.
const maxErrorBody = 512

// Endpoint is the base URL and credential of one vendor API.
type Endpoint struct {
	BaseURL string
	APIKey  string
}

func (e Endpoint) url(path string) string {
	return strings.TrimRight(e.BaseURL, "/") + path
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

type jsonClient struct {
	http     *http.Client
	endpoint Endpoint
}

// postJSON sends body as JSON and decodes a 2xx response into out.
func (c jsonClient) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.url(path), bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.endpoint.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errs.Newf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decode response")
	}
	return nil
}

func missingField(name string) error {
	return errs.Newf("malformed response: missing %s", name)
}
