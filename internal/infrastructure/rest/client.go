package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gmumarket/internal/domain/repository"
	"gmumarket/pkg/errors"
	"gmumarket/pkg/logger"
)

// Client is the shared transport for all resource repositories. Every call
// is a single best-effort round trip: no retry, no timeout, no rate limit.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   repository.SessionRepository
}

// NewClient creates a transport rooted at baseURL. If httpClient is nil,
// http.DefaultClient is used.
func NewClient(baseURL string, sessions repository.SessionRepository, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		sessions:   sessions,
	}
}

// errorEnvelope is the error body shape the server produces. detail is the
// primary field, message the fallback.
type errorEnvelope struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// Do performs one JSON request against the relative path and decodes the
// response into out when out is non-nil. A bearer header is attached iff
// the session store holds an access token; anonymous requests carry no
// authorization header at all. Extra headers are merged over the defaults.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}, headers ...http.Header) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Internal("failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Internal("failed to build request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for key, values := range h {
			for _, value := range values {
				req.Header.Set(key, value)
			}
		}
	}

	if token, err := c.sessions.Token(ctx); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.Debug().Str("method", method).Str("path", path).Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Network(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Network(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.HTTPStatus(resp.StatusCode, extractMessage(data, resp.StatusCode))
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Parse(err)
	}

	return nil
}

func extractMessage(data []byte, status int) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Detail != "" {
			return envelope.Detail
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
