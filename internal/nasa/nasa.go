// Package nasa provides a client for a selection of NASA open data APIs.
//
// It covers the Mars rover photo archive, the near earth object feed,
// the InSight Mars weather service and the EPIC Earth imagery catalog.
// Every request carries an api_key query parameter. The shared DEMO_KEY
// is rate limited upstream to 30 requests per hour and 50 per day.
package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

const (
	baseURL = "https://api.nasa.gov"

	// DemoKey is the public evaluation key for the NASA APIs.
	DemoKey = "DEMO_KEY"

	dateFormat = "2006-01-02"
)

// APIError represents an error response from a NASA API with status code >= 400.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("NASA API error: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("NASA API error: %s", e.Status)
}

// Client represents a client for the NASA APIs.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// New returns a new Client.
//
// When apiKey is empty the shared DEMO_KEY is used.
// When no httpClient (nil) is provided it will use the default client.
func New(apiKey string, httpClient *http.Client) *Client {
	if apiKey == "" {
		apiKey = DemoKey
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{apiKey: apiKey, httpClient: httpClient}
}

// APIKey returns the configured API key.
func (c *Client) APIKey() string {
	return c.apiKey
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	u := fmt.Sprintf("%s%s?%s", baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	slog.Info("Sending HTTP request", "method", req.Method, "url", redactKey(req.URL))
	r, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if r.StatusCode >= 400 {
		slog.Warn("NASA API response not OK", "status", r.Status, "url", redactKey(req.URL))
		return nil, APIError{StatusCode: r.StatusCode, Status: r.Status, Message: errorMessage(body)}
	}
	slog.Debug("NASA API response", "url", redactKey(req.URL), "size", len(body))
	return body, nil
}

// getJSON fetches a path from the API and unmarshals the response into an object.
func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var o T
	body, err := c.get(ctx, path, query)
	if err != nil {
		return o, err
	}
	if err := json.Unmarshal(body, &o); err != nil {
		return o, fmt.Errorf("unmarshal response from %s: %w", path, err)
	}
	return o, nil
}

// errorMessage extracts a human readable message from an API error body.
// The NASA services use several different shapes for error responses.
func errorMessage(body []byte) string {
	var nested struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &nested); err == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}
	var flat struct {
		ErrorMessage string `json:"error_message"`
		Errors       string `json:"errors"`
		Msg          string `json:"msg"`
	}
	if err := json.Unmarshal(body, &flat); err == nil {
		if flat.ErrorMessage != "" {
			return flat.ErrorMessage
		}
		if flat.Errors != "" {
			return flat.Errors
		}
		if flat.Msg != "" {
			return flat.Msg
		}
	}
	return ""
}

// redactKey returns a URL as string with the API key value masked,
// so that keys never leak into logs.
func redactKey(u *url.URL) string {
	q := u.Query()
	if q.Has("api_key") {
		q.Set("api_key", "xxx")
	}
	r := *u
	r.RawQuery = q.Encode()
	return r.String()
}
