// Package tmdb is a thin client for The Movie Database (TMDB) v3 API,
// covering the handful of operations the identifier and renamer need.
package tmdb

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

type Config struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
}

type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:  baseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// get issues a GET for resource with the supplied query parameters and
// decodes a 200 response into result. Non-2xx responses come back as a
// *StatusError carrying TMDB's status message.
func (c *Client) get(resource string, params url.Values, result interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("unable to request data: API key missing")
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	fullURL := c.baseURL + resource + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			StatusMessage string `json:"status_message"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		return &StatusError{Code: resp.StatusCode, Message: body.StatusMessage}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// Ping verifies the configured credential by fetching a well-known movie
// record. An invalid key surfaces as a 401 StatusError.
func (c *Client) Ping() error {
	if _, err := c.GetMovie(550); err != nil {
		return fmt.Errorf("tmdb credential check failed: %w", err)
	}
	return nil
}
