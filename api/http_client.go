package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// HTTPClient holds a base URL and shared HTTP client configuration.
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new HTTPClient with default settings.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Request makes an HTTP request and decodes the JSON response into response.
func (c *HTTPClient) Request(method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	resBody, err := c.do(method, endpoint, headers, body)
	if err != nil {
		return err
	}
	if response != nil {
		return json.Unmarshal(resBody, response)
	}
	return nil
}

// RequestRaw makes an HTTP request and returns the raw response body, for
// endpoints that serve HTML rather than JSON.
func (c *HTTPClient) RequestRaw(method, endpoint string, headers map[string]string) (string, error) {
	resBody, err := c.do(method, endpoint, headers, nil)
	if err != nil {
		return "", err
	}
	return string(resBody), nil
}

func (c *HTTPClient) do(method, endpoint string, headers map[string]string, body interface{}) ([]byte, error) {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		requestBody = jsonBody
	}

	req, err := http.NewRequest(method, c.BaseURL+endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, errors.New("unexpected status code: " + res.Status)
	}

	return resBody, nil
}
