package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// APIError carries the server's message for a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Transport handles low-level HTTP against the API origin.
type Transport struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewTransport(baseURL string) *Transport {
	return &Transport{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query map[string]string) (string, error) {
	u, err := url.Parse(t.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", t.BaseURL+path, err)
	}
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (t *Transport) do(method, path string, query map[string]string, data any, out any) (int, error) {
	fullURL, err := t.buildURL(path, query)
	if err != nil {
		return 0, err
	}

	var body io.Reader
	if data != nil {
		encoded, err := json.Marshal(data)
		if err != nil {
			return 0, err
		}
		body = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequest(method, fullURL, body)
	if err != nil {
		return 0, err
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode >= 300 {
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Message == "" {
			envelope.Message = string(raw)
		}
		return resp.StatusCode, &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// Get sends a GET request and decodes the JSON response into out.
func (t *Transport) Get(path string, query map[string]string, out any) (int, error) {
	return t.do(http.MethodGet, path, query, nil, out)
}

// Post sends a POST request with JSON body.
func (t *Transport) Post(path string, data any, out any) (int, error) {
	return t.do(http.MethodPost, path, nil, data, out)
}

// Delete sends a DELETE request.
func (t *Transport) Delete(path string, out any) (int, error) {
	return t.do(http.MethodDelete, path, nil, nil, out)
}
