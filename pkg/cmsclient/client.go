// Package cmsclient talks to the CMS HTTP API for page renderers and the
// admin editors.
package cmsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"clinic-cms/internal/domains/content/model"
)

const (
	defaultTimeout = 10 * time.Second
	apiPath        = "/api/cms"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status     int
	Message    string
	Code       string
	Suggestion string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("cms api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("cms api: %d: %s", e.Status, e.Message)
}

// IsReadOnly reports whether the server refused the write because its
// storage is read-only.
func (e *APIError) IsReadOnly() bool {
	return e.Code == model.CodeReadOnly
}

type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

type Option func(*Client)

// WithHTTPClient replaces the default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithToken sends token as a Bearer credential on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		client:  &http.Client{Timeout: defaultTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// =====================================================
// READ
// =====================================================

// Fetch performs one GET. With a section name it returns that section's
// raw value, which is nil when the document lacks it; without one it
// returns the whole document.
func (c *Client) Fetch(ctx context.Context, section string) (json.RawMessage, error) {
	path := apiPath
	if section != "" {
		path += "?section=" + url.QueryEscape(section)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, "", &raw); err != nil {
		return nil, err
	}
	if section == "" {
		return raw, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	value := wrapped[section]
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return nil, nil
	}
	return value, nil
}

// FetchDocument returns the whole document.
func (c *Client) FetchDocument(ctx context.Context) (*model.Document, error) {
	raw, err := c.Fetch(ctx, "")
	if err != nil {
		return nil, err
	}
	var doc model.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

// Settings returns the editor feature flags.
func (c *Client) Settings(ctx context.Context) (model.SettingsResponse, error) {
	var out model.SettingsResponse
	err := c.do(ctx, http.MethodGet, apiPath+"/settings", nil, "", &out)
	return out, err
}

// =====================================================
// WRITE
// =====================================================

// UpdateSection replaces one section and returns the stored value.
func (c *Client) UpdateSection(ctx context.Context, section string, data interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]interface{}{"section": section, "data": data})
	if err != nil {
		return nil, err
	}

	var out struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, apiPath, bytes.NewReader(payload), "application/json", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Replace stores doc as the whole document.
func (c *Client) Replace(ctx context.Context, doc *model.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, apiPath, bytes.NewReader(payload), "application/json", nil)
}

// Upload sends an image and returns the data URI to place in a section.
func (c *Client) Upload(ctx context.Context, filename, contentType string, r io.Reader) (model.UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	if err != nil {
		return model.UploadResponse{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return model.UploadResponse{}, err
	}
	if err := mw.Close(); err != nil {
		return model.UploadResponse{}, err
	}

	var out model.UploadResponse
	err = c.do(ctx, http.MethodPost, apiPath+"/upload", &buf, mw.FormDataContentType(), &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var body struct {
		Error      string `json:"error"`
		Code       string `json:"code"`
		Suggestion string `json:"suggestion"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if json.Unmarshal(raw, &body) == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		}
		apiErr.Code = body.Code
		apiErr.Suggestion = body.Suggestion
	}
	return apiErr
}
