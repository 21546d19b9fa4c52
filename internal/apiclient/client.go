// Package apiclient is the REST client for the khata backend. Credentials come
// from an injected CredentialProvider; a 401 response clears them.
package apiclient

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

	"ekthaa/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Config is the connection configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithUnauthorizedHook registers fn to run after a 401 has cleared the token,
// typically to send the user back to login.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// Client talks to the backend. It is safe for concurrent use when its
// CredentialProvider is.
type Client struct {
	baseURL        string
	http           *http.Client
	creds          CredentialProvider
	onUnauthorized func()
}

// New creates a Client. creds may be nil for unauthenticated use.
func New(cfg Config, creds CredentialProvider, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type formField struct {
	name, value string
}

// call describes one request. With files set the body is multipart built from
// fields and files; otherwise body, if any, is sent as JSON.
type call struct {
	method string
	path   string
	query  url.Values
	body   any
	fields []formField
	files  []*domain.FilePart
}

func (c *Client) do(ctx context.Context, cl *call, out any) error {
	data, _, err := c.send(ctx, cl)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", cl.method, cl.path, err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, cl *call) ([]byte, http.Header, error) {
	req, err := c.newRequest(ctx, cl)
	if err != nil {
		return nil, nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", cl.method, cl.path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s %s response: %w", cl.method, cl.path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, nil, c.unauthorized(ctx)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, newAPIError(resp.StatusCode, data)
	}
	return data, resp.Header, nil
}

func (c *Client) unauthorized(ctx context.Context) error {
	var clearErr error
	if c.creds != nil {
		clearErr = c.creds.ClearToken(ctx)
	}
	if c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	if clearErr != nil {
		return fmt.Errorf("%w (clearing token: %v)", domain.ErrUnauthorized, clearErr)
	}
	return domain.ErrUnauthorized
}

func (c *Client) newRequest(ctx context.Context, cl *call) (*http.Request, error) {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case len(cl.files) > 0:
		buf, ct, err := encodeMultipart(cl.fields, cl.files)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case cl.body != nil:
		b, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		body, contentType = bytes.NewReader(b), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func encodeMultipart(fields []formField, files []*domain.FilePart) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("writing form field %s: %w", f.name, err)
		}
	}
	for _, f := range files {
		if f == nil {
			continue
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.FieldName, f.FileName))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("creating form file %s: %w", f.FieldName, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("writing form file %s: %w", f.FieldName, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// withField returns f with its field name set to name unless it already has one.
func withField(f *domain.FilePart, name string) *domain.FilePart {
	if f == nil {
		return nil
	}
	cp := *f
	if cp.FieldName == "" {
		cp.FieldName = name
	}
	if cp.FileName == "" {
		cp.FileName = name
	}
	return &cp
}

// Message is the plain {"message": ...} acknowledgement many endpoints return.
type Message struct {
	Message string `json:"message"`
}
