package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/audit"
	"github.com/FarmX-org/FarmX-mobile/internal/metrics"
)

const requestIDHeader = "X-Request-ID"

// TokenSource yields the bearer token for the current session.
type TokenSource interface {
	Token() (string, error)
}

// Auditor records mutating calls.
type Auditor interface {
	LogEntry(ctx context.Context, entry audit.Entry)
}

type invalidator interface {
	Invalidate()
}

// FormData is a request body sent as multipart form fields instead of JSON.
type FormData map[string]string

// Response is a successful backend answer.
type Response struct {
	StatusCode int
	Body       []byte
}

// IsJSON reports whether the body parses as JSON.
func (r *Response) IsJSON() bool {
	return len(bytes.TrimSpace(r.Body)) > 0 && json.Valid(r.Body)
}

// Text returns the body as trimmed text.
func (r *Response) Text() string {
	return strings.TrimSpace(string(r.Body))
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	auditor Auditor
	logger  *zap.Logger
	timeNow func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithAuditor(a Auditor) Option {
	return func(c *Client) { c.auditor = a }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  zap.NewNop(),
		timeNow: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("api")
	return c
}

// call describes one request. route is the path template used as the metric
// label; orderID and status are copied into the audit entry.
type call struct {
	method  string
	route   string
	path    string
	query   url.Values
	body    any
	orderID int64
	status  string
}

// Do sends a request following the backend conventions and returns the raw
// response. Non-2xx answers come back as *Error of KindServer.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	return c.do(ctx, call{method: method, route: path, path: path, body: body})
}

func (c *Client) do(ctx context.Context, r call) (*Response, error) {
	start := c.timeNow()
	resp, reqBody, requestID, err := c.roundTrip(ctx, r)

	outcome := "ok"
	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		outcome = apiErr.Kind.String()
	case err != nil:
		outcome = "error"
	}
	metrics.APIRequestsTotal.WithLabelValues(r.route, r.method, outcome).Inc()
	metrics.APIRequestDuration.WithLabelValues(r.route, r.method).Observe(c.timeNow().Sub(start).Seconds())

	if err != nil {
		c.logger.Warn("API request failed",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	} else {
		c.logger.Debug("API request",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
		)
	}

	if apiErr != nil && apiErr.Kind == KindServer && apiErr.StatusCode == http.StatusUnauthorized {
		if inv, ok := c.tokens.(invalidator); ok {
			inv.Invalidate()
		}
	}

	if isMutation(r.method) && outcome != KindAuth.String() {
		c.audit(ctx, r, requestID, reqBody, resp, err, outcome)
	}
	return resp, err
}

func (c *Client) roundTrip(ctx context.Context, r call) (*Response, []byte, string, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, nil, "", &Error{Kind: KindAuth, Method: r.method, Path: r.path, Err: err}
	}

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	body, contentType, err := encodeBody(r.method, r.body)
	if err != nil {
		return nil, nil, "", fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, reader)
	if err != nil {
		return nil, body, "", fmt.Errorf("build %s %s: %w", r.method, r.path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, body, requestID, &Error{Kind: KindTransport, Method: r.method, Path: r.path, Err: err}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, body, requestID, &Error{Kind: KindTransport, Method: r.method, Path: r.path, Err: err}
	}

	resp := &Response{StatusCode: httpResp.StatusCode, Body: raw}
	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return resp, body, requestID, &Error{
			Kind:       KindServer,
			Method:     r.method,
			Path:       r.path,
			StatusCode: httpResp.StatusCode,
			Message:    errorMessage(httpResp.StatusCode, raw),
		}
	}
	return resp, body, requestID, nil
}

func (c *Client) audit(ctx context.Context, r call, requestID string, reqBody []byte, resp *Response, err error, outcome string) {
	if c.auditor == nil {
		return
	}
	path := r.path
	if len(r.query) > 0 {
		path += "?" + r.query.Encode()
	}
	entry := audit.Entry{
		ID:        uuid.New(),
		Timestamp: c.timeNow(),
		RequestID: requestID,
		Method:    r.method,
		Endpoint:  r.route,
		Path:      path,
		Outcome:   outcome,
		OrderID:   r.orderID,
		NewStatus: r.status,
		Request:   audit.Truncate(reqBody),
	}
	if resp != nil {
		entry.StatusCode = resp.StatusCode
		entry.Response = audit.Truncate(resp.Body)
	}
	if err != nil {
		entry.Error = err.Error()
	}
	c.auditor.LogEntry(ctx, entry)
}

func isMutation(method string) bool {
	return method != http.MethodGet && method != http.MethodHead
}

// encodeBody returns no body for GET and HEAD or when body is nil.
func encodeBody(method string, body any) ([]byte, string, error) {
	if !isMutation(method) || body == nil {
		return nil, "", nil
	}
	if form, ok := body.(FormData); ok {
		return encodeForm(form)
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, "", err
	}
	return data, "application/json", nil
}

func encodeForm(form FormData) ([]byte, string, error) {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, k := range keys {
		if err := w.WriteField(k, form[k]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// errorMessage prefers the JSON message field, then the raw text, then the
// status text.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// decodeJSON unmarshals a 2xx body. An empty body leaves out untouched.
func decodeJSON(resp *Response, r call, out any) error {
	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return &Error{Kind: KindDecode, Method: r.method, Path: r.path, StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, r call, out any) error {
	r.method = http.MethodGet
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	return decodeJSON(resp, r, out)
}
