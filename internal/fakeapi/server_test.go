package fakeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarmX-org/FarmX-mobile/internal/audit"
	"github.com/FarmX-org/FarmX-mobile/internal/metrics"
	"github.com/FarmX-org/FarmX-mobile/internal/session"
)

const testSecret = "test-secret"

type recordingAuditor struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (a *recordingAuditor) LogEntry(_ context.Context, e audit.Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, e)
}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	return New(newTestStore(), testSecret, opts...)
}

func token(t *testing.T, s *Server, user string) string {
	t.Helper()
	tok, err := s.IssueToken(user, time.Hour)
	require.NoError(t, err)
	return tok
}

func serve(s *Server, method, target, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestServer_Authentication(t *testing.T) {
	s := newTestServer(t)

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "consumer"},
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	expired, err := s.IssueToken("consumer", -time.Minute)
	require.NoError(t, err)

	ghost, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "ghost"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		msg    string
	}{
		{name: "missing", header: "", msg: "Unauthorized"},
		{name: "not bearer", header: "Basic abc", msg: "Invalid token format"},
		{name: "wrong key", header: "Bearer " + other, msg: "Invalid or expired token"},
		{name: "expired", header: "Bearer " + expired, msg: "Invalid or expired token"},
		{name: "unknown user", header: "Bearer " + ghost, msg: "Unknown user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders/consumer", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.msg, message(t, rec))
		})
	}

	_, err = s.IssueToken("ghost", time.Hour)
	assert.Error(t, err)
}

func TestServer_Roles(t *testing.T) {
	s := newTestServer(t)

	rec := serve(s, http.MethodGet, "/orders/handler", token(t, s, "consumer"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied", message(t, rec))

	rec = serve(s, http.MethodGet, "/orders/handler", token(t, s, "handler"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(s, http.MethodGet, "/products/store", token(t, s, "handler"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_FarmOrders(t *testing.T) {
	s := newTestServer(t)
	tok := token(t, s, "farmer")

	rec := serve(s, http.MethodGet, "/orders/farm/3", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orderStatus":"PENDING"`)

	rec = serve(s, http.MethodGet, "/orders/farm/77", tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(s, http.MethodPut, "/orders/farm-order/1001/status?status=ready&deliveryTime=2026-03-01T14%3A30", tok)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(s, http.MethodPut, "/orders/farm-order/1001/status?status=SHIPPED", tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid status: SHIPPED", message(t, rec))
}

func TestServer_Deliver(t *testing.T) {
	auditor := &recordingAuditor{}
	s := newTestServer(t, WithAuditor(auditor))
	tok := token(t, s, "handler")

	rec := serve(s, http.MethodPut, "/orders/handler/102/deliver", tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Delivery code is required", message(t, rec))

	rec = serve(s, http.MethodPut, "/orders/handler/102/deliver?code=999999", tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Pin code is incorrect", message(t, rec))

	rec = serve(s, http.MethodPut, "/orders/handler/102/deliver?code=123456", tok)
	assert.Equal(t, http.StatusOK, rec.Code)

	auditor.mu.Lock()
	defer auditor.mu.Unlock()
	require.Len(t, auditor.entries, 3)
	last := auditor.entries[2]
	assert.Equal(t, int64(102), last.OrderID)
	assert.Equal(t, "handler", last.User)
	assert.Equal(t, http.StatusOK, last.StatusCode)
	assert.Equal(t, "ok", last.Outcome)
	assert.Equal(t, "rejected", auditor.entries[1].Outcome)
	assert.Contains(t, last.Response, "Order delivered successfully")
}

func TestServer_GetIsNotAudited(t *testing.T) {
	auditor := &recordingAuditor{}
	s := newTestServer(t, WithAuditor(auditor))

	before := testutil.ToFloat64(metrics.FakeAPIRequestsTotal.WithLabelValues("/orders/consumer", http.MethodGet, "200"))
	rec := serve(s, http.MethodGet, "/orders/consumer", token(t, s, "consumer"))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, auditor.entries)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.FakeAPIRequestsTotal.WithLabelValues("/orders/consumer", http.MethodGet, "200")))
}

func TestServer_DeliveryCode(t *testing.T) {
	s := newTestServer(t)
	tok := token(t, s, "consumer")

	rec := serve(s, http.MethodGet, "/orders/consumer/101/delivery-code", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":"123456"}`, rec.Body.String())

	rec = serve(s, http.MethodGet, "/orders/consumer/103/delivery-code", tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UpdateMe(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/users/me", strings.NewReader("name=Noor+K&email=n%40farmx.test"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token(t, s, "noor"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	u, ok := s.Store().User("noor")
	require.True(t, ok)
	assert.Equal(t, "Noor K", u.Name)
	assert.Equal(t, "n@farmx.test", u.Email)
}
