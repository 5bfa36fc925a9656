package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarmX-org/FarmX-mobile/internal/audit"
	"github.com/FarmX-org/FarmX-mobile/internal/metrics"
	"github.com/FarmX-org/FarmX-mobile/internal/session"
)

type stubTokens struct {
	token       string
	err         error
	invalidated int
}

func (s *stubTokens) Token() (string, error) { return s.token, s.err }
func (s *stubTokens) Invalidate()            { s.invalidated++ }

type recordingAuditor struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (a *recordingAuditor) LogEntry(_ context.Context, e audit.Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, e)
}

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) (*Client, *stubTokens) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	tokens := &stubTokens{token: "tok"}
	return NewClient(srv.URL+"/", tokens, 0, opts...), tokens
}

func TestClient_RequestConvention(t *testing.T) {
	t.Run("get sends bearer and request id without body", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/farms", r.URL.Path)
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			_, err := uuid.Parse(r.Header.Get(requestIDHeader))
			assert.NoError(t, err)
			body, _ := io.ReadAll(r.Body)
			assert.Empty(t, body)
			_, _ = w.Write([]byte(`[{"id":1,"name":"Green Acres"}]`))
		})

		farms, err := c.Farms(context.Background())
		require.NoError(t, err)
		require.Len(t, farms, 1)
		assert.Equal(t, "Green Acres", farms[0].Name)
	})

	t.Run("json body on mutations", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"productId":5,"quantity":2}`, string(body))
			w.WriteHeader(http.StatusCreated)
		})

		require.NoError(t, c.AddToCart(context.Background(), 5, 2))
	})

	t.Run("nil body sends nothing", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.Empty(t, body)
			_, _ = w.Write([]byte("Cart cleared"))
		})

		require.NoError(t, c.ClearCart(context.Background()))
	})

	t.Run("form data is multipart", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Hana", r.FormValue("name"))
			assert.Equal(t, "0790000000", r.FormValue("phone"))
			_, _ = w.Write([]byte(`{"id":3,"username":"hana","name":"Hana","roles":["ROLE_HANDLER"]}`))
		})

		u, err := c.UpdateProfile(context.Background(), FormData{"name": "Hana", "phone": "0790000000"})
		require.NoError(t, err)
		assert.Equal(t, "Hana", u.Name)
	})
}

func TestClient_Errors(t *testing.T) {
	t.Run("missing token is raised before sending", func(t *testing.T) {
		hits := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
		defer srv.Close()
		c := NewClient(srv.URL, session.New(session.Static{}), 0)

		_, err := c.ConsumerOrders(context.Background())
		require.Error(t, err)
		assert.True(t, IsKind(err, KindAuth))
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		assert.ErrorIs(t, err, session.ErrNoToken)
		assert.Equal(t, MsgLoginRequired, Message(err, "fallback"))
		assert.Zero(t, hits)
	})

	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "json message", status: http.StatusBadRequest, body: `{"message":"Pin code is incorrect"}`, wantMsg: "Pin code is incorrect"},
		{name: "json without message", status: http.StatusBadRequest, body: `{"error":"boom"}`, wantMsg: `{"error":"boom"}`},
		{name: "raw text", status: http.StatusConflict, body: "Order already delivered\n", wantMsg: "Order already delivered"},
		{name: "empty body", status: http.StatusInternalServerError, body: "", wantMsg: "Internal Server Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := c.ConfirmDelivery(context.Background(), 42, "000000")
			require.Error(t, err)
			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, KindServer, apiErr.Kind)
			assert.Equal(t, tt.status, StatusCode(err))
			assert.Equal(t, tt.wantMsg, Message(err, "fallback"))
		})
	}

	t.Run("unauthorized invalidates the session", func(t *testing.T) {
		c, tokens := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := c.Cart(context.Background())
		assert.True(t, IsKind(err, KindServer))
		assert.Equal(t, 1, tokens.invalidated)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()
		c := NewClient(url, &stubTokens{token: "tok"}, 0)

		_, err := c.Users(context.Background())
		assert.True(t, IsKind(err, KindTransport))
		assert.Equal(t, "Network error", Message(err, "Network error"))
	})

	t.Run("undecodable body", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"not":"a list"}`))
		})

		_, err := c.StoreProducts(context.Background())
		assert.True(t, IsKind(err, KindDecode))
	})
}

func TestClient_AuditAndMetrics(t *testing.T) {
	auditor := &recordingAuditor{}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Pin code is incorrect"}`))
	}, WithAuditor(auditor))

	counter := metrics.APIRequestsTotal.WithLabelValues("/orders/handler/{id}/deliver", http.MethodPut, "server")
	before := testutil.ToFloat64(counter)

	_, err := c.HandlerOrders(context.Background())
	require.NoError(t, err)
	require.Error(t, c.ConfirmDelivery(context.Background(), 42, "654321"))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	require.Len(t, auditor.entries, 1)
	e := auditor.entries[0]
	assert.Equal(t, http.MethodPut, e.Method)
	assert.Equal(t, "/orders/handler/{id}/deliver", e.Endpoint)
	assert.Equal(t, "/orders/handler/42/deliver?code=654321", e.Path)
	assert.Equal(t, int64(42), e.OrderID)
	assert.Equal(t, "DELIVERED", e.NewStatus)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
	assert.Equal(t, "server", e.Outcome)
	assert.NotEmpty(t, e.RequestID)
	assert.Contains(t, e.Error, "Pin code is incorrect")
}
