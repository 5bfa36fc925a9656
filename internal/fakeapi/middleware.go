package fakeapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/audit"
	"github.com/FarmX-org/FarmX-mobile/internal/metrics"
	"github.com/FarmX-org/FarmX-mobile/internal/session"
)

type contextKey string

const requestCtxKey contextKey = "request"

// requestInfo is filled in by inner middleware and read back by requestLog.
type requestInfo struct {
	user string
}

type role string

func userFrom(ctx context.Context) string {
	if info, ok := ctx.Value(requestCtxKey).(*requestInfo); ok {
		return info.user
	}
	return ""
}

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
	buffer     bytes.Buffer
}

func newResponseWriterWrapper(w http.ResponseWriter) *responseWriterWrapper {
	return &responseWriterWrapper{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriterWrapper) Write(b []byte) (int, error) {
	w.buffer.Write(b)
	return w.ResponseWriter.Write(b)
}

// requestLog logs every routed request, counts it by route template and
// audits the mutating ones.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.timeNow()
		info := &requestInfo{}
		r = r.WithContext(context.WithValue(r.Context(), requestCtxKey, info))

		var requestBody []byte
		if r.Body != nil && !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(requestBody))
		}

		wrw := newResponseWriterWrapper(w)
		next.ServeHTTP(wrw, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		metrics.FakeAPIRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(wrw.statusCode)).Inc()

		s.logger.Debug("Request served",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrw.statusCode),
			zap.String("user", info.user),
			zap.Duration("duration", s.timeNow().Sub(start)),
		)

		if s.auditor == nil || r.Method == http.MethodGet || r.Method == http.MethodHead {
			return
		}
		orderID, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		outcome := "ok"
		if wrw.statusCode >= http.StatusBadRequest {
			outcome = "rejected"
		}
		s.auditor.LogEntry(r.Context(), audit.Entry{
			ID:         uuid.New(),
			Timestamp:  start,
			RequestID:  r.Header.Get("X-Request-ID"),
			Method:     r.Method,
			Endpoint:   route,
			Path:       r.URL.RequestURI(),
			StatusCode: wrw.statusCode,
			Outcome:    outcome,
			User:       info.user,
			OrderID:    orderID,
			NewStatus:  r.URL.Query().Get("status"),
			Request:    audit.Truncate(requestBody),
			Response:   audit.Truncate(wrw.buffer.Bytes()),
		})
	})
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		var claims session.Claims
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.secret, nil
		}, jwt.WithTimeFunc(s.timeNow))
		if err != nil || !token.Valid {
			respondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		if _, ok := s.store.User(claims.Subject); !ok {
			respondError(w, http.StatusUnauthorized, "Unknown user")
			return
		}

		if info, ok := r.Context().Value(requestCtxKey).(*requestInfo); ok {
			info.user = claims.Subject
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), requestCtxKey, &requestInfo{user: claims.Subject})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole checks the stored roles of the caller, not the token claims.
func (s *Server) requireRole(want role, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := s.store.User(userFrom(r.Context()))
		if !ok || !u.HasRole(string(want)) {
			respondError(w, http.StatusForbidden, "Access denied")
			return
		}
		h(w, r)
	})
}

func pathID(r *http.Request, key string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[key], 10, 64)
	return id
}
