package fakeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/FarmX-org/FarmX-mobile/internal/audit"
	"github.com/FarmX-org/FarmX-mobile/internal/session"
)

// Auditor receives one entry per mutating request served.
type Auditor interface {
	LogEntry(ctx context.Context, entry audit.Entry)
}

// Server is an in-memory stand-in for the FarmX backend, used for local
// development and client tests.
type Server struct {
	store   *Store
	secret  []byte
	logger  *zap.Logger
	auditor Auditor
	timeNow func() time.Time

	mu     sync.Mutex
	server *http.Server
	closed bool
}

type Option func(*Server)

func WithAuditor(a Auditor) Option {
	return func(s *Server) { s.auditor = a }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Server) { s.logger = l }
}

func New(store *Store, secret string, opts ...Option) *Server {
	s := &Server{
		store:   store,
		secret:  []byte(secret),
		logger:  zap.NewNop(),
		timeNow: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("fakeapi")
	return s
}

func (s *Server) Store() *Store { return s.store }

// IssueToken signs a session token for a seeded user.
func (s *Server) IssueToken(username string, ttl time.Duration) (string, error) {
	u, ok := s.store.User(username)
	if !ok {
		return "", errors.New("unknown user " + username)
	}
	now := s.timeNow()
	claims := session.Claims{
		Roles: u.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Run serves until Shutdown. Calling it after Shutdown returns immediately.
func (s *Server) Run(addr string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	s.server = srv
	s.mu.Unlock()

	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	srv := s.server
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	s.logger.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("HTTP server shutdown completed")
	return nil
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestLog)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	a := r.NewRoute().Subrouter()
	a.Use(s.authenticate)

	consumer := role(session.RoleConsumer)
	farmer := role(session.RoleFarmer)
	handler := role(session.RoleHandler)

	a.Handle("/orders/consumer", s.requireRole(consumer, s.handleConsumerOrders)).Methods(http.MethodGet)
	a.Handle("/orders/consumer/{id:[0-9]+}/regenerate-code", s.requireRole(consumer, s.handleRegenerateCode)).Methods(http.MethodPut)
	a.Handle("/orders/consumer/{id:[0-9]+}/delivery-code", s.requireRole(consumer, s.handleDeliveryCode)).Methods(http.MethodGet)
	a.Handle("/orders/farm/{farmId:[0-9]+}", s.requireRole(farmer, s.handleFarmOrders)).Methods(http.MethodGet)
	a.Handle("/orders/farm-order/{id:[0-9]+}/status", s.requireRole(farmer, s.handleFarmOrderStatus)).Methods(http.MethodPut)
	a.Handle("/orders/handler", s.requireRole(handler, s.handleHandlerOrders)).Methods(http.MethodGet)
	a.Handle("/orders/handler/{id:[0-9]+}/status", s.requireRole(handler, s.handleHandlerOrderStatus)).Methods(http.MethodPut)
	a.Handle("/orders/handler/{id:[0-9]+}/deliver", s.requireRole(handler, s.handleDeliver)).Methods(http.MethodPut)
	a.Handle("/orders/from-cart", s.requireRole(consumer, s.handleCheckout)).Methods(http.MethodPost)

	a.Handle("/feedback", s.requireRole(consumer, s.handleSubmitFeedback)).Methods(http.MethodPost)
	a.Handle("/feedback/farmer", s.requireRole(farmer, s.handleFarmerFeedback)).Methods(http.MethodGet)

	a.HandleFunc("/products/store", s.handleProducts).Methods(http.MethodGet)
	a.Handle("/cart", s.requireRole(consumer, s.handleCart)).Methods(http.MethodGet)
	a.Handle("/cart/items", s.requireRole(consumer, s.handleAddToCart)).Methods(http.MethodPost)
	a.Handle("/cart/items/{id:[0-9]+}", s.requireRole(consumer, s.handleUpdateCartItem)).Methods(http.MethodPut)
	a.Handle("/cart/clear", s.requireRole(consumer, s.handleClearCart)).Methods(http.MethodDelete)

	a.Handle("/farms", s.requireRole(farmer, s.handleFarms)).Methods(http.MethodGet)
	a.HandleFunc("/users", s.handleUsers).Methods(http.MethodGet)
	a.HandleFunc("/users/me", s.handleMe).Methods(http.MethodGet)
	a.HandleFunc("/users/me", s.handleUpdateMe).Methods(http.MethodPut)

	return r
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondStoreError maps a store failure to its status.
func respondStoreError(w http.ResponseWriter, err error) {
	var se *Error
	if errors.As(err, &se) {
		respondError(w, se.Status, se.Message)
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
