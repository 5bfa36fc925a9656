package fakeapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FarmX-org/FarmX-mobile/internal/model"
	"github.com/FarmX-org/FarmX-mobile/internal/orders"
)

func (s *Server) handleConsumerOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.ConsumerOrders(userFrom(r.Context())))
}

func (s *Server) handleFarmOrders(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.FarmOrders(userFrom(r.Context()), pathID(r, "farmId"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleHandlerOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.HandlerOrders())
}

func statusParam(w http.ResponseWriter, r *http.Request) (orders.Status, bool) {
	raw := r.URL.Query().Get("status")
	status, err := orders.ParseStatus(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid status: "+raw)
		return "", false
	}
	return status, true
}

func (s *Server) handleFarmOrderStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := statusParam(w, r)
	if !ok {
		return
	}
	err := s.store.UpdateFarmOrderStatus(userFrom(r.Context()), pathID(r, "id"), status, r.URL.Query().Get("deliveryTime"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleHandlerOrderStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := statusParam(w, r)
	if !ok {
		return
	}
	if err := s.store.UpdateHandlerOrderStatus(pathID(r, "id"), status, r.URL.Query().Get("estimatedDeliveryTime")); err != nil {
		respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDeliver(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		respondError(w, http.StatusBadRequest, "Delivery code is required")
		return
	}
	if err := s.store.ConfirmDelivery(pathID(r, "id"), code); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order delivered successfully"})
}

func (s *Server) handleRegenerateCode(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RegenerateCode(userFrom(r.Context()), pathID(r, "id")); err != nil {
		respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDeliveryCode(w http.ResponseWriter, r *http.Request) {
	code, err := s.store.DeliveryCode(userFrom(r.Context()), pathID(r, "id"))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"code": code})
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	order, err := s.store.Checkout(userFrom(r.Context()))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleSubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req model.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	fb, err := s.store.SubmitFeedback(userFrom(r.Context()), req)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, fb)
}

func (s *Server) handleFarmerFeedback(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.FarmerFeedback(userFrom(r.Context())))
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Products())
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Cart(userFrom(r.Context())))
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.store.AddToCart(userFrom(r.Context()), req.ProductID, req.Quantity); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.store.Cart(userFrom(r.Context())))
}

func (s *Server) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req model.CartQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.store.UpdateCartItem(userFrom(r.Context()), pathID(r, "id"), req.Quantity); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.store.Cart(userFrom(r.Context())))
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	s.store.ClearCart(userFrom(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFarms(w http.ResponseWriter, r *http.Request) {
	farms := s.store.Farms(userFrom(r.Context()))
	if farms == nil {
		farms = []model.Farm{}
	}
	respondJSON(w, http.StatusOK, farms)
}

func (s *Server) handleUsers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Users())
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := s.store.User(userFrom(r.Context()))
	if !ok {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	respondJSON(w, http.StatusOK, u)
}

// handleUpdateMe accepts the profile form as multipart or urlencoded data.
func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		respondError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	fields := make(map[string]string)
	for _, key := range []string{"name", "email", "phone"} {
		if v := r.FormValue(key); v != "" {
			fields[key] = v
		}
	}
	u, err := s.store.UpdateUser(userFrom(r.Context()), fields)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, u)
}
