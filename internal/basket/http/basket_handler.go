package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/fjod/go_shop/internal/basket/domain"
	"github.com/fjod/go_shop/internal/basket/events"
	"github.com/fjod/go_shop/internal/basket/repository"
	"github.com/go-chi/chi/v5"
)

// CheckoutPublisher is the slice of the events publisher the handler needs.
type CheckoutPublisher interface {
	PublishCheckout(ctx context.Context, event events.CheckoutEvent) error
}

type BasketHandler struct {
	repo      repository.BasketRepository
	publisher CheckoutPublisher
}

func NewBasketHandler(repo repository.BasketRepository, publisher CheckoutPublisher) *BasketHandler {
	return &BasketHandler{
		repo:      repo,
		publisher: publisher,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (h *BasketHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")

	cart, err := h.repo.GetBasket(r.Context(), userName)
	if err != nil {
		if errors.Is(err, repository.ErrBasketNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "basket not found")
			return
		}
		log.Printf("get basket for %q failed: %v", userName, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get basket")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *BasketHandler) UpdateBasket(w http.ResponseWriter, r *http.Request) {
	var cart domain.ShoppingCart
	if err := json.NewDecoder(r.Body).Decode(&cart); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Validate request
	if cart.UserName == "" {
		respondError(w, http.StatusBadRequest, "invalid_user_name", "user_name must not be empty")
		return
	}

	updated, err := h.repo.UpdateBasket(r.Context(), &cart)
	if err != nil {
		log.Printf("update basket for %q failed: %v", cart.UserName, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update basket")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *BasketHandler) DeleteBasket(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")

	if err := h.repo.DeleteBasket(r.Context(), userName); err != nil {
		log.Printf("delete basket for %q failed: %v", userName, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete basket")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Checkout publishes the basket to the checkout topic and removes it.
// The accepted response carries the published event.
func (h *BasketHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "userName")

	cart, err := h.repo.GetBasket(r.Context(), userName)
	if err != nil {
		if errors.Is(err, repository.ErrBasketNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "basket not found")
			return
		}
		log.Printf("get basket for checkout of %q failed: %v", userName, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get basket")
		return
	}

	event := events.CheckoutEvent{
		UserName:     cart.UserName,
		Items:        cart.Items,
		TotalPrice:   cart.TotalPrice(),
		CheckedOutAt: time.Now().UTC(),
	}

	if err := h.publisher.PublishCheckout(r.Context(), event); err != nil {
		log.Printf("publish checkout for %q failed: %v", userName, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to publish checkout")
		return
	}

	if err := h.repo.DeleteBasket(r.Context(), userName); err != nil {
		log.Printf("delete basket after checkout of %q failed: %v", userName, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete basket")
		return
	}

	respondJSON(w, http.StatusAccepted, event)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
