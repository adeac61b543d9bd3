package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/go_shop/internal/catalog/domain"
	"github.com/fjod/go_shop/internal/catalog/repository"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"
)

type CatalogHandler struct {
	repo repository.ProductRepository
	sfg  singleflight.Group // Collapses concurrent full-list queries
}

func NewCatalogHandler(repo repository.ProductRepository) *CatalogHandler {
	return &CatalogHandler{
		repo: repo,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	v, err, _ := h.sfg.Do("products", func() (interface{}, error) {
		return h.repo.GetProducts(r.Context())
	})
	if err != nil {
		log.Printf("get products failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get products")
		return
	}

	respondJSON(w, http.StatusOK, v.([]*domain.Product))
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.repo.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			log.Printf("product with id %q was not found", id)
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		log.Printf("get product %q failed: %v", id, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.repo.GetProductsByCategory(r.Context(), category)
	if err != nil {
		log.Printf("get products by category %q failed: %v", category, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to get products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// Validate request
	if product.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_product", "product name must not be empty")
		return
	}

	if err := h.repo.CreateProduct(r.Context(), &product); err != nil {
		log.Printf("create product failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to create product")
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if product.ID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product", "product id must not be empty")
		return
	}

	if err := h.repo.UpdateProduct(r.Context(), &product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		log.Printf("update product %q failed: %v", product.ID, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.repo.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		log.Printf("delete product %q failed: %v", id, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete product")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
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
