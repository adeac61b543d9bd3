package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fjod/go_shop/internal/catalog/domain"
	"github.com/fjod/go_shop/internal/catalog/repository"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	products map[string]*domain.Product
	err      error
}

func newMockRepository() *mockRepository {
	return &mockRepository{products: make(map[string]*domain.Product)}
}

func (m *mockRepository) GetProducts(context.Context) ([]*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var products []*domain.Product
	for _, p := range m.products {
		products = append(products, p)
	}
	return products, nil
}

func (m *mockRepository) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (m *mockRepository) GetProductsByCategory(_ context.Context, category string) ([]*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	var products []*domain.Product
	for _, p := range m.products {
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *mockRepository) CreateProduct(_ context.Context, product *domain.Product) error {
	if m.err != nil {
		return m.err
	}
	if product.ID == "" {
		product.ID = "602d2149e773f2a3990b47f5"
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockRepository) UpdateProduct(_ context.Context, product *domain.Product) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *mockRepository) DeleteProduct(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func setupRouter(repo repository.ProductRepository) chi.Router {
	handler := NewCatalogHandler(repo)

	r := chi.NewRouter()
	r.Route("/products", func(r chi.Router) {
		r.Get("/", handler.GetProducts)
		r.Post("/", handler.CreateProduct)
		r.Put("/", handler.UpdateProduct)
		r.Get("/{id}", handler.GetProduct)
		r.Delete("/{id}", handler.DeleteProduct)
		r.Get("/category/{category}", handler.GetProductsByCategory)
	})

	return r
}

func TestGetProducts_Success(t *testing.T) {
	repo := newMockRepository()
	repo.products["1"] = &domain.Product{ID: "1", Name: "IPhone X"}
	repo.products["2"] = &domain.Product{ID: "2", Name: "Samsung 10"}
	router := setupRouter(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/products", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response []*domain.Product
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Len(t, response, 2)
}

func TestGetProducts_RepositoryError(t *testing.T) {
	repo := newMockRepository()
	repo.err = errors.New("mongo unavailable")
	router := setupRouter(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/products", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestGetProduct_Success(t *testing.T) {
	repo := newMockRepository()
	repo.products["1"] = &domain.Product{ID: "1", Name: "IPhone X", Price: 950.00}
	router := setupRouter(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/products/1", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response domain.Product
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "IPhone X", response.Name)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := setupRouter(newMockRepository())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/products/missing", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNotFound, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "not_found", response.Code)
}

func TestGetProductsByCategory(t *testing.T) {
	repo := newMockRepository()
	repo.products["1"] = &domain.Product{ID: "1", Name: "IPhone X", Category: "Smart Phone"}
	repo.products["2"] = &domain.Product{ID: "2", Name: "Fridge", Category: "White Appliances"}
	router := setupRouter(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/products/category/Smart%20Phone", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response []*domain.Product
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, "IPhone X", response[0].Name)
}

func TestCreateProduct_Success(t *testing.T) {
	repo := newMockRepository()
	router := setupRouter(repo)

	body, _ := json.Marshal(domain.Product{Name: "IPhone X", Category: "Smart Phone", Price: 950.00})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/products", bytes.NewReader(body))
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response domain.Product
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.NotEmpty(t, response.ID)
	assert.Equal(t, "IPhone X", response.Name)
}

func TestCreateProduct_InvalidBody(t *testing.T) {
	router := setupRouter(newMockRepository())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/products", bytes.NewReader([]byte("{not json")))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateProduct_MissingName(t *testing.T) {
	router := setupRouter(newMockRepository())

	body, _ := json.Marshal(domain.Product{Category: "Smart Phone"})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/products", bytes.NewReader(body))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateProduct_Success(t *testing.T) {
	repo := newMockRepository()
	repo.products["1"] = &domain.Product{ID: "1", Name: "IPhone X", Price: 950.00}
	router := setupRouter(repo)

	body, _ := json.Marshal(domain.Product{ID: "1", Name: "IPhone X", Price: 899.00})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("PUT", "/products", bytes.NewReader(body))
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 899.00, repo.products["1"].Price)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	router := setupRouter(newMockRepository())

	body, _ := json.Marshal(domain.Product{ID: "missing", Name: "Ghost"})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("PUT", "/products", bytes.NewReader(body))
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestDeleteProduct_Success(t *testing.T) {
	repo := newMockRepository()
	repo.products["1"] = &domain.Product{ID: "1", Name: "IPhone X"}
	router := setupRouter(repo)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("DELETE", "/products/1", nil)
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, repo.products)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	router := setupRouter(newMockRepository())

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("DELETE", "/products/missing", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
