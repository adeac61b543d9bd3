package repository

import (
	"context"
	"errors"

	"github.com/fjod/go_shop/internal/basket/domain"
)

// BasketRepository defines the interface for basket operations.
// Consumers define this interface, not the cache implementation.
type BasketRepository interface {
	GetBasket(ctx context.Context, userName string) (*domain.ShoppingCart, error)
	UpdateBasket(ctx context.Context, cart *domain.ShoppingCart) (*domain.ShoppingCart, error)
	DeleteBasket(ctx context.Context, userName string) error
}

var ErrBasketNotFound = errors.New("basket not found")
