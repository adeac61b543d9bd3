package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fjod/go_shop/internal/basket/cache"
	"github.com/fjod/go_shop/internal/basket/codec"
	"github.com/fjod/go_shop/internal/basket/domain"
)

// cacheRepository keeps no state of its own; the cache exclusively owns the
// persisted bytes. The user name is used verbatim as the cache key.
type cacheRepository struct {
	store cache.Store
}

func NewCacheRepository(store cache.Store) BasketRepository {
	return &cacheRepository{store: store}
}

func (r cacheRepository) GetBasket(ctx context.Context, userName string) (*domain.ShoppingCart, error) {
	text, err := r.store.Get(ctx, userName)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return nil, ErrBasketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get basket: %w", err)
	}
	if text == "" {
		return nil, ErrBasketNotFound
	}

	// A corrupted entry is a hard failure for the request, not a miss.
	cart, err := codec.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode basket for %q: %w", userName, err)
	}

	return cart, nil
}

func (r cacheRepository) UpdateBasket(ctx context.Context, cart *domain.ShoppingCart) (*domain.ShoppingCart, error) {
	text, err := codec.Encode(cart)
	if err != nil {
		return nil, fmt.Errorf("failed to encode basket: %w", err)
	}

	if err := r.store.Set(ctx, cart.UserName, text); err != nil {
		return nil, fmt.Errorf("failed to store basket: %w", err)
	}

	// Re-read after the write; the stored document is the confirmation.
	return r.GetBasket(ctx, cart.UserName)
}

func (r cacheRepository) DeleteBasket(ctx context.Context, userName string) error {
	if err := r.store.Delete(ctx, userName); err != nil {
		return fmt.Errorf("failed to delete basket: %w", err)
	}

	return nil
}
