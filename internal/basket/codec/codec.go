package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fjod/go_shop/internal/basket/domain"
)

var (
	ErrEncode = errors.New("shopping cart encode failed")
	ErrDecode = errors.New("shopping cart decode failed")
)

// Encode produces the textual form stored in the cache. Field names are
// fixed by the struct tags on domain.ShoppingCart, so encoded carts decode
// back field-for-field.
func Encode(cart *domain.ShoppingCart) (string, error) {
	data, err := json.Marshal(cart)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return string(data), nil
}

// Decode parses a previously encoded cart. Anything that is not valid
// encoded form fails with ErrDecode.
func Decode(text string) (*domain.ShoppingCart, error) {
	var cart domain.ShoppingCart
	if err := json.Unmarshal([]byte(text), &cart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return &cart, nil
}
