package domain

// ShoppingCart is one user's basket. UserName doubles as the cache key,
// so it never changes after the cart is first stored.
type ShoppingCart struct {
	UserName string             `json:"user_name"`
	Items    []ShoppingCartItem `json:"items"`
}

// ShoppingCartItem is a denormalized product entry: name and price are
// copied from the catalog at add time, not referenced live.
type ShoppingCartItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

func (c *ShoppingCart) TotalPrice() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
