package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is an article sold in the shop. Products have no lifecycle beyond
// CRUD; orders are never persisted, the cart lives client-side.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}
