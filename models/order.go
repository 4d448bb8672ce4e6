package models

import "time"

const OrderStatusPending = "pending"

type Order struct {
	ID            int64     `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	TotalPrice    int64     `json:"totalPrice"` // centavos
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	TotalPrice    int64
	Notes         string
	Items         []OrderItemInput
}

// OrderItemInput is one cart line at submission time; name and unit price
// are the cart's snapshot, not the live catalog values.
type OrderItemInput struct {
	MenuItemID int64
	ItemName   string
	UnitPrice  int64
	Quantity   int
}
