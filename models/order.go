package models

import "time"

const (
	OrderTypeDineIn   = "dine_in"
	OrderTypeDelivery = "delivery"

	// Initial status of every order; later transitions belong to the
	// fulfilment process, not to this service.
	OrderStatusAwaitingPayment = "menunggu_pembayaran"
)

type OrderItemInput struct {
	MenuID   string
	Quantity int
	Price    int64 // unit price snapshot at submission time
	Subtotal int64
}

type CreateOrderInput struct {
	CustomerName    string
	TableNumber     string // optional, from the ordering-entry query parameter
	TotalAmount     int64
	OrderType       string
	DeliveryAddress string // set iff OrderType is delivery
	Items           []OrderItemInput
}

// Order is a row from the orders table.
type Order struct {
	ID              int64
	CustomerName    string
	TableNumber     *string
	TotalAmount     int64
	Status          string
	OrderType       string
	DeliveryAddress *string
	CreatedAt       time.Time
}

type OrderItem struct {
	ID       int64
	OrderID  int64
	MenuID   string
	Quantity int
	Price    int64
	Subtotal int64
}
