package http

import "time"

// Error is the JSON error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the public ride submission payload.
type NewOrderRequest struct {
	CustomerName string    `json:"customer_name"`
	Destination  string    `json:"destination"`
	Reason       string    `json:"reason"`
	OrderTime    time.Time `json:"order_time"`
	CustomerID   *string   `json:"customer_id,omitempty"`
}

// UpdateOrderRequest is the admin order update payload. The driver ID is
// optional; when present together with the "assigned" status the driver is
// attached to the order.
type UpdateOrderRequest struct {
	Status   string  `json:"status"`
	DriverID *string `json:"driver_id,omitempty"`
}

// Order is the order read payload.
type Order struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Destination  string    `json:"destination"`
	Reason       string    `json:"reason"`
	OrderTime    time.Time `json:"order_time"`
	Status       string    `json:"status"`
	CustomerID   *string   `json:"customer_id,omitempty"`
	DriverID     *string   `json:"driver_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Driver is the driver read payload.
type Driver struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Dashboard is the admin dashboard counters payload.
type Dashboard struct {
	TotalOrders   int `json:"total_orders"`
	PendingOrders int `json:"pending_orders"`
	ActiveDrivers int `json:"active_drivers"`
	BusyDrivers   int `json:"busy_drivers"`
}
