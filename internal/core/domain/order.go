package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

// validTransitions defines the allowed order state machine transitions. The
// server enforces these too; the client checks before issuing a doomed update.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {OrderRefunded},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus is the settlement state of an order's payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodTransfer = "Transfer"
	PaymentMethodCard     = "Card"
)

// OrderItem is a purchased line item.
type OrderItem struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Variant  string  `json:"variant,omitempty"`
}

// OrderCustomer is the embedded customer summary on an order.
type OrderCustomer struct {
	ID       string `json:"_id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

// Refund tracks a repayment attached to a refunded order.
type Refund struct {
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Reason string  `json:"reason,omitempty"`
}

// Order is a placed order as returned by the API.
type Order struct {
	ID              string          `json:"_id"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	Customer        OrderCustomer   `json:"customer"`
	Items           []OrderItem     `json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	TrackingNumber  string          `json:"trackingNumber,omitempty"`
	Status          OrderStatus     `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	PaymentIntentID string          `json:"paymentIntentId,omitempty"`
	Refund          *Refund         `json:"refund,omitempty"`
	OrderTime       time.Time       `json:"orderTime"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderUpdate carries the writable fields for order updates.
type OrderUpdate struct {
	Status         OrderStatus `json:"status,omitempty"`
	TrackingNumber string      `json:"trackingNumber,omitempty"`
	Refund         *Refund     `json:"refund,omitempty"`
}
