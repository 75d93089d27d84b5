package entity

import "time"

type OrderStatus string

const (
	OrderPendingApproval OrderStatus = "PENDING_APPROVAL"
	OrderProcessing      OrderStatus = "PROCESSING"
	OrderShipped         OrderStatus = "SHIPPED"
	OrderDelivered       OrderStatus = "DELIVERED"
	OrderCancelled       OrderStatus = "CANCELLED"
)

// orderTransitions is the allowed status graph. DELIVERED and CANCELLED
// are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPendingApproval: {OrderProcessing, OrderCancelled},
	OrderProcessing:      {OrderShipped, OrderCancelled},
	OrderShipped:         {OrderDelivered},
	OrderDelivered:       {},
	OrderCancelled:       {},
}

// ValidOrderStatus reports whether s is a member of the status enum.
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether an order may move from one status to
// another. Same-status updates are allowed as no-ops.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TrackingStep maps an order status onto the 0-2 tracking timeline.
// Cancelled orders sit outside the timeline and return -1.
func (s OrderStatus) TrackingStep() int {
	switch s {
	case OrderPendingApproval, OrderProcessing:
		return 0
	case OrderShipped:
		return 1
	case OrderDelivered:
		return 2
	}
	return -1
}

// OrderItem is a snapshot of the product at order time. Later product
// edits must not affect historical orders, so this is a copy, not a
// reference.
type OrderItem struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Address struct {
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

type Order struct {
	ID              string      `json:"id"`
	Reference       string      `json:"reference"`
	Email           string      `json:"email"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	BillingAddress  Address     `json:"billingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	Notes           string      `json:"notes,omitempty"`

	// Third-party sync markers; non-empty means already synced.
	AirtableRecordID string `json:"airtableRecordId,omitempty"`
	XeroInvoiceID    string `json:"xeroInvoiceId,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
