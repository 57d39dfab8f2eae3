package entities

import "time"

// OrderStatus tracks an order through the payment flow.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// Order ledger metadata keys written by the checkout flow.
const (
	MetaTransactionID = "_transaction_id"
	MetaCapture       = "_capture"
	MetaCustomerID    = "_customer_id"
)

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderNote struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is the ledger record of a purchase and its payment state.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Meta holds the checkout bookkeeping written after a confirmed charge
// (transaction id, capture flag, processor customer id).

type Order struct {
	ID           string            `json:"id"`
	Number       string            `json:"number"`
	UserID       string            `json:"user_id,omitempty"`
	Total        float64           `json:"total"`
	Currency     string            `json:"currency"`
	Items        []OrderItem       `json:"items"`
	BillingName  string            `json:"billing_name"`
	BillingEmail string            `json:"billing_email"`
	Status       OrderStatus       `json:"status"`
	Meta         map[string]string `json:"meta,omitempty"`
	Notes        []OrderNote       `json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func (o Order) Exists() bool {
	return o.ID != ""
}

func (o Order) Completed() bool {
	return o.Status == OrderStatusCompleted
}

// FirstItemName names the charge on the processor dashboard. Orders without
// line items fall back to a generic label.
func (o Order) FirstItemName() string {
	if len(o.Items) == 0 {
		return "Purchases"
	}
	return o.Items[0].Name
}
