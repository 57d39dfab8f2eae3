package response

import (
	"time"

	"cardpay/internal/domain/entities"
)

type OrderItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderNoteResponse struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderResponse struct {
	OrderID       string              `json:"order_id"`
	ID            string              `json:"id"`
	Number        string              `json:"number"`
	Total         float64             `json:"total"`
	Currency      string              `json:"currency"`
	Items         []OrderItemResponse `json:"items"`
	Status        string              `json:"status"`
	TransactionID string              `json:"transaction_id,omitempty"`
	Notes         []OrderNoteResponse `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	notes := make([]OrderNoteResponse, 0, len(o.Notes))
	for _, n := range o.Notes {
		notes = append(notes, OrderNoteResponse{Text: n.Text, CreatedAt: n.CreatedAt})
	}
	return OrderResponse{
		OrderID:       o.ID,
		ID:            o.ID,
		Number:        o.Number,
		Total:         o.Total,
		Currency:      o.Currency,
		Items:         items,
		Status:        string(o.Status),
		TransactionID: o.Meta[entities.MetaTransactionID],
		Notes:         notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
