package request

import (
	"strings"

	"cardpay/internal/domain/entities"
)

type OrderItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	Price    float64 `json:"price"`
}

type OrderCreateRequest struct {
	Number       string             `json:"number"`
	Total        float64            `json:"total"`
	Currency     string             `json:"currency" binding:"required"`
	Items        []OrderItemRequest `json:"items"`
	BillingName  string             `json:"billing_name"`
	BillingEmail string             `json:"billing_email"`
}

func (r OrderCreateRequest) ToOrder() entities.Order {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return entities.Order{
		Number:       strings.TrimSpace(r.Number),
		Total:        r.Total,
		Currency:     r.Currency,
		Items:        items,
		BillingName:  strings.TrimSpace(r.BillingName),
		BillingEmail: strings.TrimSpace(r.BillingEmail),
	}
}
