package response

import "cardpay/internal/domain/entities"

type CardResponse struct {
	ID       string `json:"id"`
	Brand    string `json:"brand,omitempty"`
	Last4    string `json:"last4,omitempty"`
	ExpMonth int64  `json:"exp_month,omitempty"`
	ExpYear  int64  `json:"exp_year,omitempty"`
	Default  bool   `json:"default"`
}

func FromCards(rec entities.CustomerRecord) []CardResponse {
	out := make([]CardResponse, 0, len(rec.Cards))
	for _, c := range rec.Cards {
		out = append(out, CardResponse{
			ID:       c.ID,
			Brand:    c.Brand,
			Last4:    c.Last4,
			ExpMonth: c.ExpMonth,
			ExpYear:  c.ExpYear,
			Default:  c.ID == rec.DefaultCardID,
		})
	}
	return out
}
