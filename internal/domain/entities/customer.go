package entities

// CardInfo mirrors one tokenized card kept against a processor-side
// customer.

type CardInfo struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int64  `json:"exp_month"`
	ExpYear  int64  `json:"exp_year"`
}

// CustomerRecord is the persisted per-user mirror of a processor customer
// and their saved cards.
//
// Storage model (DynamoDB):
//   - PK: user_id
//
// Lifecycle: created on the first successful customer creation at the
// processor; cards are appended and DefaultCardID moved on later saved-card
// additions or default changes. The record is replaced on write, never
// partially updated.
//
// Invariant: once non-empty, DefaultCardID references a card present in
// Cards.

type CustomerRecord struct {
	CustomerID    string     `json:"customer_id"`
	Cards         []CardInfo `json:"cards"`
	DefaultCardID string     `json:"default_card_id"`
}

func (r CustomerRecord) Exists() bool {
	return r.CustomerID != ""
}

// CardAt returns the saved card at idx.
func (r CustomerRecord) CardAt(idx int) (CardInfo, bool) {
	if idx < 0 || idx >= len(r.Cards) {
		return CardInfo{}, false
	}
	return r.Cards[idx], true
}

// HasCard reports whether id references a card held by the record.
func (r CustomerRecord) HasCard(id string) bool {
	for _, c := range r.Cards {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ProcessorCustomer is the processor's view of a customer, as returned by
// the remote API.

type ProcessorCustomer struct {
	ID          string
	DefaultCard CardInfo
	Cards       []CardInfo
}

// NewCustomerSpec carries what the processor needs to create a customer
// holding one card.

type NewCustomerSpec struct {
	Token       string
	Email       string
	Description string
}
