package entities

import "strconv"

// ChosenCardNew is the checkout-form sentinel a customer submits to pay with
// a freshly tokenized card instead of one of their saved cards.
const ChosenCardNew = "new"

// CheckoutForm is the read-only snapshot of the fields submitted with one
// checkout attempt.
//
// Token carries the one-time card token minted by the processor's browser
// library. ChosenCard is either ChosenCardNew or the decimal index of a
// saved card. HasErrors is set upstream when form validation already failed;
// the charge flow must then abort without contacting the processor.

type CheckoutForm struct {
	Token       string `json:"token"`
	ChosenCard  string `json:"chosen_card"`
	BillingName string `json:"billing_name"`
	BillingZip  string `json:"billing_zip"`
	HasErrors   bool   `json:"has_errors"`
}

// CardIndex resolves ChosenCard to a saved-card index. An empty selector
// defaults to the first saved card.
func (f CheckoutForm) CardIndex() (int, bool) {
	if f.ChosenCard == "" {
		return 0, true
	}
	if f.ChosenCard == ChosenCardNew {
		return 0, false
	}
	idx, err := strconv.Atoi(f.ChosenCard)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

func (f CheckoutForm) WantsNewCard() bool {
	return f.ChosenCard == ChosenCardNew
}

// ChargeRequest is the charge dispatched to the payment processor for one
// checkout submission.
//
// Amount is in the currency's smallest unit and must never be negative.
// Exactly one payment source is populated when the request is dispatched:
// either Token (guest / one-time charge) or CustomerID+CardID (saved card).

type ChargeRequest struct {
	Amount      int64
	Currency    string
	Capture     bool
	Token       string
	CustomerID  string
	CardID      string
	Description string
}

// HasSource reports whether the request carries exactly one payment source.
func (r ChargeRequest) HasSource() bool {
	if r.Token != "" {
		return r.CustomerID == "" && r.CardID == ""
	}
	return r.CustomerID != "" && r.CardID != ""
}

// ChargeResult is the outcome of one charge submission.

type ChargeResult struct {
	TransactionID string
}

const (
	CheckoutStatusSuccess = "success"
	CheckoutStatusFailure = "failure"
)

// CheckoutResult is what one ProcessPayment invocation hands back to the
// caller: a redirect target on success, a classified user message on a
// processor-side failure.

type CheckoutResult struct {
	Status        string
	Redirect      string
	ErrorCode     string
	Message       string
	TransactionID string
}
