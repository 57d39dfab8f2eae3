package request

import (
	"strings"

	"cardpay/internal/domain/entities"
)

// CheckoutRequest mirrors the fields posted by the payment form. Exactly one
// source is expected: a fresh card token, or the index of a saved card.
//
// `form_errors` carries validation messages already shown to the customer
// client-side; a non-empty value aborts the submission without a charge.
type CheckoutRequest struct {
	Token       string `json:"token"`
	ChosenCard  string `json:"chosen_card"`
	BillingName string `json:"billing_name"`
	BillingZip  string `json:"billing_zip"`
	FormErrors  string `json:"form_errors"`
}

func (r CheckoutRequest) ToForm() entities.CheckoutForm {
	return entities.CheckoutForm{
		Token:       strings.TrimSpace(r.Token),
		ChosenCard:  strings.TrimSpace(r.ChosenCard),
		BillingName: strings.TrimSpace(r.BillingName),
		BillingZip:  strings.TrimSpace(r.BillingZip),
		HasErrors:   strings.TrimSpace(r.FormErrors) != "",
	}
}
