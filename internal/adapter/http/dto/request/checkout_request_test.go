package request

import "testing"

func TestCheckoutRequestToForm(t *testing.T) {
	r := CheckoutRequest{
		Token:       "  tok_visa ",
		ChosenCard:  " 1 ",
		BillingName: " Alice B ",
		BillingZip:  " 90210 ",
	}

	form := r.ToForm()
	if form.Token != "tok_visa" {
		t.Fatalf("unexpected token: %q", form.Token)
	}
	if form.ChosenCard != "1" {
		t.Fatalf("unexpected chosen card: %q", form.ChosenCard)
	}
	if form.BillingName != "Alice B" || form.BillingZip != "90210" {
		t.Fatalf("unexpected billing fields: %+v", form)
	}
	if form.HasErrors {
		t.Fatalf("expected no pre-flagged errors: %+v", form)
	}
}

func TestCheckoutRequestToFormWithFormErrors(t *testing.T) {
	form := CheckoutRequest{Token: "tok_visa", FormErrors: "Billing postcode is required."}.ToForm()
	if !form.HasErrors {
		t.Fatalf("expected pre-flagged errors: %+v", form)
	}

	form = CheckoutRequest{Token: "tok_visa", FormErrors: "   "}.ToForm()
	if form.HasErrors {
		t.Fatalf("blank form_errors must not flag the form: %+v", form)
	}
}
