package entities

import "fmt"

// Processor error codes this service classifies into fixed user messages.
// Anything else maps to a generic try-again-later message.
const (
	ProcErrIncorrectNumber    = "incorrect_number"
	ProcErrInvalidNumber      = "invalid_number"
	ProcErrInvalidExpiryMonth = "invalid_expiry_month"
	ProcErrInvalidExpiryYear  = "invalid_expiry_year"
	ProcErrInvalidCVC         = "invalid_cvc"
	ProcErrExpiredCard        = "expired_card"
	ProcErrIncorrectCVC       = "incorrect_cvc"
	ProcErrIncorrectZip       = "incorrect_zip"
	ProcErrCardDeclined       = "card_declined"
)

// ProcessorError is a failure reported by the payment processor. Code is
// the processor's error code, Detail the processor's own message (for
// order notes and logs, never shown to the customer as-is).

type ProcessorError struct {
	Code   string
	Detail string
}

func (e *ProcessorError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("processor error: %s", e.Code)
	}
	return fmt.Sprintf("processor error: %s: %s", e.Code, e.Detail)
}
