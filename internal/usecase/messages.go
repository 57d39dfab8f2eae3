package usecase

import "cardpay/internal/domain/entities"

// GenericChargeFailureMessage is shown for processor error codes this
// service does not recognize.
const GenericChargeFailureMessage = "Failed to process the order, please try again later."

var processorErrorMessages = map[string]string{
	entities.ProcErrIncorrectNumber:    "Your card number is incorrect.",
	entities.ProcErrInvalidNumber:      "Your card number is not a valid credit card number.",
	entities.ProcErrInvalidExpiryMonth: "Your card's expiration month is invalid.",
	entities.ProcErrInvalidExpiryYear:  "Your card's expiration year is invalid.",
	entities.ProcErrInvalidCVC:         "Your card's security code is invalid.",
	entities.ProcErrExpiredCard:        "Your card has expired.",
	entities.ProcErrIncorrectCVC:       "Your card's security code is incorrect.",
	entities.ProcErrIncorrectZip:       "Your zip code failed validation.",
	entities.ProcErrCardDeclined:       "Your card was declined.",
}

// ClassifyProcessorError maps a processor-reported error code to its fixed
// user-facing message. Pure; the caller records the message where needed.
func ClassifyProcessorError(code string) string {
	if msg, ok := processorErrorMessages[code]; ok {
		return msg
	}
	return GenericChargeFailureMessage
}
