package response

import "cardpay/internal/domain/entities"

type CheckoutResponse struct {
	Result        string `json:"result"`
	Redirect      string `json:"redirect,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	Message       string `json:"message,omitempty"`
}

func FromCheckoutResult(r entities.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Result:        string(r.Status),
		Redirect:      r.Redirect,
		TransactionID: r.TransactionID,
		ErrorCode:     r.ErrorCode,
		Message:       r.Message,
	}
}
