package interfaces

// ICheckoutSession tracks per-session checkout markers: the order a session
// is waiting to pay, and whether the checkout page needs a reload.
//
// The reload marker set while a submission is in flight must be cleared on
// failure so the customer can retry without a full page reload.

type ICheckoutSession interface {
	SetAwaitingOrder(sessionKey, orderID string)
	AwaitingOrder(sessionKey string) string
	ClearAwaitingOrder(sessionKey string)
	SetReloadCheckout(sessionKey string)
	NeedsReload(sessionKey string) bool
	ClearReloadCheckout(sessionKey string)
}
