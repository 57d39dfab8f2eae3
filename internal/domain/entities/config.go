package entities

// ChargeType selects whether funds are captured at checkout or only
// authorized for a later capture.

type ChargeType string

const (
	ChargeTypeCapture   ChargeType = "capture"
	ChargeTypeAuthorize ChargeType = "authorize"
)

// GatewayConfig is the checkout gateway configuration, passed explicitly to
// the orchestrator instead of living in process-wide settings.

type GatewayConfig struct {
	ChargeType        ChargeType
	SavedCardsEnabled bool
	StatementLabel    string
	ReturnURL         string
}

// CaptureImmediately reports whether charges should be captured at
// submission time.
func (c GatewayConfig) CaptureImmediately() bool {
	return c.ChargeType != ChargeTypeAuthorize
}

// RequestContext identifies the shopper behind one checkout request. UserID
// is empty for guests; SessionID keys the checkout-session markers.

type RequestContext struct {
	UserID    string
	UserLogin string
	UserEmail string
	SessionID string
}

func (rc RequestContext) Authenticated() bool {
	return rc.UserID != ""
}

// SessionKey falls back to the user id when the caller did not supply a
// session identifier.
func (rc RequestContext) SessionKey() string {
	if rc.SessionID != "" {
		return rc.SessionID
	}
	return rc.UserID
}
