package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cardpay/internal/domain/entities"
	"cardpay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderTotal    = errors.New("invalid order total")
	ErrInvalidOrderCurrency = errors.New("invalid order currency")
)

// IOrderUseCase exposes order ledger operations: intake of an order to pay
// and lookup of its payment state.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, rc entities.RequestContext, draft entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	ledger  interfaces.IOrderLedger
	session interfaces.ICheckoutSession
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(ledger interfaces.IOrderLedger, session interfaces.ICheckoutSession) *OrderUseCase {
	return &OrderUseCase{ledger: ledger, session: session}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, rc entities.RequestContext, draft entities.Order) (entities.Order, error) {
	if draft.Total < 0 {
		return entities.Order{}, ErrInvalidOrderTotal
	}
	if strings.TrimSpace(draft.Currency) == "" {
		return entities.Order{}, ErrInvalidOrderCurrency
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	if draft.Number == "" {
		// Human-readable order number for notes and the processor dashboard.
		draft.Number = strings.ToUpper(draft.ID[:8])
	}
	draft.UserID = rc.UserID
	draft.Currency = strings.ToLower(strings.TrimSpace(draft.Currency))
	draft.Status = entities.OrderStatusPending
	draft.CreatedAt = now
	draft.UpdatedAt = now

	created, err := u.ledger.Create(ctx, draft)
	if err != nil {
		return entities.Order{}, err
	}

	// The session now has an order awaiting payment; a successful charge
	// clears the marker.
	if key := rc.SessionKey(); key != "" {
		u.session.SetAwaitingOrder(key, created.ID)
	}
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.ledger.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !o.Exists() {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}
