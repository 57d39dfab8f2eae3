package interfaces

import (
	"context"

	"cardpay/internal/domain/entities"
)

// IOrderLedger abstracts DynamoDB persistence for the order ledger.
//
// The checkout flow must be able to:
//   - load the order being paid
//   - mark it complete after a confirmed charge
//   - append human-readable payment notes
//   - write charge bookkeeping metadata (transaction id, capture flag,
//     processor customer id)

type IOrderLedger interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	MarkComplete(ctx context.Context, id string) (entities.Order, error)
	AddNote(ctx context.Context, id string, text string) error
	SetMeta(ctx context.Context, id string, key, value string) error
}
