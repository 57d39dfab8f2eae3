package interfaces

import (
	"context"

	"cardpay/internal/domain/entities"
)

// ICustomerStore abstracts DynamoDB persistence for the per-user mirror of
// processor customers and their saved cards.
//
// Get returns a zero CustomerRecord (Exists() == false) when the user has
// no saved payment info yet. Put replaces the record wholesale; the store
// is a mirror of processor state, so last write wins.

type ICustomerStore interface {
	Get(ctx context.Context, userID string) (entities.CustomerRecord, error)
	Put(ctx context.Context, userID string, rec entities.CustomerRecord) error
}
