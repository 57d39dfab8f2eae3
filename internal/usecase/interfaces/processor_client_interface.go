package interfaces

import (
	"context"

	"cardpay/internal/domain/entities"
)

// IProcessorClient abstracts the remote payment processor (e.g. Stripe,
// Mercado Pago).
//
// Processor-reported failures come back as *entities.ProcessorError so the
// checkout flow can classify them into user messages; transport or SDK
// failures come back as plain errors.

type IProcessorClient interface {
	CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error)
	CreateCustomer(ctx context.Context, spec entities.NewCustomerSpec) (entities.ProcessorCustomer, error)
	GetCustomer(ctx context.Context, id string) (entities.ProcessorCustomer, error)
	AddCard(ctx context.Context, customerID, token string) (entities.CardInfo, error)
}
