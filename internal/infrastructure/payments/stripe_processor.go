package payments

import (
	"context"
	"errors"
	"log"

	"cardpay/internal/domain/entities"
	"cardpay/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/card"
	"github.com/stripe/stripe-go/v80/charge"
	"github.com/stripe/stripe-go/v80/customer"
)

var ErrMissingStripeAPIKey = errors.New("missing STRIPE_API_KEY")

// StripeProcessor implements the processor client against the Stripe API.

type StripeProcessor struct{}

var _ interfaces.IProcessorClient = (*StripeProcessor)(nil)

func NewStripeProcessor(apiKey string) (*StripeProcessor, error) {
	if apiKey == "" {
		log.Printf("[payments][stripe] missing STRIPE_API_KEY")
		return nil, ErrMissingStripeAPIKey
	}
	stripe.Key = apiKey
	log.Printf("[payments][stripe] client initialized")
	return &StripeProcessor{}, nil
}

func (p *StripeProcessor) CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
	params := &stripe.ChargeParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Capture:     stripe.Bool(req.Capture),
		Description: stripe.String(req.Description),
	}
	if req.CustomerID != "" {
		params.Customer = stripe.String(req.CustomerID)
		if err := params.SetSource(req.CardID); err != nil {
			return entities.ChargeResult{}, err
		}
	} else {
		if err := params.SetSource(req.Token); err != nil {
			return entities.ChargeResult{}, err
		}
	}

	ch, err := charge.New(params)
	if err != nil {
		log.Printf("[payments][stripe] charge create failed err=%v", err)
		return entities.ChargeResult{}, asProcessorError(err)
	}
	log.Printf("[payments][stripe] charge created id=%s captured=%t", ch.ID, ch.Captured)
	return entities.ChargeResult{TransactionID: ch.ID}, nil
}

func (p *StripeProcessor) CreateCustomer(ctx context.Context, spec entities.NewCustomerSpec) (entities.ProcessorCustomer, error) {
	params := &stripe.CustomerParams{
		Params:      stripe.Params{Context: ctx},
		Email:       stripe.String(spec.Email),
		Description: stripe.String(spec.Description),
	}
	params.Source = stripe.String(spec.Token)
	params.AddExpand("sources")
	params.AddExpand("default_source")

	cu, err := customer.New(params)
	if err != nil {
		log.Printf("[payments][stripe] customer create failed err=%v", err)
		return entities.ProcessorCustomer{}, asProcessorError(err)
	}
	log.Printf("[payments][stripe] customer created id=%s", cu.ID)
	return fromStripeCustomer(cu), nil
}

func (p *StripeProcessor) GetCustomer(ctx context.Context, id string) (entities.ProcessorCustomer, error) {
	params := &stripe.CustomerParams{Params: stripe.Params{Context: ctx}}
	params.AddExpand("sources")
	params.AddExpand("default_source")

	cu, err := customer.Get(id, params)
	if err != nil {
		log.Printf("[payments][stripe] customer get failed id=%s err=%v", id, err)
		return entities.ProcessorCustomer{}, asProcessorError(err)
	}
	return fromStripeCustomer(cu), nil
}

func (p *StripeProcessor) AddCard(ctx context.Context, customerID, token string) (entities.CardInfo, error) {
	params := &stripe.CardParams{
		Params:   stripe.Params{Context: ctx},
		Customer: stripe.String(customerID),
		Token:    stripe.String(token),
	}

	c, err := card.New(params)
	if err != nil {
		log.Printf("[payments][stripe] card create failed customer_id=%s err=%v", customerID, err)
		return entities.CardInfo{}, asProcessorError(err)
	}
	log.Printf("[payments][stripe] card created customer_id=%s card_id=%s", customerID, c.ID)
	return fromStripeCard(c), nil
}

func fromStripeCustomer(cu *stripe.Customer) entities.ProcessorCustomer {
	out := entities.ProcessorCustomer{ID: cu.ID}

	if cu.Sources != nil {
		for _, s := range cu.Sources.Data {
			if s.Card == nil {
				continue
			}
			out.Cards = append(out.Cards, fromStripeCard(s.Card))
		}
	}

	if cu.DefaultSource != nil {
		for _, c := range out.Cards {
			if c.ID == cu.DefaultSource.ID {
				out.DefaultCard = c
				break
			}
		}
		if out.DefaultCard.ID == "" {
			out.DefaultCard = entities.CardInfo{ID: cu.DefaultSource.ID}
		}
	}
	return out
}

func fromStripeCard(c *stripe.Card) entities.CardInfo {
	return entities.CardInfo{
		ID:       c.ID,
		Brand:    string(c.Brand),
		Last4:    c.Last4,
		ExpMonth: c.ExpMonth,
		ExpYear:  c.ExpYear,
	}
}

// asProcessorError surfaces Stripe-reported failures as classifiable
// processor errors; transport/SDK failures pass through unchanged.
func asProcessorError(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		return &entities.ProcessorError{Code: string(sErr.Code), Detail: sErr.Msg}
	}
	return err
}
