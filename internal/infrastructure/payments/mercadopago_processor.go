package payments

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"cardpay/internal/domain/entities"
	"cardpay/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/customercard"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoProcessor implements the processor client against the Mercado
// Pago API.
//
// Mercado Pago reports card declines as an approved API call with a
// "rejected" payment status, so CreateCharge folds those into processor
// errors the checkout flow can classify.

type MercadoPagoProcessor struct {
	payments  payment.Client
	customers customer.Client
	cards     customercard.Client
}

var _ interfaces.IProcessorClient = (*MercadoPagoProcessor)(nil)

func NewMercadoPagoProcessor(accessToken string) (*MercadoPagoProcessor, error) {
	if accessToken == "" {
		log.Printf("[payments][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payments][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payments][mercadopago] client initialized")

	return &MercadoPagoProcessor{
		payments:  payment.NewClient(cfg),
		customers: customer.NewClient(cfg),
		cards:     customercard.NewClient(cfg),
	}, nil
}

func (p *MercadoPagoProcessor) CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
	// Mercado Pago takes amounts in major currency units.
	mpReq := payment.Request{
		TransactionAmount: float64(req.Amount) / 100,
		Description:       req.Description,
		Installments:      1,
		Capture:           req.Capture,
	}
	if req.CustomerID != "" {
		mpReq.Token = req.CardID
		mpReq.Payer = &payment.PayerRequest{Type: "customer", ID: req.CustomerID}
	} else {
		mpReq.Token = req.Token
	}

	resp, err := p.payments.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payments][mercadopago] payment create failed err=%v", err)
		return entities.ChargeResult{}, err
	}
	if resp.Status == "rejected" {
		log.Printf("[payments][mercadopago] payment rejected id=%d detail=%s", resp.ID, resp.StatusDetail)
		return entities.ChargeResult{}, &entities.ProcessorError{
			Code:   mapRejectionDetail(resp.StatusDetail),
			Detail: resp.StatusDetail,
		}
	}
	log.Printf("[payments][mercadopago] payment created id=%d status=%s", resp.ID, resp.Status)
	return entities.ChargeResult{TransactionID: strconv.Itoa(resp.ID)}, nil
}

func (p *MercadoPagoProcessor) CreateCustomer(ctx context.Context, spec entities.NewCustomerSpec) (entities.ProcessorCustomer, error) {
	resp, err := p.customers.Create(ctx, customer.Request{
		Email:       spec.Email,
		Description: spec.Description,
	})
	if err != nil {
		log.Printf("[payments][mercadopago] customer create failed err=%v", err)
		return entities.ProcessorCustomer{}, err
	}

	c, err := p.cards.Create(ctx, resp.ID, customercard.Request{Token: spec.Token})
	if err != nil {
		log.Printf("[payments][mercadopago] card create failed customer_id=%s err=%v", resp.ID, err)
		return entities.ProcessorCustomer{}, err
	}

	info := entities.CardInfo{
		ID:       c.ID,
		Brand:    c.PaymentMethod.Name,
		Last4:    c.LastFourDigits,
		ExpMonth: int64(c.ExpirationMonth),
		ExpYear:  int64(c.ExpirationYear),
	}
	log.Printf("[payments][mercadopago] customer created id=%s card_id=%s", resp.ID, c.ID)
	return entities.ProcessorCustomer{ID: resp.ID, DefaultCard: info, Cards: []entities.CardInfo{info}}, nil
}

func (p *MercadoPagoProcessor) GetCustomer(ctx context.Context, id string) (entities.ProcessorCustomer, error) {
	resp, err := p.customers.Get(ctx, id)
	if err != nil {
		log.Printf("[payments][mercadopago] customer get failed id=%s err=%v", id, err)
		return entities.ProcessorCustomer{}, err
	}

	out := entities.ProcessorCustomer{ID: resp.ID}
	for _, c := range resp.Cards {
		info := entities.CardInfo{
			ID:       c.ID,
			Brand:    c.PaymentMethod.Name,
			Last4:    c.LastFourDigits,
			ExpMonth: int64(c.ExpirationMonth),
			ExpYear:  int64(c.ExpirationYear),
		}
		out.Cards = append(out.Cards, info)
		if c.ID == resp.DefaultCard {
			out.DefaultCard = info
		}
	}
	return out, nil
}

func (p *MercadoPagoProcessor) AddCard(ctx context.Context, customerID, token string) (entities.CardInfo, error) {
	c, err := p.cards.Create(ctx, customerID, customercard.Request{Token: token})
	if err != nil {
		log.Printf("[payments][mercadopago] card create failed customer_id=%s err=%v", customerID, err)
		return entities.CardInfo{}, err
	}
	log.Printf("[payments][mercadopago] card created customer_id=%s card_id=%s", customerID, c.ID)
	return entities.CardInfo{
		ID:       c.ID,
		Brand:    c.PaymentMethod.Name,
		Last4:    c.LastFourDigits,
		ExpMonth: int64(c.ExpirationMonth),
		ExpYear:  int64(c.ExpirationYear),
	}, nil
}

// mapRejectionDetail folds Mercado Pago status_detail values into the card
// error codes the checkout flow classifies.
func mapRejectionDetail(detail string) string {
	switch detail {
	case "cc_rejected_bad_filled_card_number":
		return entities.ProcErrInvalidNumber
	case "cc_rejected_bad_filled_date":
		return entities.ProcErrInvalidExpiryMonth
	case "cc_rejected_bad_filled_security_code":
		return entities.ProcErrInvalidCVC
	case "cc_rejected_call_for_authorize",
		"cc_rejected_card_disabled",
		"cc_rejected_insufficient_amount",
		"cc_rejected_high_risk",
		"cc_rejected_other_reason":
		return entities.ProcErrCardDeclined
	}
	if strings.HasPrefix(detail, "cc_rejected") {
		return entities.ProcErrCardDeclined
	}
	return detail
}
