package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"cardpay/internal/domain/entities"
	"cardpay/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrCheckoutFormInvalid  = errors.New("checkout form has validation errors")
	ErrMissingPaymentSource = errors.New("missing payment source")
	ErrInvalidCardSelection = errors.New("invalid saved card selection")
	ErrInvalidAmount        = errors.New("invalid charge amount")

	ErrProcessorNotConfigured = errors.New("payment processor not configured")
)

// ICheckoutUseCase encapsulates the "charge a card for an order" behavior.
//
// One checkout submission triggers exactly one orchestration pass: validate
// the submitted form, resolve or create the processor customer, submit one
// charge, and record the outcome on the order ledger.

type ICheckoutUseCase interface {
	ProcessPayment(ctx context.Context, orderID string, rc entities.RequestContext, form entities.CheckoutForm) (entities.CheckoutResult, error)
	SavedCards(ctx context.Context, rc entities.RequestContext) (entities.CustomerRecord, error)
}

type CheckoutUseCase struct {
	ledger    interfaces.IOrderLedger
	customers interfaces.ICustomerStore
	processor interfaces.IProcessorClient
	session   interfaces.ICheckoutSession
	config    entities.GatewayConfig
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	ledger interfaces.IOrderLedger,
	customers interfaces.ICustomerStore,
	processor interfaces.IProcessorClient,
	session interfaces.ICheckoutSession,
	config entities.GatewayConfig,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		ledger:    ledger,
		customers: customers,
		processor: processor,
		session:   session,
		config:    config,
	}
}

// resolvedSource is the outcome of the customer-resolution step: either a
// one-time token or a saved card pinned to a processor customer.
type resolvedSource struct {
	token      string
	customerID string
	cardID     string
}

func (u *CheckoutUseCase) ProcessPayment(ctx context.Context, orderID string, rc entities.RequestContext, form entities.CheckoutForm) (entities.CheckoutResult, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[checkout][usecase] process start order_id=%s user_id=%s", orderID, rc.UserID)
	if u.processor == nil {
		log.Printf("[checkout][usecase] processor not configured order_id=%s", orderID)
		return entities.CheckoutResult{}, ErrProcessorNotConfigured
	}
	if orderID == "" {
		return entities.CheckoutResult{}, ErrInvalidOrderID
	}

	order, err := u.ledger.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[checkout][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.CheckoutResult{}, err
	}
	if !order.Exists() {
		log.Printf("[checkout][usecase] order not found order_id=%s", orderID)
		return entities.CheckoutResult{}, ErrOrderNotFound
	}

	// Upstream validation already failed and already told the customer why.
	// No processor call, no new message.
	if form.HasErrors {
		log.Printf("[checkout][usecase] form pre-flagged with errors order_id=%s", orderID)
		return entities.CheckoutResult{}, ErrCheckoutFormInvalid
	}

	amount := int64(math.Round(order.Total * 100))
	if amount < 0 {
		log.Printf("[checkout][usecase] negative amount order_id=%s total=%.2f", orderID, order.Total)
		return entities.CheckoutResult{}, ErrInvalidAmount
	}

	// Submitting moves the session forward; a failed charge reverts it so
	// the customer can retry in place.
	u.session.SetReloadCheckout(rc.SessionKey())

	source, err := u.resolveSource(ctx, rc, form, order)
	if err != nil {
		return u.paymentFailed(ctx, order, rc, err)
	}

	req := entities.ChargeRequest{
		Amount:      amount,
		Currency:    strings.ToLower(order.Currency),
		Capture:     u.config.CaptureImmediately(),
		Token:       source.token,
		CustomerID:  source.customerID,
		CardID:      source.cardID,
		Description: u.chargeDescription(order),
	}
	if !req.HasSource() {
		return u.paymentFailed(ctx, order, rc, ErrMissingPaymentSource)
	}

	log.Printf("[checkout][usecase] creating charge order_id=%s amount=%d currency=%s capture=%t customer_id=%s",
		orderID, req.Amount, req.Currency, req.Capture, req.CustomerID)
	charge, err := u.processor.CreateCharge(ctx, req)
	if err != nil {
		log.Printf("[checkout][usecase] charge failed order_id=%s err=%v", orderID, err)
		return u.paymentFailed(ctx, order, rc, err)
	}

	// Bookkeeping only after a confirmed success response. A failed charge
	// must never leave partial charge state on the order.
	if err := u.ledger.SetMeta(ctx, order.ID, entities.MetaTransactionID, charge.TransactionID); err != nil {
		return entities.CheckoutResult{}, err
	}
	if err := u.ledger.SetMeta(ctx, order.ID, entities.MetaCapture, strconv.FormatBool(req.Capture)); err != nil {
		return entities.CheckoutResult{}, err
	}
	if source.customerID != "" {
		if err := u.ledger.SetMeta(ctx, order.ID, entities.MetaCustomerID, source.customerID); err != nil {
			return entities.CheckoutResult{}, err
		}
	}

	if err := u.completeOrder(ctx, order, rc, charge.TransactionID); err != nil {
		return entities.CheckoutResult{}, err
	}

	log.Printf("[checkout][usecase] process success order_id=%s transaction_id=%s", orderID, charge.TransactionID)
	return entities.CheckoutResult{
		Status:        entities.CheckoutStatusSuccess,
		Redirect:      u.returnURL(order),
		TransactionID: charge.TransactionID,
	}, nil
}

// resolveSource picks the payment source for the charge. Authenticated
// customers with saved cards enabled go through the customer store; everyone
// else is charged on the one-time token directly.
func (u *CheckoutUseCase) resolveSource(ctx context.Context, rc entities.RequestContext, form entities.CheckoutForm, order entities.Order) (resolvedSource, error) {
	if !rc.Authenticated() || !u.config.SavedCardsEnabled {
		if form.Token == "" {
			return resolvedSource{}, ErrMissingPaymentSource
		}
		return resolvedSource{token: form.Token}, nil
	}

	resolved, err := u.resolveCustomer(ctx, rc, form, u.customerDescription(rc, form, order))
	if err != nil {
		return resolvedSource{}, err
	}
	return resolved, nil
}

// resolveCustomer creates the processor customer on first use, or refreshes
// the existing one and picks (or attaches) the card to charge. The store
// read-then-write is not transactional; duplicate concurrent submissions
// keep last-write-wins semantics.
func (u *CheckoutUseCase) resolveCustomer(ctx context.Context, rc entities.RequestContext, form entities.CheckoutForm, description string) (resolvedSource, error) {
	rec, err := u.customers.Get(ctx, rc.UserID)
	if err != nil {
		return resolvedSource{}, err
	}

	if !rec.Exists() {
		if form.Token == "" {
			return resolvedSource{}, ErrMissingPaymentSource
		}
		cust, err := u.processor.CreateCustomer(ctx, entities.NewCustomerSpec{
			Token:       form.Token,
			Email:       rc.UserEmail,
			Description: description,
		})
		if err != nil {
			return resolvedSource{}, err
		}
		rec = entities.CustomerRecord{
			CustomerID:    cust.ID,
			Cards:         []entities.CardInfo{cust.DefaultCard},
			DefaultCardID: cust.DefaultCard.ID,
		}
		if err := u.customers.Put(ctx, rc.UserID, rec); err != nil {
			return resolvedSource{}, err
		}
		log.Printf("[checkout][usecase] customer created user_id=%s customer_id=%s", rc.UserID, cust.ID)
		return resolvedSource{customerID: cust.ID, cardID: cust.DefaultCard.ID}, nil
	}

	// Defensive refresh: the local record can drift from processor state,
	// so re-fetch before charging against it.
	cust, err := u.processor.GetCustomer(ctx, rec.CustomerID)
	if err != nil {
		return resolvedSource{}, err
	}

	if len(rec.Cards) == 0 || form.WantsNewCard() {
		if form.Token == "" {
			return resolvedSource{}, ErrMissingPaymentSource
		}
		card, err := u.processor.AddCard(ctx, rec.CustomerID, form.Token)
		if err != nil {
			return resolvedSource{}, err
		}
		rec.Cards = append(rec.Cards, card)
		rec.DefaultCardID = card.ID
		if err := u.customers.Put(ctx, rc.UserID, rec); err != nil {
			return resolvedSource{}, err
		}
		log.Printf("[checkout][usecase] card added user_id=%s customer_id=%s card_id=%s", rc.UserID, rec.CustomerID, card.ID)
		return resolvedSource{customerID: cust.ID, cardID: card.ID}, nil
	}

	idx, ok := form.CardIndex()
	if !ok {
		return resolvedSource{}, ErrInvalidCardSelection
	}
	card, ok := rec.CardAt(idx)
	if !ok {
		return resolvedSource{}, ErrInvalidCardSelection
	}

	// Choosing a non-default card moves the default pointer. Bookkeeping
	// only; a failed write here must not block the charge.
	if rec.DefaultCardID != card.ID {
		rec.DefaultCardID = card.ID
		if err := u.customers.Put(ctx, rc.UserID, rec); err != nil {
			log.Printf("[checkout][usecase] default card update failed user_id=%s err=%v", rc.UserID, err)
		}
	}

	return resolvedSource{customerID: cust.ID, cardID: card.ID}, nil
}

// SavedCards returns the customer's saved-card record for checkout
// rendering. Guests and users without saved info get a zero record.
func (u *CheckoutUseCase) SavedCards(ctx context.Context, rc entities.RequestContext) (entities.CustomerRecord, error) {
	if !rc.Authenticated() || !u.config.SavedCardsEnabled {
		return entities.CustomerRecord{}, nil
	}
	return u.customers.Get(ctx, rc.UserID)
}

// completeOrder marks the order paid. Already-completed orders are left
// untouched so a duplicate completion never repeats the side effects.
func (u *CheckoutUseCase) completeOrder(ctx context.Context, order entities.Order, rc entities.RequestContext, transactionID string) error {
	if order.Completed() {
		return nil
	}

	if _, err := u.ledger.MarkComplete(ctx, order.ID); err != nil {
		return err
	}
	u.session.ClearAwaitingOrder(rc.SessionKey())

	note := fmt.Sprintf("%s payment completed with Transaction Id of %q", u.config.StatementLabel, transactionID)
	return u.ledger.AddNote(ctx, order.ID, note)
}

// paymentFailed records the failure on the order, reverts the session
// reload marker, and converts the cause into the user-facing result.
func (u *CheckoutUseCase) paymentFailed(ctx context.Context, order entities.Order, rc entities.RequestContext, cause error) (entities.CheckoutResult, error) {
	u.session.ClearReloadCheckout(rc.SessionKey())

	var procErr *entities.ProcessorError
	if !errors.As(cause, &procErr) {
		// Local failure: no processor contact happened, nothing to note.
		return entities.CheckoutResult{}, cause
	}

	message := ClassifyProcessorError(procErr.Code)
	note := fmt.Sprintf("%s Credit Card Payment Failed with message: %q", u.config.StatementLabel, message)
	if err := u.ledger.AddNote(ctx, order.ID, note); err != nil {
		log.Printf("[checkout][usecase] failure note not recorded order_id=%s err=%v", order.ID, err)
	}

	log.Printf("[checkout][usecase] process failure order_id=%s code=%s", order.ID, procErr.Code)
	return entities.CheckoutResult{
		Status:    entities.CheckoutStatusFailure,
		ErrorCode: procErr.Code,
		Message:   message,
	}, nil
}

// chargeDescription labels the charge on the processor dashboard with the
// first line item and the order number.
func (u *CheckoutUseCase) chargeDescription(order entities.Order) string {
	return fmt.Sprintf("Payment for %s (Order: %s)", order.FirstItemName(), order.Number)
}

// customerDescription labels the processor customer: login (#id - email)
// and the name on the card.
func (u *CheckoutUseCase) customerDescription(rc entities.RequestContext, form entities.CheckoutForm, order entities.Order) string {
	name := form.BillingName
	if name == "" {
		name = order.BillingName
	}
	return fmt.Sprintf("%s (#%s - %s) %s", rc.UserLogin, rc.UserID, rc.UserEmail, name)
}

func (u *CheckoutUseCase) returnURL(order entities.Order) string {
	base := strings.TrimRight(u.config.ReturnURL, "/")
	return base + "/" + order.ID
}
