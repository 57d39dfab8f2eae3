package usecase

import (
	"context"
	"errors"
	"testing"

	"cardpay/internal/domain/entities"
	mock_interfaces "cardpay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type checkoutMocks struct {
	ledger    *mock_interfaces.MockIOrderLedger
	customers *mock_interfaces.MockICustomerStore
	processor *mock_interfaces.MockIProcessorClient
	session   *mock_interfaces.MockICheckoutSession
}

func newCheckoutUseCase(t *testing.T, cfg entities.GatewayConfig) (*CheckoutUseCase, checkoutMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := checkoutMocks{
		ledger:    mock_interfaces.NewMockIOrderLedger(ctrl),
		customers: mock_interfaces.NewMockICustomerStore(ctrl),
		processor: mock_interfaces.NewMockIProcessorClient(ctrl),
		session:   mock_interfaces.NewMockICheckoutSession(ctrl),
	}
	return NewCheckoutUseCase(m.ledger, m.customers, m.processor, m.session, cfg), m
}

func defaultConfig() entities.GatewayConfig {
	return entities.GatewayConfig{
		ChargeType:        entities.ChargeTypeCapture,
		SavedCardsEnabled: true,
		StatementLabel:    "cardpay",
		ReturnURL:         "/v1/orders",
	}
}

func pendingOrder() entities.Order {
	return entities.Order{
		ID:       "ord-1",
		Number:   "1042",
		Total:    19.99,
		Currency: "USD",
		Items:    []entities.OrderItem{{Name: "Blue Widget", Quantity: 1, Price: 19.99}},
		Status:   entities.OrderStatusPending,
	}
}

func authedContext() entities.RequestContext {
	return entities.RequestContext{UserID: "u-1", UserLogin: "alice", UserEmail: "alice@example.com", SessionID: "sess-1"}
}

func TestCheckoutUseCase_ProcessPayment_LocalFailures(t *testing.T) {
	t.Run("processor not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ledger := mock_interfaces.NewMockIOrderLedger(ctrl)
		customers := mock_interfaces.NewMockICustomerStore(ctrl)
		session := mock_interfaces.NewMockICheckoutSession(ctrl)
		uc := NewCheckoutUseCase(ledger, customers, nil, session, defaultConfig())

		// No expectations on any mock: the guard must fire before the
		// ledger is read or any session marker is set.
		_, err := uc.ProcessPayment(context.Background(), "ord-1", authedContext(), entities.CheckoutForm{Token: "tok_visa"})
		if !errors.Is(err, ErrProcessorNotConfigured) {
			t.Fatalf("expected ErrProcessorNotConfigured, got %v", err)
		}
	})

	t.Run("empty order id", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t, defaultConfig())
		_, err := uc.ProcessPayment(context.Background(), "  ", entities.RequestContext{}, entities.CheckoutForm{})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("ledger error propagates", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("db"))

		_, err := uc.ProcessPayment(context.Background(), "ord-1", entities.RequestContext{}, entities.CheckoutForm{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, nil)

		_, err := uc.ProcessPayment(context.Background(), "ord-1", entities.RequestContext{}, entities.CheckoutForm{})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("pre-flagged form errors skip processor silently", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)

		_, err := uc.ProcessPayment(context.Background(), "ord-1", entities.RequestContext{}, entities.CheckoutForm{Token: "tok_ok", HasErrors: true})
		if !errors.Is(err, ErrCheckoutFormInvalid) {
			t.Fatalf("expected ErrCheckoutFormInvalid, got %v", err)
		}
	})

	t.Run("guest without token fails before any network call", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.session.EXPECT().SetReloadCheckout("")
		m.session.EXPECT().ClearReloadCheckout("")

		_, err := uc.ProcessPayment(context.Background(), "ord-1", entities.RequestContext{}, entities.CheckoutForm{})
		if !errors.Is(err, ErrMissingPaymentSource) {
			t.Fatalf("expected ErrMissingPaymentSource, got %v", err)
		}
	})

	t.Run("negative total", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		o := pendingOrder()
		o.Total = -5
		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		_, err := uc.ProcessPayment(context.Background(), "ord-1", entities.RequestContext{}, entities.CheckoutForm{Token: "tok_ok"})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestCheckoutUseCase_ProcessPayment_GuestSuccess(t *testing.T) {
	uc, m := newCheckoutUseCase(t, defaultConfig())
	rc := entities.RequestContext{SessionID: "sess-g"}

	m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	m.session.EXPECT().SetReloadCheckout("sess-g")

	m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
			if req.Amount != 1999 {
				t.Fatalf("expected amount 1999, got %d", req.Amount)
			}
			if req.Currency != "usd" {
				t.Fatalf("expected lowercase currency, got %q", req.Currency)
			}
			if !req.Capture {
				t.Fatalf("expected capture=true for capture charge type")
			}
			if req.Token != "tok_ok" || req.CustomerID != "" || req.CardID != "" {
				t.Fatalf("expected one-time token source, got %+v", req)
			}
			if req.Description != "Payment for Blue Widget (Order: 1042)" {
				t.Fatalf("unexpected description %q", req.Description)
			}
			return entities.ChargeResult{TransactionID: "ch_1"}, nil
		},
	)

	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaTransactionID, "ch_1").Return(nil)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCapture, "true").Return(nil)
	m.ledger.EXPECT().MarkComplete(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCompleted}, nil)
	m.session.EXPECT().ClearAwaitingOrder("sess-g")
	m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", `cardpay payment completed with Transaction Id of "ch_1"`).Return(nil)

	res, err := uc.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{Token: "tok_ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.CheckoutStatusSuccess {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Redirect != "/v1/orders/ord-1" {
		t.Fatalf("unexpected redirect %q", res.Redirect)
	}
	if res.TransactionID != "ch_1" {
		t.Fatalf("unexpected transaction id %q", res.TransactionID)
	}
}

func TestCheckoutUseCase_ProcessPayment_NewCustomer(t *testing.T) {
	uc, m := newCheckoutUseCase(t, defaultConfig())
	rc := authedContext()
	newCard := entities.CardInfo{ID: "card_1", Brand: "Visa", Last4: "4242", ExpMonth: 4, ExpYear: 2030}

	m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	m.session.EXPECT().SetReloadCheckout("sess-1")

	m.customers.EXPECT().Get(gomock.Any(), "u-1").Return(entities.CustomerRecord{}, nil)
	m.processor.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec entities.NewCustomerSpec) (entities.ProcessorCustomer, error) {
			if spec.Token != "tok_ok" {
				t.Fatalf("expected token tok_ok, got %q", spec.Token)
			}
			if spec.Description != "alice (#u-1 - alice@example.com) Alice B" {
				t.Fatalf("unexpected customer description %q", spec.Description)
			}
			return entities.ProcessorCustomer{ID: "cus_1", DefaultCard: newCard}, nil
		},
	)
	m.customers.EXPECT().Put(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, rec entities.CustomerRecord) error {
			if rec.CustomerID != "cus_1" {
				t.Fatalf("unexpected customer id %q", rec.CustomerID)
			}
			if len(rec.Cards) != 1 || rec.Cards[0] != newCard {
				t.Fatalf("expected exactly one card, got %+v", rec.Cards)
			}
			if rec.DefaultCardID != "card_1" {
				t.Fatalf("expected new card as default, got %q", rec.DefaultCardID)
			}
			return nil
		},
	)

	m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
			if req.Token != "" || req.CustomerID != "cus_1" || req.CardID != "card_1" {
				t.Fatalf("expected saved-card source, got %+v", req)
			}
			if req.Amount != 1999 {
				t.Fatalf("expected amount 1999, got %d", req.Amount)
			}
			return entities.ChargeResult{TransactionID: "ch_2"}, nil
		},
	)

	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaTransactionID, "ch_2").Return(nil)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCapture, "true").Return(nil)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCustomerID, "cus_1").Return(nil)
	m.ledger.EXPECT().MarkComplete(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCompleted}, nil)
	m.session.EXPECT().ClearAwaitingOrder("sess-1")
	m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", gomock.Any()).Return(nil)

	res, err := uc.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{Token: "tok_ok", BillingName: "Alice B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.CheckoutStatusSuccess {
		t.Fatalf("expected success, got %+v", res)
	}
}

func TestCheckoutUseCase_ProcessPayment_ExistingCustomerNewCard(t *testing.T) {
	uc, m := newCheckoutUseCase(t, defaultConfig())
	rc := authedContext()
	oldCard := entities.CardInfo{ID: "card_old", Brand: "Visa", Last4: "1111", ExpMonth: 1, ExpYear: 2027}
	newCard := entities.CardInfo{ID: "card_new", Brand: "MasterCard", Last4: "2222", ExpMonth: 2, ExpYear: 2031}

	m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	m.session.EXPECT().SetReloadCheckout("sess-1")

	m.customers.EXPECT().Get(gomock.Any(), "u-1").Return(entities.CustomerRecord{
		CustomerID:    "cus_1",
		Cards:         []entities.CardInfo{oldCard},
		DefaultCardID: "card_old",
	}, nil)
	m.processor.EXPECT().GetCustomer(gomock.Any(), "cus_1").Return(entities.ProcessorCustomer{ID: "cus_1", Cards: []entities.CardInfo{oldCard}}, nil)
	m.processor.EXPECT().AddCard(gomock.Any(), "cus_1", "tok_new").Return(newCard, nil)
	m.customers.EXPECT().Put(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, rec entities.CustomerRecord) error {
			if len(rec.Cards) != 2 {
				t.Fatalf("expected appended card, got %+v", rec.Cards)
			}
			if !rec.HasCard("card_old") {
				t.Fatalf("previously-default card must remain in the list")
			}
			if rec.DefaultCardID != "card_new" {
				t.Fatalf("expected new card as default, got %q", rec.DefaultCardID)
			}
			return nil
		},
	)

	m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
			if req.CustomerID != "cus_1" || req.CardID != "card_new" {
				t.Fatalf("expected charge on the new card, got %+v", req)
			}
			return entities.ChargeResult{TransactionID: "ch_3"}, nil
		},
	)

	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaTransactionID, "ch_3").Return(nil)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCapture, "true").Return(nil)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCustomerID, "cus_1").Return(nil)
	m.ledger.EXPECT().MarkComplete(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCompleted}, nil)
	m.session.EXPECT().ClearAwaitingOrder("sess-1")
	m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", gomock.Any()).Return(nil)

	form := entities.CheckoutForm{Token: "tok_new", ChosenCard: entities.ChosenCardNew}
	if _, err := uc.ProcessPayment(context.Background(), "ord-1", rc, form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckoutUseCase_ProcessPayment_ExistingCustomerSavedCard(t *testing.T) {
	uc, m := newCheckoutUseCase(t, defaultConfig())
	rc := authedContext()
	cards := []entities.CardInfo{
		{ID: "card_a", Brand: "Visa", Last4: "1111"},
		{ID: "card_b", Brand: "Amex", Last4: "2222"},
	}

	t.Run("index selection never creates customers or cards", func(t *testing.T) {
		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.session.EXPECT().SetReloadCheckout("sess-1")

		m.customers.EXPECT().Get(gomock.Any(), "u-1").Return(entities.CustomerRecord{
			CustomerID:    "cus_1",
			Cards:         cards,
			DefaultCardID: "card_a",
		}, nil)
		m.processor.EXPECT().GetCustomer(gomock.Any(), "cus_1").Return(entities.ProcessorCustomer{ID: "cus_1", Cards: cards}, nil)

		// Choosing the non-default card moves the default pointer.
		m.customers.EXPECT().Put(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, rec entities.CustomerRecord) error {
				if rec.DefaultCardID != "card_b" {
					t.Fatalf("expected default moved to card_b, got %q", rec.DefaultCardID)
				}
				if len(rec.Cards) != 2 {
					t.Fatalf("card list must be unchanged, got %+v", rec.Cards)
				}
				return nil
			},
		)

		m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
				if req.CardID != "card_b" {
					t.Fatalf("expected charge on card_b, got %+v", req)
				}
				return entities.ChargeResult{TransactionID: "ch_4"}, nil
			},
		)

		m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaTransactionID, "ch_4").Return(nil)
		m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCapture, "true").Return(nil)
		m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCustomerID, "cus_1").Return(nil)
		m.ledger.EXPECT().MarkComplete(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCompleted}, nil)
		m.session.EXPECT().ClearAwaitingOrder("sess-1")
		m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", gomock.Any()).Return(nil)

		form := entities.CheckoutForm{ChosenCard: "1"}
		if _, err := uc.ProcessPayment(context.Background(), "ord-1", rc, form); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("out of range selection", func(t *testing.T) {
		uc2, m2 := newCheckoutUseCase(t, defaultConfig())
		m2.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m2.session.EXPECT().SetReloadCheckout("sess-1")
		m2.customers.EXPECT().Get(gomock.Any(), "u-1").Return(entities.CustomerRecord{
			CustomerID:    "cus_1",
			Cards:         cards,
			DefaultCardID: "card_a",
		}, nil)
		m2.processor.EXPECT().GetCustomer(gomock.Any(), "cus_1").Return(entities.ProcessorCustomer{ID: "cus_1", Cards: cards}, nil)
		m2.session.EXPECT().ClearReloadCheckout("sess-1")

		_, err := uc2.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{ChosenCard: "7"})
		if !errors.Is(err, ErrInvalidCardSelection) {
			t.Fatalf("expected ErrInvalidCardSelection, got %v", err)
		}
	})
}

func TestCheckoutUseCase_ProcessPayment_ProcessorFailures(t *testing.T) {
	declined := &entities.ProcessorError{Code: entities.ProcErrCardDeclined, Detail: "insufficient funds"}

	t.Run("card declined leaves no transaction id", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		rc := entities.RequestContext{SessionID: "sess-g"}

		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.session.EXPECT().SetReloadCheckout("sess-g")
		m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(entities.ChargeResult{}, declined)
		m.session.EXPECT().ClearReloadCheckout("sess-g")
		m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", `cardpay Credit Card Payment Failed with message: "Your card was declined."`).Return(nil)

		res, err := uc.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{Token: "tok_ok"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.CheckoutStatusFailure {
			t.Fatalf("expected failure, got %+v", res)
		}
		if res.Message != "Your card was declined." {
			t.Fatalf("unexpected message %q", res.Message)
		}
		if res.TransactionID != "" {
			t.Fatalf("failed charge must not carry a transaction id")
		}
	})

	t.Run("incorrect zip scenario", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		rc := entities.RequestContext{SessionID: "sess-g"}

		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.session.EXPECT().SetReloadCheckout("sess-g")
		m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(entities.ChargeResult{}, &entities.ProcessorError{Code: entities.ProcErrIncorrectZip})
		m.session.EXPECT().ClearReloadCheckout("sess-g")
		m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, text string) error {
				if text != `cardpay Credit Card Payment Failed with message: "Your zip code failed validation."` {
					t.Fatalf("unexpected failure note %q", text)
				}
				return nil
			},
		)

		res, err := uc.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{Token: "tok_ok"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != "Your zip code failed validation." {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("unknown processor code gets generic message", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		rc := entities.RequestContext{SessionID: "sess-g"}

		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.session.EXPECT().SetReloadCheckout("sess-g")
		m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(entities.ChargeResult{}, &entities.ProcessorError{Code: "processing_error"})
		m.session.EXPECT().ClearReloadCheckout("sess-g")
		m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", gomock.Any()).Return(nil)

		res, err := uc.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{Token: "tok_ok"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Message != GenericChargeFailureMessage {
			t.Fatalf("unexpected message %q", res.Message)
		}
	})

	t.Run("processor failure during customer resolution skips the charge", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		rc := authedContext()

		m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
		m.session.EXPECT().SetReloadCheckout("sess-1")
		m.customers.EXPECT().Get(gomock.Any(), "u-1").Return(entities.CustomerRecord{}, nil)
		m.processor.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(entities.ProcessorCustomer{}, declined)
		m.session.EXPECT().ClearReloadCheckout("sess-1")
		m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", gomock.Any()).Return(nil)

		res, err := uc.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{Token: "tok_ok"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.CheckoutStatusFailure || res.Message != "Your card was declined." {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}

func TestCheckoutUseCase_ProcessPayment_AuthorizeOnly(t *testing.T) {
	cfg := defaultConfig()
	cfg.ChargeType = entities.ChargeTypeAuthorize
	uc, m := newCheckoutUseCase(t, cfg)
	rc := entities.RequestContext{SessionID: "sess-g"}

	m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	m.session.EXPECT().SetReloadCheckout("sess-g")
	m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
			if req.Capture {
				t.Fatalf("authorize-only charge must not capture")
			}
			return entities.ChargeResult{TransactionID: "ch_auth"}, nil
		},
	)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaTransactionID, "ch_auth").Return(nil)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCapture, "false").Return(nil)
	m.ledger.EXPECT().MarkComplete(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCompleted}, nil)
	m.session.EXPECT().ClearAwaitingOrder("sess-g")
	m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", gomock.Any()).Return(nil)

	if _, err := uc.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{Token: "tok_ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckoutUseCase_ProcessPayment_CompletionIdempotent(t *testing.T) {
	uc, m := newCheckoutUseCase(t, defaultConfig())
	rc := entities.RequestContext{SessionID: "sess-g"}

	o := pendingOrder()
	o.Status = entities.OrderStatusCompleted

	m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
	m.session.EXPECT().SetReloadCheckout("sess-g")
	m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return(entities.ChargeResult{TransactionID: "ch_5"}, nil)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaTransactionID, "ch_5").Return(nil)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCapture, "true").Return(nil)
	// No MarkComplete, no ClearAwaitingOrder, no completion note: the
	// completion step is a no-op on an already-complete order.

	res, err := uc.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{Token: "tok_ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.CheckoutStatusSuccess {
		t.Fatalf("expected success, got %+v", res)
	}
}

func TestCheckoutUseCase_ProcessPayment_SavedCardsDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.SavedCardsEnabled = false
	uc, m := newCheckoutUseCase(t, cfg)
	rc := authedContext()

	m.ledger.EXPECT().GetByID(gomock.Any(), "ord-1").Return(pendingOrder(), nil)
	m.session.EXPECT().SetReloadCheckout("sess-1")
	// Customer store untouched: logged-in user still pays on the raw token.
	m.processor.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.ChargeRequest) (entities.ChargeResult, error) {
			if req.Token != "tok_ok" || req.CustomerID != "" {
				t.Fatalf("expected one-time token source, got %+v", req)
			}
			return entities.ChargeResult{TransactionID: "ch_6"}, nil
		},
	)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaTransactionID, "ch_6").Return(nil)
	m.ledger.EXPECT().SetMeta(gomock.Any(), "ord-1", entities.MetaCapture, "true").Return(nil)
	m.ledger.EXPECT().MarkComplete(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusCompleted}, nil)
	m.session.EXPECT().ClearAwaitingOrder("sess-1")
	m.ledger.EXPECT().AddNote(gomock.Any(), "ord-1", gomock.Any()).Return(nil)

	if _, err := uc.ProcessPayment(context.Background(), "ord-1", rc, entities.CheckoutForm{Token: "tok_ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckoutUseCase_SavedCards(t *testing.T) {
	t.Run("guest gets zero record", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t, defaultConfig())
		rec, err := uc.SavedCards(context.Background(), entities.RequestContext{})
		if err != nil || rec.Exists() {
			t.Fatalf("unexpected result rec=%+v err=%v", rec, err)
		}
	})

	t.Run("authed user reads the store", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t, defaultConfig())
		m.customers.EXPECT().Get(gomock.Any(), "u-1").Return(entities.CustomerRecord{CustomerID: "cus_1"}, nil)

		rec, err := uc.SavedCards(context.Background(), authedContext())
		if err != nil || rec.CustomerID != "cus_1" {
			t.Fatalf("unexpected result rec=%+v err=%v", rec, err)
		}
	})
}
