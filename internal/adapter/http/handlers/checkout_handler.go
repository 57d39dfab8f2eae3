package handlers

import (
	"errors"
	"net/http"

	request "cardpay/internal/adapter/http/dto/request"
	response "cardpay/internal/adapter/http/dto/response"
	"cardpay/internal/domain/entities"
	"cardpay/internal/usecase"
	"cardpay/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	errUnauthenticated        = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
)

// CheckoutHandler handles the payment-submission routes.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// ProcessPayment charges the order identified by the path parameter.
//
// Processor declines do not surface as HTTP errors from the use case; they
// come back as a failure result and map to 402 here.
func (h *CheckoutHandler) ProcessPayment(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	rc := requestContextFrom(c)
	result, err := h.usecase.ProcessPayment(c.Request.Context(), c.Param("order_id"), rc, payload.ToForm())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if result.Status == entities.CheckoutStatusFailure {
		c.JSON(http.StatusPaymentRequired, response.FromCheckoutResult(result))
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// SavedCards lists the stored cards for the authenticated caller.
func (h *CheckoutHandler) SavedCards(c *gin.Context) {
	rc := requestContextFrom(c)
	if !rc.Authenticated() {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}

	rec, err := h.usecase.SavedCards(c.Request.Context(), rc)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCards(rec))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrCheckoutFormInvalid), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentSource):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_SOURCE", "A payment source is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCardSelection):
		return pkg.NewDomainErrorSimple("INVALID_CARD_SELECTION", "The selected card is not available", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
