package routes

import (
	"cardpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathCheckout  = "/checkout"
	PathCustomers = "/customers"
)

func addCheckoutRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, checkoutHandler *handlers.CheckoutHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:order_id", orderHandler.GetOrder)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/:order_id", checkoutHandler.ProcessPayment)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.GET("/me/cards", checkoutHandler.SavedCards)
	}
}
