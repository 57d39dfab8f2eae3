package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "cardpay/docs" // This will be auto-generated
	"cardpay/internal/adapter/http/handlers"
	"cardpay/internal/adapter/persistence/repository"
	"cardpay/internal/domain/entities"
	"cardpay/internal/infrastructure/database"
	"cardpay/internal/infrastructure/payments"
	"cardpay/internal/infrastructure/session"
	"cardpay/internal/usecase"
	"cardpay/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	checkoutSession := session.NewMemoryStore()

	gatewayConfig := gatewayConfigFromEnv()
	processor := processorFromEnv()

	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, customerRepo, processor, checkoutSession, gatewayConfig)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, checkoutSession)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, orderHandler, checkoutHandler)
}

// processorFromEnv selects the card processor. Stripe is the default;
// PAYMENT_PROCESSOR=mercadopago switches to Mercado Pago.
func processorFromEnv() interfaces.IProcessorClient {
	var processor interfaces.IProcessorClient

	switch strings.ToLower(os.Getenv("PAYMENT_PROCESSOR")) {
	case "mercadopago":
		mp, err := payments.NewMercadoPagoProcessor(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
		if err != nil {
			log.Printf("Mercado Pago processor not configured: %v", err)
		} else {
			processor = mp
		}
	default:
		sp, err := payments.NewStripeProcessor(os.Getenv("STRIPE_API_KEY"))
		if err != nil {
			log.Printf("Stripe processor not configured: %v", err)
		} else {
			processor = sp
		}
	}
	return processor
}

func gatewayConfigFromEnv() entities.GatewayConfig {
	chargeType := entities.ChargeTypeCapture
	if strings.ToLower(os.Getenv("CHARGE_TYPE")) == string(entities.ChargeTypeAuthorize) {
		chargeType = entities.ChargeTypeAuthorize
	}

	savedCards := true
	if v := os.Getenv("SAVED_CARDS"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid SAVED_CARDS value %q, keeping saved cards enabled", v)
		} else {
			savedCards = parsed
		}
	}

	label := os.Getenv("STATEMENT_LABEL")
	if label == "" {
		label = "cardpay"
	}
	returnURL := os.Getenv("RETURN_URL")
	if returnURL == "" {
		returnURL = "/v1/orders"
	}

	return entities.GatewayConfig{
		ChargeType:        chargeType,
		SavedCardsEnabled: savedCards,
		StatementLabel:    label,
		ReturnURL:         returnURL,
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
