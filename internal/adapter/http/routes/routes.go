package routes

import (
	"log"
	"os"
	"strconv"

	_ "aerodetail/docs" // This will be auto-generated
	"aerodetail/internal/adapter/http/handlers"
	repository2 "aerodetail/internal/adapter/persistence/repository"
	"aerodetail/internal/infrastructure/database"
	"aerodetail/internal/infrastructure/notifications"
	"aerodetail/internal/infrastructure/payments"
	"aerodetail/internal/infrastructure/scheduler"
	"aerodetail/internal/usecase"
	"aerodetail/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
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

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	changeOrderRepo := repository2.NewChangeOrderDynamoRepository(ddb)
	completionRepo := repository2.NewJobCompletionDynamoRepository(ddb, quoteRepo)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	accountRepo := repository2.NewAccountDynamoRepository(ddb)
	recommendationRepo := repository2.NewRecommendationDynamoRepository(ddb)
	statsRepo := repository2.NewAccountStatsDynamoRepository(quoteRepo, completionRepo, accountRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	notifier := notifications.NewLogNotifier()

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogRepo, accountRepo, notifier)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quoteRepo, paymentGateway)
	changeOrderUseCase := usecase.NewChangeOrderUseCase(changeOrderRepo, quoteRepo)
	completionUseCase := usecase.NewJobCompletionUseCase(completionRepo, quoteRepo)
	recommendationUseCase := usecase.NewRecommendationUseCase(recommendationRepo, statsRepo)

	recommendationScheduler := scheduler.NewRecommendationScheduler(recommendationUseCase, accountRepo)
	if err := recommendationScheduler.Start(); err != nil {
		log.Printf("Recommendation scheduler not started: %v", err)
	}

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	changeOrderHandler := handlers.NewChangeOrderHandler(changeOrderUseCase)
	completionHandler := handlers.NewJobCompletionHandler(completionUseCase)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, paymentHandler, changeOrderHandler, completionHandler)
	addRecommendationRoutes(v1, recommendationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
