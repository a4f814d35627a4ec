package routes

import (
	"aerodetail/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes          = "/quotes"
	PathSharedQuotes    = "/shared/quotes"
	PathPayments        = "/payments"
	PathAccounts        = "/accounts"
	PathRecommendations = "/recommendations"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	paymentHandler *handlers.PaymentHandler,
	changeOrderHandler *handlers.ChangeOrderHandler,
	completionHandler *handlers.JobCompletionHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuoteByID)
		quotes.POST("/:id/send", quoteHandler.SendQuote)
		quotes.POST("/:id/viewed", quoteHandler.MarkQuoteViewed)
		quotes.POST("/:id/schedule", quoteHandler.ScheduleQuote)
		quotes.POST("/:id/start", quoteHandler.StartQuote)
		quotes.POST("/:id/decline", quoteHandler.DeclineQuote)
		quotes.POST("/:id/request-new", quoteHandler.RequestNewQuote)

		quotes.POST("/:id/change-orders", changeOrderHandler.CreateChangeOrder)
		quotes.GET("/:id/change-orders", changeOrderHandler.ListChangeOrders)

		quotes.POST("/:id/complete", completionHandler.CompleteJob)
		quotes.GET("/:id/completion", completionHandler.GetJobCompletion)
	}

	// Customer-facing share links live outside the quotes group so the token
	// path does not collide with the :id parameter.
	shared := rg.Group(PathSharedQuotes)
	{
		shared.GET("/:token", quoteHandler.GetQuoteByShareToken)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}
}

func addRecommendationRoutes(rg *gin.RouterGroup, recommendationHandler *handlers.RecommendationHandler) {
	accounts := rg.Group(PathAccounts)
	{
		accounts.POST("/:account_id/recommendations/generate", recommendationHandler.GenerateRecommendations)
		accounts.GET("/:account_id/recommendations", recommendationHandler.ListActiveRecommendations)
	}

	recommendations := rg.Group(PathRecommendations)
	{
		recommendations.PATCH("/:id/act", recommendationHandler.MarkRecommendationActedOn)
		recommendations.PATCH("/:id/dismiss", recommendationHandler.DismissRecommendation)
	}
}
