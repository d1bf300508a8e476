package routes

import (
	"solar_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathFinance = "/finance"

func addFinanceRoutes(rg *gin.RouterGroup, financeHandler *handlers.FinanceHandler) {
	finance := rg.Group(PathFinance)
	{
		finance.GET("/commission-rate", financeHandler.GetCommissionRate)
		finance.PUT("/commission-rate", financeHandler.SetCommissionRate)

		finance.GET("/records", financeHandler.ListRecords)
		finance.POST("/records/:id/mark-collected", financeHandler.MarkCollected)
		finance.POST("/records/:id/collect", financeHandler.CollectCommission)
		finance.GET("/records/:id/payments", financeHandler.ListPayments)
	}
}
