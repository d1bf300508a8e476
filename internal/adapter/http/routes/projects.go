package routes

import (
	"solar_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathInstaller = "/installer"
)

func addProjectRoutes(rg *gin.RouterGroup, projectHandler *handlers.ProjectHandler, financeHandler *handlers.FinanceHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", projectHandler.Submit)
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.Get)
		projects.PATCH("/:id", projectHandler.Edit)
		projects.DELETE("/:id", projectHandler.Delete)
		projects.GET("/:id/contact", projectHandler.Contact)
		projects.GET("/:id/financial-record", financeHandler.GetByProject)

		// Admin moderation.
		projects.POST("/:id/approve", projectHandler.Approve)
		projects.POST("/:id/hold", projectHandler.Hold)
		projects.POST("/:id/restore", projectHandler.Restore)

		// Marketplace.
		projects.POST("/:id/share-contact", projectHandler.ShareContact)
		projects.POST("/:id/quotes", projectHandler.SubmitQuote)
		projects.POST("/:id/accept", projectHandler.AcceptOffer)
		projects.POST("/:id/sign", projectHandler.MarkAsSigned)
		projects.POST("/:id/review", projectHandler.LeaveReview)
	}

	installer := rg.Group(PathInstaller)
	{
		installer.GET("/dashboard", projectHandler.Dashboard)
	}
}
