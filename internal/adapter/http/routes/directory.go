package routes

import (
	"solar_portal/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog       = "/catalog"
	PathMe            = "/me"
	PathInstallers    = "/installers"
	PathNotifications = "/notifications"
	PathHistory       = "/history"
)

func addDirectoryRoutes(rg *gin.RouterGroup, directoryHandler *handlers.DirectoryHandler) {
	rg.GET(PathMe, directoryHandler.Me)

	installers := rg.Group(PathInstallers)
	{
		installers.GET("", directoryHandler.ListInstallers)
		installers.GET("/:id", directoryHandler.GetInstaller)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.List)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
	}
}

func addHistoryRoutes(rg *gin.RouterGroup, historyHandler *handlers.HistoryHandler) {
	rg.GET(PathHistory, historyHandler.List)
}
