package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "solar_portal/docs"
	"solar_portal/internal/adapter/http/handlers"
	"solar_portal/internal/infrastructure/logger"
	"solar_portal/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Handlers bundles everything mounted under /v1.
type Handlers struct {
	Project      *handlers.ProjectHandler
	Finance      *handlers.FinanceHandler
	Notification *handlers.NotificationHandler
	History      *handlers.HistoryHandler
	Directory    *handlers.DirectoryHandler
}

// NewRouter builds the engine. Everything under /v1 except the catalog
// requires a caller resolved through the directory. Browser requests are
// accepted from allowedOrigins only; none means no CORS headers at all.
func NewRouter(h Handlers, directory usecase.IDirectoryUseCase, log logger.Logger, allowedOrigins ...string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)
	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Type", handlers.HeaderUserID},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	addPingRoutes(router)

	public := router.Group("/v1")
	public.GET(PathCatalog, h.Directory.Catalog)

	v1 := router.Group("/v1", handlers.Identity(directory))
	addDirectoryRoutes(v1, h.Directory)
	addProjectRoutes(v1, h.Project, h.Finance)
	addFinanceRoutes(v1, h.Finance)
	addNotificationRoutes(v1, h.Notification)
	addHistoryRoutes(v1, h.History)

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, router *gin.Engine, port int, log logger.Logger) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, log logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", map[string]interface{}{"panic": recovered, "path": c.FullPath()})
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
