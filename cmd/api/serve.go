package main

import (
	"os"
	"os/signal"
	"syscall"

	"solar_portal/internal/adapter/http/routes"
	"solar_portal/internal/infrastructure/config"
	"solar_portal/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(load func() (*config.Config, error)) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.App.Port = port
			}

			log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format).
				WithFields(map[string]interface{}{"service": cfg.App.Name, "env": cfg.App.Environment})
			if cfg.App.Environment == "production" {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := buildApp(ctx, cfg, log)
			if err != nil {
				log.WithError(err).Error("startup failed", nil)
				return err
			}
			defer app.Close()

			router := routes.NewRouter(app.Handlers, app.Directory, log, cfg.App.CORSOrigins...)
			return routes.Run(ctx, router, cfg.App.Port, log)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "override app.port")
	return cmd
}
