package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"solar_portal/internal/adapter/http/handlers"
	"solar_portal/internal/adapter/http/routes"
	"solar_portal/internal/adapter/persistence/memory"
	"solar_portal/internal/adapter/persistence/repository"
	"solar_portal/internal/domain/entities"
	"solar_portal/internal/infrastructure/catalog"
	"solar_portal/internal/infrastructure/config"
	"solar_portal/internal/infrastructure/database"
	"solar_portal/internal/infrastructure/eventbus"
	"solar_portal/internal/infrastructure/logger"
	"solar_portal/internal/infrastructure/notify"
	"solar_portal/internal/infrastructure/payments"
	"solar_portal/internal/usecase"
	"solar_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// App is the wired service: handlers plus whatever must be closed on exit.
type App struct {
	Handlers  routes.Handlers
	Directory usecase.IDirectoryUseCase

	closers []func() error
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

type stores struct {
	projects      interfaces.IProjectRepository
	records       interfaces.IFinancialRecordRepository
	payments      interfaces.ICommissionPaymentRepository
	notifications interfaces.INotificationRepository
	settings      interfaces.ISettingsRepository
	users         interfaces.IUserDirectory
	audit         interfaces.IAuditLog
}

func buildApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{}

	var awsCfg aws.Config
	needsAWS := cfg.Storage.Driver == config.StorageDynamoDB || cfg.Email.Enabled || cfg.Events.Enabled
	if needsAWS {
		var err error
		awsCfg, err = database.NewAWSConfig(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
	}

	st, err := openStores(cfg, awsCfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.Postgres.Enabled {
		pg, err := database.NewPostgres(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, pg.Close)
		if err := pg.Ping(ctx); err != nil {
			_ = app.Close()
			return nil, fmt.Errorf("postgres unreachable: %w", err)
		}
		if err := database.RunMigrations(pg.DB); err != nil {
			_ = app.Close()
			return nil, err
		}
		st.audit = repository.NewHistoryPostgresRepository(pg.DB)
		log.Info("history log backed by postgres", nil)
	}

	if err := seedUsers(ctx, st.users, cfg.SeedUsers, log); err != nil {
		_ = app.Close()
		return nil, err
	}

	var channels notify.Channels
	if cfg.Email.Enabled {
		client := ses.NewFromConfig(awsCfg, func(o *ses.Options) {
			if cfg.Email.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Email.Endpoint)
			}
		})
		channels = append(channels, notify.NewEmailSender(client, cfg.Email.FromEmail, cfg.Email.FromName, cfg.App.BaseURL, log))
	}
	if cfg.Redis.Enabled {
		rc := database.NewRedis(cfg.Redis)
		app.closers = append(app.closers, rc.Close)
		if err := rc.Ping(ctx); err != nil {
			log.WithError(err).Warn("redis unreachable; live pushes disabled until it recovers", nil)
		}
		channels = append(channels, notify.NewRedisPusher(rc.Client))
	}

	cat := catalog.NewStatic(cfg.Catalog)
	projectOpts := []usecase.ProjectOption{
		usecase.WithDefaultCommissionRate(cfg.Commission.DefaultRate),
	}
	if len(cat.Listing().RoofTypes) > 0 {
		projectOpts = append(projectOpts, usecase.WithCatalog(cat))
	}
	if len(channels) > 0 {
		projectOpts = append(projectOpts, usecase.WithDelivery(channels))
	}
	if st.audit != nil {
		projectOpts = append(projectOpts, usecase.WithAuditLog(st.audit))
	}
	if cfg.Events.Enabled {
		client := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
			if cfg.Events.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Events.Endpoint)
			}
		})
		projectOpts = append(projectOpts, usecase.WithEventPublisher(eventbus.NewSNSPublisher(client, cfg.Events.TopicARN)))
	}

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.Payments, log); err != nil {
		log.WithError(err).Warn("mercado pago gateway not configured", nil)
	} else {
		gateway = mp
	}
	financeOpts := []usecase.FinancialOption{
		usecase.WithFinancialDefaultRate(cfg.Commission.DefaultRate),
		usecase.WithPaymentMockMode(cfg.Payments.Mock),
	}
	if st.audit != nil {
		financeOpts = append(financeOpts, usecase.WithFinancialAuditLog(st.audit))
	}

	dispatcher := usecase.NewNotificationDispatcher(st.users, log)
	projectUseCase := usecase.NewProjectUseCase(st.projects, st.users, st.settings, dispatcher, log, projectOpts...)
	financeUseCase := usecase.NewFinancialUseCase(st.records, st.payments, st.settings, st.users, gateway, log, financeOpts...)
	directoryUseCase := usecase.NewDirectoryUseCase(st.users)

	app.Directory = directoryUseCase
	app.Handlers = routes.Handlers{
		Project:      handlers.NewProjectHandler(projectUseCase),
		Finance:      handlers.NewFinanceHandler(financeUseCase, log, cfg.Payments.Mock),
		Notification: handlers.NewNotificationHandler(usecase.NewNotificationUseCase(st.notifications)),
		History:      handlers.NewHistoryHandler(usecase.NewHistoryUseCase(st.audit)),
		Directory:    handlers.NewDirectoryHandler(directoryUseCase, cat),
	}
	return app, nil
}

func openStores(cfg *config.Config, awsCfg aws.Config, log logger.Logger) (stores, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("memory storage selected; state is lost on restart", nil)
		s := memory.NewStore()
		return stores{
			projects:      s.Projects(),
			records:       s.Records(),
			payments:      s.Payments(),
			notifications: s.Notifications(),
			settings:      s.Settings(),
			users:         s.Users(),
			audit:         s.History(),
		}, nil
	case config.StorageDynamoDB:
		ddb := database.ConnectDynamoDB(awsCfg, cfg.DynamoDB.Endpoint)
		t := cfg.DynamoDB.Tables
		return stores{
			projects: repository.NewProjectDynamoRepository(ddb, repository.ProjectTables{
				Projects:         t.Projects,
				FinancialRecords: t.FinancialRecords,
				Notifications:    t.Notifications,
			}, log),
			records:       repository.NewFinancialRecordDynamoRepository(ddb, t.FinancialRecords),
			payments:      repository.NewCommissionPaymentDynamoRepository(ddb, t.CommissionPayments),
			notifications: repository.NewNotificationDynamoRepository(ddb, t.Notifications),
			settings:      repository.NewSettingsDynamoRepository(ddb, t.Settings),
			users:         repository.NewUserDynamoRepository(ddb, t.Users),
		}, nil
	}
	return stores{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// seedUsers inserts configured users that are not in the directory yet.
// Existing records are left alone so edits made at runtime survive restarts.
func seedUsers(ctx context.Context, users interfaces.IUserDirectory, seeds []config.SeedUser, log logger.Logger) error {
	for _, s := range seeds {
		existing, err := users.GetByID(ctx, s.ID)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", s.ID, err)
		}
		if existing.ID != "" {
			continue
		}
		u, err := userFromSeed(s)
		if err != nil {
			return err
		}
		if err := users.Upsert(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", s.ID, err)
		}
		log.Info("seeded user", map[string]interface{}{"user_id": u.ID, "role": string(u.Role)})
	}
	return nil
}

func userFromSeed(s config.SeedUser) (entities.User, error) {
	contact := entities.ContactInfo{Email: s.Email, Phone: s.Phone}
	switch entities.Role(strings.ToLower(s.Role)) {
	case entities.RoleHomeowner:
		return entities.NewHomeowner(s.ID, s.Name, contact), nil
	case entities.RoleInstaller:
		u := entities.NewInstaller(s.ID, s.Name, contact, s.ServiceCounties)
		u.RegistrationNumber = s.RegistrationNumber
		return u, nil
	case entities.RoleAdmin:
		u := entities.NewAdmin(s.ID, s.Name, s.Email, entities.AdminPermissions{CanLoginAs: true})
		u.Contact.Phone = s.Phone
		return u, nil
	}
	return entities.User{}, fmt.Errorf("seed user %s: unknown role %q", s.ID, s.Role)
}
