package main

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/transport-admin-api/infrastructure/migration"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/api"
	"github.com/vfg2006/transport-admin-api/internal/api/handler"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/realtime"
	"github.com/vfg2006/transport-admin-api/internal/scheduler"
	"github.com/vfg2006/transport-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/transport-admin-api/internal/usecases/configuring"
	"github.com/vfg2006/transport-admin-api/internal/usecases/fleet"
	"github.com/vfg2006/transport-admin-api/internal/usecases/insighting"
	"github.com/vfg2006/transport-admin-api/internal/usecases/ranking"
	"github.com/vfg2006/transport-admin-api/internal/usecases/reporting"
	"github.com/vfg2006/transport-admin-api/internal/usecases/shipping"
	"github.com/vfg2006/transport-admin-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.RunMigrations {
		if err := migration.Run(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	historyRepo := repository.NewHistoryRepository(pgConn)
	busRepo := repository.NewBusRepository(pgConn)
	driverRepo := repository.NewDriverRepository(pgConn)
	parcelRepo := repository.NewParcelRepository(pgConn)
	settingsRepo := repository.NewSettingsRepository(pgConn)
	snapshotRepo := repository.NewDailySnapshotRepository(pgConn)
	busRankingRepo := repository.NewBusRankingRepository(pgConn)

	authenticator := authenticating.NewService(cfg, userRepo)
	insightService := insighting.NewService(cfg, historyRepo, userRepo, busRepo, driverRepo, parcelRepo, snapshotRepo)
	reporter := reporting.NewService(cfg, insightService, busRepo, driverRepo)

	busRankingSync := scheduler.NewBusRankingService(historyRepo, busRankingRepo, cfg)
	dailySnapshotSync := scheduler.NewDailySnapshotService(historyRepo, snapshotRepo, cfg)

	jobs := handler.CronJobs{
		handler.CronJobTypeBusRanking:    busRankingSync,
		handler.CronJobTypeDailySnapshot: dailySnapshotSync,
	}
	for name, job := range jobs {
		if err := job.Start(ctx); err != nil {
			logrus.WithError(err).WithField("job", name).Error("Erro ao iniciar agendador")
			continue
		}
		logrus.WithField("job", name).Info("Agendador iniciado com sucesso")
	}

	services := api.Services{
		DB:            pgConn,
		Authenticator: authenticator,
		Insighter:     insightService,
		Fleet:         fleet.NewService(busRepo, driverRepo),
		Shipping:      shipping.NewService(parcelRepo),
		Settings:      configuring.NewService(settingsRepo),
		Ranking:       ranking.NewBusRankingService(busRankingRepo),
		Reporter:      reporter,
		Jobs:          jobs,
	}

	if cfg.Realtime.Enabled {
		services.Live = startRealtime(ctx, cfg, insightService)
	}

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// startRealtime liga o LISTEN do banco ao hub; falha no listener só desativa /v1/live
func startRealtime(ctx context.Context, cfg *config.Config, refresher realtime.Refresher) http.Handler {
	listener := postgres.NewListener(cfg.Database.DSN, cfg.Realtime.Channel, domain.Collections)

	notifications, err := listener.Start(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao escutar alterações no banco, atualizações ao vivo desativadas")
		return nil
	}

	hub := realtime.NewHub(refresher, cfg.Realtime.Debounce)
	go hub.Run(ctx, notifications)

	return realtime.NewWebsocketHandler(hub, cfg.Server.AllowedOrigins)
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
