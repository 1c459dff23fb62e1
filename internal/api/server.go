package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/api/handler"
	"github.com/vfg2006/transport-admin-api/internal/api/handler/router"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/usecases/authenticating"
	"github.com/vfg2006/transport-admin-api/internal/usecases/configuring"
	"github.com/vfg2006/transport-admin-api/internal/usecases/fleet"
	"github.com/vfg2006/transport-admin-api/internal/usecases/insighting"
	"github.com/vfg2006/transport-admin-api/internal/usecases/ranking"
	"github.com/vfg2006/transport-admin-api/internal/usecases/reporting"
	"github.com/vfg2006/transport-admin-api/internal/usecases/shipping"
	"github.com/vfg2006/transport-admin-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa as dependências expostas pela API
type Services struct {
	DB            handler.Pinger
	Authenticator authenticating.Authenticator
	Insighter     insighting.Insighter
	Fleet         fleet.FleetService
	Shipping      shipping.ShippingService
	Settings      configuring.SettingsService
	Ranking       ranking.RankingService
	Reporter      reporting.Reporter
	Jobs          handler.CronJobs
	// Live é opcional; sem ele /v1/live não é registrada
	Live http.Handler
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, errors.New("autenticador não configurado")
	}

	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Authentication(services.Authenticator, cfg.LoginLimit)...),
		router.WithRoutes(handler.User(services.Authenticator)...),
		router.WithRoutes(handler.History(services.Insighter)...),
		router.WithRoutes(handler.Fleet(services.Fleet)...),
		router.WithRoutes(handler.Parcels(services.Shipping)...),
		router.WithRoutes(handler.Settings(services.Settings)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.BusRanking(services.Ranking)...),
		router.WithRoutes(handler.Cron(services.Jobs)...),
	}
	if services.Live != nil {
		configs = append(configs, router.WithRoutes(handler.Live(services.Live)...))
	}

	rt := router.New(configs...)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Handler expõe a cadeia completa para testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
