package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-profile-api/internal/api/handler"
	"github.com/vfg2006/customer-profile-api/internal/api/handler/router"
	"github.com/vfg2006/customer-profile-api/internal/config"
	"github.com/vfg2006/customer-profile-api/internal/scheduler"
	"github.com/vfg2006/customer-profile-api/internal/usecases/profiling"
	"github.com/vfg2006/customer-profile-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	db handler.Pinger,
	profiler profiling.Profiler,
	resolutionAuditService *scheduler.ResolutionAuditService,
) (*Server, error) {
	var cronServices handler.CronJobServices
	if resolutionAuditService != nil {
		cronServices.ResolutionAuditService = resolutionAuditService
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Profile(profiler)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
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
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
