package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-profile-api/infrastructure/database/postgres"
	"github.com/vfg2006/customer-profile-api/infrastructure/repository"
	"github.com/vfg2006/customer-profile-api/internal/api"
	"github.com/vfg2006/customer-profile-api/internal/config"
	"github.com/vfg2006/customer-profile-api/internal/scheduler"
	"github.com/vfg2006/customer-profile-api/internal/usecases/profiling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	sessionRepo := repository.NewSessionRepository(pgConn)
	recordRepo := repository.NewProfileRecordRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	categoryRepo := repository.NewCategoryRepository(pgConn)

	profileService := profiling.NewService(cfg, sessionRepo, recordRepo, productRepo, categoryRepo)

	resolutionAuditService := scheduler.NewResolutionAuditService(sessionRepo, profileService, cfg)
	if err := resolutionAuditService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auditoria de referências")
	}

	server, err := api.New(cfg, pgConn, profileService, resolutionAuditService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.WithFields(logrus.Fields{
		"max_open_conns": dbConfig.MaxOpenConns,
		"query_timeout":  dbConfig.QueryTimeout.String(),
	}).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
