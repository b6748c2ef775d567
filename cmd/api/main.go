package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/casaalves/backoffice-api/infrastructure/database/postgres"
	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/infrastructure/repository"
	"github.com/casaalves/backoffice-api/internal/api"
	"github.com/casaalves/backoffice-api/internal/api/handler"
	"github.com/casaalves/backoffice-api/internal/config"
	"github.com/casaalves/backoffice-api/internal/scheduler"
	"github.com/casaalves/backoffice-api/internal/usecases/authenticating"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
	"github.com/casaalves/backoffice-api/internal/usecases/reporting"
	"github.com/casaalves/backoffice-api/internal/usecases/workspace"
	"github.com/casaalves/backoffice-api/pkg/log"
)

func main() {
	chdirToSource()
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !log.Configure(cfg.App.LogLevel) {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	snapshotRepo := repository.NewDashboardSnapshotRepository(pgConn)
	exportRepo := repository.NewExportRecordRepository(pgConn)

	client := casaalves.NewClient(cfg.CasaAlves)
	authenticator := authenticating.NewService(cfg)

	workspaces := workspace.NewRegistry(client, notifying.Default(), time.Now)
	archive := reporting.NewArchive(snapshotRepo)

	dashboardArchiveService := scheduler.NewDashboardArchiveService(client, snapshotRepo, cfg)
	workspaceSweepService := scheduler.NewWorkspaceSweepService(workspaces, cfg)

	// Inicia os agendadores em background
	if err := dashboardArchiveService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de arquivamento de dashboards")
	} else {
		logrus.Info("Agendador de arquivamento de dashboards iniciado com sucesso")
	}

	if err := workspaceSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a limpeza de workspaces")
	} else {
		logrus.Info("Limpeza de workspaces iniciada com sucesso")
	}

	server, err := api.New(cfg, api.Dependencies{
		Authenticator: authenticator,
		Workspaces:    workspaces,
		Archive:       archive,
		Exports:       exportRepo,
		CronJobs: handler.CronJobServices{
			DashboardArchive: dashboardArchiveService,
			WorkspaceSweep:   workspaceSweepService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do binário ser encontrado em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
