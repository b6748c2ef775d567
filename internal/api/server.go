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

	"github.com/casaalves/backoffice-api/internal/api/handler"
	"github.com/casaalves/backoffice-api/internal/api/handler/router"
	"github.com/casaalves/backoffice-api/internal/config"
	"github.com/casaalves/backoffice-api/internal/usecases/authenticating"
	"github.com/casaalves/backoffice-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Dependencies reúne os serviços usados pelas rotas
type Dependencies struct {
	Authenticator authenticating.Authenticator
	Workspaces    handler.Workspaces
	Archive       handler.ArchiveReader
	Exports       ExportStore
	CronJobs      handler.CronJobServices
}

// ExportStore grava e lista o histórico de exportações
type ExportStore interface {
	handler.ExportRecorder
	handler.ExportHistory
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, deps Dependencies) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Session()...),
		router.WithRoutes(handler.Dashboard(deps.Workspaces, deps.Archive, deps.Exports)...),
		router.WithRoutes(handler.Expenses(deps.Workspaces, deps.Exports)...),
		router.WithRoutes(handler.Invoices(deps.Workspaces, deps.Exports)...),
		router.WithRoutes(handler.Sales(deps.Workspaces)...),
		router.WithRoutes(handler.Users(deps.Workspaces)...),
		router.WithRoutes(handler.Logs(deps.Workspaces, deps.Exports)...),
		router.WithRoutes(handler.Exports(deps.Exports)...),
		router.WithRoutes(handler.CronJobs(deps.CronJobs)...),
	)

	logrus.WithField("routes", len(rt.Routes())).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
		middleware.AuthMiddleware(deps.Authenticator),
		middleware.NotificationsMiddleware(),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	if deps.Authenticator == nil || deps.Workspaces == nil {
		return nil, fmt.Errorf("api: autenticador e workspaces são obrigatórios")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, deps),
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

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

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
