package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/infrastructure/repository"
	"github.com/casaalves/backoffice-api/internal/config"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/reporting"
)

// DashboardArchiveConfig representa a configuração do arquivamento de dashboards
type DashboardArchiveConfig struct {
	CronSchedule      string
	MonthLookBack     int
	MaxConcurrentJobs int
	RetentionMonths   int
	SyncEnabled       bool
	ServiceToken      string
}

// DashboardArchiveService guarda localmente o snapshot mensal do dashboard
type DashboardArchiveService struct {
	scheduler           *gocron.Scheduler
	config              DashboardArchiveConfig
	backend             reporting.Backend
	snapshotRepo        repository.DashboardSnapshotRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncArchived    int
	lastSyncFailed      int
}

func NewDashboardArchiveService(
	backend reporting.Backend,
	snapshotRepo repository.DashboardSnapshotRepository,
	appConfig *config.Config,
) *DashboardArchiveService {
	archiveConfig := DashboardArchiveConfig{
		CronSchedule:      appConfig.DashboardArchive.CronSchedule,
		MonthLookBack:     appConfig.DashboardArchive.MonthLookBack,
		MaxConcurrentJobs: appConfig.DashboardArchive.MaxConcurrentJobs,
		RetentionMonths:   appConfig.DashboardArchive.RetentionMonths,
		SyncEnabled:       appConfig.DashboardArchive.Enabled,
		ServiceToken:      appConfig.CasaAlves.ServiceToken,
	}

	if archiveConfig.MonthLookBack <= 0 {
		archiveConfig.MonthLookBack = 1
	}
	if archiveConfig.MaxConcurrentJobs <= 0 {
		archiveConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       archiveConfig.CronSchedule,
		"month_lookback":      archiveConfig.MonthLookBack,
		"max_concurrent_jobs": archiveConfig.MaxConcurrentJobs,
		"retention_months":    archiveConfig.RetentionMonths,
		"sync_enabled":        archiveConfig.SyncEnabled,
	}).Info("Configuração do arquivamento de dashboards carregada")

	return &DashboardArchiveService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       archiveConfig,
		backend:      backend,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *DashboardArchiveService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Arquivamento de dashboards desabilitado por configuração")
		return nil
	}

	if s.config.ServiceToken == "" {
		logrus.Warn("CASA_ALVES_SERVICE_TOKEN não configurado, o backend pode recusar o arquivamento")
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de arquivamento de dashboards")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.archiveDashboards(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar arquivamento de dashboards: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de arquivamento de dashboards")
		s.scheduler.Stop()
	}()

	return nil
}

// periods devolve o mês atual e os MonthLookBack-1 meses anteriores
func (s *DashboardArchiveService) periods() []domain.DashboardFilters {
	now := s.now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	filters := make([]domain.DashboardFilters, 0, s.config.MonthLookBack)
	for i := 0; i < s.config.MonthLookBack; i++ {
		month := firstOfMonth.AddDate(0, -i, 0)
		filters = append(filters, domain.DashboardFilters{Month: int(month.Month()), Year: month.Year()})
	}

	return filters
}

func (s *DashboardArchiveService) archiveDashboards(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Arquivamento de dashboards já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	var archived, failed atomic.Int32

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncArchived = int(archived.Load())
		s.lastSyncFailed = int(failed.Load())
		s.syncMutex.Unlock()
	}()

	ctx = casaalves.WithToken(ctx, s.config.ServiceToken)

	periods := s.periods()
	logrus.WithField("periods", len(periods)).Info("Iniciando arquivamento de dashboards")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, filters := range periods {
		g.Go(func() error {
			if err := s.archivePeriod(gctx, filters); err != nil {
				failed.Add(1)
				logrus.WithError(err).WithField("period", filters.Period()).Error("Erro ao arquivar dashboard")
				return nil
			}
			archived.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	if s.config.RetentionMonths > 0 {
		removed, err := s.snapshotRepo.DeleteOlderThan(ctx, s.config.RetentionMonths, s.now())
		if err != nil {
			logrus.WithError(err).Error("Erro ao remover snapshots antigos")
		} else if removed > 0 {
			logrus.WithField("removed", removed).Info("Snapshots antigos removidos")
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration": s.now().Sub(startTime).String(),
		"archived": archived.Load(),
		"failed":   failed.Load(),
	}).Info("Arquivamento de dashboards concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()
}

func (s *DashboardArchiveService) archivePeriod(ctx context.Context, filters domain.DashboardFilters) error {
	dashboard, err := s.backend.GetDashboard(ctx, filters)
	if err != nil {
		return fmt.Errorf("erro ao obter dashboard: %w", err)
	}

	if dashboard == nil {
		return fmt.Errorf("nenhum dashboard retornado")
	}

	snapshot := &domain.DashboardSnapshot{
		Period:    filters.Period(),
		Month:     filters.Month,
		Year:      filters.Year,
		Dashboard: *dashboard,
		FetchedAt: s.now(),
	}

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshot); err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}

	logrus.WithField("period", snapshot.Period).Debug("Snapshot de dashboard salvo")
	return nil
}

// TriggerManualSync inicia manualmente um arquivamento
func (s *DashboardArchiveService) TriggerManualSync(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Arquivamento de dashboards já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando arquivamento manual de dashboards")
	go s.archiveDashboards(context.WithoutCancel(ctx))
}

// GetStatus retorna o status atual do arquivamento
func (s *DashboardArchiveService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_lookback":         s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_archived":     s.lastSyncArchived,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
