package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/casaalves/backoffice-api/internal/config"
)

// Sweeper remove workspaces ociosos
type Sweeper interface {
	Sweep(idle time.Duration) int
	Len() int
}

// WorkspaceSweepService libera periodicamente os workspaces de usuários inativos
type WorkspaceSweepService struct {
	scheduler         *gocron.Scheduler
	sweeper           Sweeper
	cronSchedule      string
	idleTimeout       time.Duration
	mu                sync.Mutex
	lastSweepAt       time.Time
	lastSweepRemoved  int
	totalSweepRemoved int
}

func NewWorkspaceSweepService(sweeper Sweeper, appConfig *config.Config) *WorkspaceSweepService {
	idle := appConfig.Workspace.IdleTimeout
	if idle <= 0 {
		idle = 30 * time.Minute
	}

	return &WorkspaceSweepService{
		scheduler:    gocron.NewScheduler(time.Local),
		sweeper:      sweeper,
		cronSchedule: appConfig.Workspace.SweepSchedule,
		idleTimeout:  idle,
	}
}

func (s *WorkspaceSweepService) Start(ctx context.Context) error {
	logrus.WithFields(logrus.Fields{
		"cron":         s.cronSchedule,
		"idle_timeout": s.idleTimeout.String(),
	}).Info("Iniciando limpeza de workspaces ociosos")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(s.sweep)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de workspaces: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.scheduler.Stop()
	}()

	return nil
}

func (s *WorkspaceSweepService) sweep() {
	removed := s.sweeper.Sweep(s.idleTimeout)

	s.mu.Lock()
	s.lastSweepAt = time.Now()
	s.lastSweepRemoved = removed
	s.totalSweepRemoved += removed
	s.mu.Unlock()

	if removed > 0 {
		logrus.WithFields(logrus.Fields{
			"removed": removed,
			"active":  s.sweeper.Len(),
		}).Info("Workspaces ociosos removidos")
	}
}

// TriggerManualSync executa a limpeza imediatamente
func (s *WorkspaceSweepService) TriggerManualSync(_ context.Context) {
	logrus.Info("Iniciando limpeza manual de workspaces")
	s.sweep()
}

func (s *WorkspaceSweepService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"sync_cron":          s.cronSchedule,
		"idle_timeout":       s.idleTimeout.String(),
		"active_workspaces":  s.sweeper.Len(),
		"last_sweep_at":      s.lastSweepAt,
		"last_sweep_removed": s.lastSweepRemoved,
		"total_removed":      s.totalSweepRemoved,
	}
}
