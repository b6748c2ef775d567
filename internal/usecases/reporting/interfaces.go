package reporting

import (
	"context"

	"github.com/casaalves/backoffice-api/internal/domain"
)

// Backend obtém o snapshot mensal calculado pelo backend Casa Alves
type Backend interface {
	GetDashboard(ctx context.Context, filters domain.DashboardFilters) (*domain.Dashboard, error)
}

// SnapshotReader lê os snapshots arquivados localmente
type SnapshotReader interface {
	GetByPeriod(ctx context.Context, period string) (*domain.DashboardSnapshot, error)
	ListPeriods(ctx context.Context) ([]string, error)
}
