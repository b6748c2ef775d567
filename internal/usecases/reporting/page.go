package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/fetching"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
)

const Resource = "dashboard"

type State = fetching.ValueState[domain.DashboardView]

// Page é o dashboard mensal de um usuário
type Page struct {
	backend Backend
	now     fetching.Clock

	mu      sync.Mutex
	filters domain.DashboardFilters

	loader *fetching.Loader[domain.DashboardFilters, domain.DashboardView]
	export *fetching.Export
}

func NewPage(backend Backend, notifier notifying.Notifier, clock fetching.Clock) *Page {
	if clock == nil {
		clock = time.Now
	}

	p := &Page{
		backend: backend,
		now:     clock,
		export: fetching.NewExport(Resource, notifier, fetching.Messages{
			Success: "Dados do dashboard exportados com sucesso!",
			Error:   "Erro ao exportar dados do dashboard",
		}, clock),
	}
	p.loader = fetching.NewLoader(Resource, p.load, notifier, "Erro ao buscar dados do dashboard")

	return p
}

func (p *Page) load(ctx context.Context, filters domain.DashboardFilters) (*domain.DashboardView, error) {
	dashboard, err := p.backend.GetDashboard(ctx, filters)
	if err != nil {
		return nil, err
	}

	view := BuildView(*dashboard)
	return &view, nil
}

// withDefaults usa o mês corrente quando mês ou ano não são informados
func (p *Page) withDefaults(filters domain.DashboardFilters) domain.DashboardFilters {
	now := p.now()
	if filters.Month <= 0 || filters.Month > 12 {
		filters.Month = int(now.Month())
	}
	if filters.Year <= 0 {
		filters.Year = now.Year()
	}
	return filters
}

func (p *Page) Load(ctx context.Context, filters domain.DashboardFilters) State {
	filters = p.withDefaults(filters)

	p.mu.Lock()
	p.filters = filters
	p.mu.Unlock()

	state, _ := p.loader.Load(ctx, filters)
	return state
}

func (p *Page) Filters() domain.DashboardFilters {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filters
}

func (p *Page) State() State {
	return p.loader.Snapshot()
}

// Export busca o snapshot do período e exporta a série diária em CSV
func (p *Page) Export(ctx context.Context, filters domain.DashboardFilters) (*domain.Download, error) {
	filters = p.withDefaults(filters)

	return p.export.Run(ctx, func(ctx context.Context) ([]byte, error) {
		view, err := p.load(ctx, filters)
		if err != nil {
			return nil, err
		}
		return DailyCSV(view.Daily)
	})
}
