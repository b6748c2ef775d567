package auditing

import (
	"context"
	"sync"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/fetching"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
)

const (
	Resource  = "logs"
	PageLimit = domain.DefaultLimit
)

type Backend interface {
	ListLogs(ctx context.Context, query domain.LogQuery) (casaalves.ListResult[domain.LogEntry], error)
	ExportLogs(ctx context.Context, filters domain.LogFilters) ([]byte, error)
}

type State = fetching.State[domain.LogEntry]

// Page é a consulta aos logs de auditoria, restrita a administradores
type Page struct {
	backend Backend

	mu    sync.Mutex
	query domain.LogQuery

	list   *fetching.Query[domain.LogQuery, domain.LogEntry]
	export *fetching.Export
}

func NewPage(backend Backend, notifier notifying.Notifier, clock fetching.Clock) *Page {
	p := &Page{
		backend: backend,
		query:   domain.LogQuery{PageRequest: domain.PageRequest{Page: domain.DefaultPage, Limit: PageLimit}},
		export: fetching.NewExport(Resource, notifier, fetching.Messages{
			Success: "Logs exportados com sucesso!",
			Error:   "Erro ao exportar logs",
		}, clock),
	}
	p.list = fetching.NewQuery(Resource, p.fetch, notifier, "Erro ao buscar logs")

	return p
}

func (p *Page) fetch(ctx context.Context, query domain.LogQuery) (fetching.Page[domain.LogEntry], error) {
	result, err := p.backend.ListLogs(ctx, query)
	if err != nil {
		return fetching.Page[domain.LogEntry]{}, err
	}
	return fetching.Page[domain.LogEntry]{Items: result.Items, Pagination: result.Pagination}, nil
}

func (p *Page) Load(ctx context.Context, query domain.LogQuery) State {
	query.PageRequest = query.PageRequest.WithDefaults(PageLimit)

	p.mu.Lock()
	p.query = query
	p.mu.Unlock()

	state, _ := p.list.Fetch(ctx, query)
	return state
}

func (p *Page) Query() domain.LogQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

func (p *Page) State() State {
	return p.list.Snapshot()
}

func (p *Page) Export(ctx context.Context, filters domain.LogFilters) (*domain.Download, error) {
	return p.export.Run(ctx, func(ctx context.Context) ([]byte, error) {
		return p.backend.ExportLogs(ctx, filters)
	})
}
