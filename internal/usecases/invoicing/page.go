package invoicing

import (
	"context"
	"sync"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/fetching"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
)

const (
	Resource  = "duplicatas"
	PageLimit = 50
)

type Backend interface {
	ListInvoices(ctx context.Context, query domain.InvoiceQuery) (casaalves.ListResult[domain.Invoice], error)
	CreateInvoice(ctx context.Context, input domain.InvoiceInput) (casaalves.MutationResult[domain.Invoice], error)
	UpdateInvoice(ctx context.Context, id int, input domain.InvoiceInput) (casaalves.MutationResult[domain.Invoice], error)
	DeleteInvoice(ctx context.Context, id int) (casaalves.MutationResult[domain.Invoice], error)
	ExportInvoices(ctx context.Context, filters domain.InvoiceFilters) ([]byte, error)
}

type (
	State   = fetching.State[domain.InvoiceView]
	Outcome = fetching.Outcome[domain.Invoice, domain.InvoiceView]
)

// Page é a tela de duplicatas de um usuário
type Page struct {
	backend  Backend
	notifier notifying.Notifier

	mu    sync.Mutex
	query domain.InvoiceQuery

	list   *fetching.Query[domain.InvoiceQuery, domain.InvoiceView]
	create *fetching.Mutation[domain.Invoice]
	update *fetching.Mutation[domain.Invoice]
	remove *fetching.Mutation[domain.Invoice]
	export *fetching.Export
}

func NewPage(backend Backend, notifier notifying.Notifier, clock fetching.Clock) *Page {
	p := &Page{
		backend:  backend,
		notifier: notifier,
		query:    domain.InvoiceQuery{PageRequest: domain.PageRequest{Page: domain.DefaultPage, Limit: PageLimit}},
		create: fetching.NewMutation[domain.Invoice](notifier, fetching.Messages{
			Success: "Duplicata cadastrada com sucesso!",
			Error:   "Erro ao cadastrar duplicata",
		}),
		update: fetching.NewMutation[domain.Invoice](notifier, fetching.Messages{
			Success: "Duplicata atualizada com sucesso!",
			Error:   "Erro ao atualizar duplicata",
		}),
		remove: fetching.NewMutation[domain.Invoice](notifier, fetching.Messages{
			Success: "Duplicata excluída com sucesso!",
			Error:   "Erro ao excluir duplicata",
		}),
		export: fetching.NewExport(Resource, notifier, fetching.Messages{
			Success: "Duplicatas exportadas com sucesso!",
			Error:   "Erro ao exportar duplicatas",
		}, clock),
	}
	p.list = fetching.NewQuery(Resource, p.fetch, notifier, "Erro ao buscar duplicatas")

	return p
}

func (p *Page) fetch(ctx context.Context, query domain.InvoiceQuery) (fetching.Page[domain.InvoiceView], error) {
	result, err := p.backend.ListInvoices(ctx, query)
	if err != nil {
		return fetching.Page[domain.InvoiceView]{}, err
	}

	views := make([]domain.InvoiceView, 0, len(result.Items))
	for _, i := range result.Items {
		views = append(views, domain.NewInvoiceView(i))
	}

	return fetching.Page[domain.InvoiceView]{Items: views, Pagination: result.Pagination}, nil
}

func (p *Page) Load(ctx context.Context, query domain.InvoiceQuery) State {
	query.PageRequest = query.PageRequest.WithDefaults(PageLimit)

	p.mu.Lock()
	p.query = query
	p.mu.Unlock()

	state, _ := p.list.Fetch(ctx, query)
	return state
}

func (p *Page) Refresh(ctx context.Context) State {
	state, _ := p.list.Fetch(ctx, p.Query())
	return state
}

func (p *Page) Query() domain.InvoiceQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

func (p *Page) State() State {
	return p.list.Snapshot()
}

// Create envia o documento do fornecedor sem máscara
func (p *Page) Create(ctx context.Context, input domain.InvoiceInput) Outcome {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return fetching.Reject[domain.Invoice, domain.InvoiceView](ctx, p.notifier, err)
	}

	result, err := p.create.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.Invoice], error) {
		return p.backend.CreateInvoice(ctx, input)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

func (p *Page) Update(ctx context.Context, id int, input domain.InvoiceInput) Outcome {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return fetching.Reject[domain.Invoice, domain.InvoiceView](ctx, p.notifier, err)
	}

	result, err := p.update.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.Invoice], error) {
		return p.backend.UpdateInvoice(ctx, id, input)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

func (p *Page) Delete(ctx context.Context, id int) Outcome {
	result, err := p.remove.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.Invoice], error) {
		return p.backend.DeleteInvoice(ctx, id)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

func (p *Page) Export(ctx context.Context, filters domain.InvoiceFilters) (*domain.Download, error) {
	return p.export.Run(ctx, func(ctx context.Context) ([]byte, error) {
		return p.backend.ExportInvoices(ctx, filters)
	})
}
