package selling

import (
	"context"
	"sync"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/fetching"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
	"github.com/casaalves/backoffice-api/pkg/money"
)

const (
	Resource  = "vendas"
	PageLimit = domain.DefaultLimit
)

type Backend interface {
	ListSales(ctx context.Context, query domain.SaleQuery) (casaalves.ListResult[domain.Sale], error)
	CreateSale(ctx context.Context, input domain.SaleInput) (casaalves.MutationResult[domain.Sale], error)
	UpdateSale(ctx context.Context, id int, input domain.SaleInput) (casaalves.MutationResult[domain.Sale], error)
	DeleteSale(ctx context.Context, id int) (casaalves.MutationResult[domain.Sale], error)
}

type (
	State   = fetching.State[domain.SaleView]
	Outcome = fetching.Outcome[domain.Sale, domain.SaleView]
)

// Preview é o total do dia exibido enquanto o formulário é preenchido
type Preview struct {
	Total     float64 `json:"totalDia"`
	Formatted string  `json:"totalDiaFormatado"`
}

// Page é a tela de fechamento de vendas de um usuário
type Page struct {
	backend  Backend
	notifier notifying.Notifier

	mu    sync.Mutex
	query domain.SaleQuery

	list   *fetching.Query[domain.SaleQuery, domain.SaleView]
	create *fetching.Mutation[domain.Sale]
	update *fetching.Mutation[domain.Sale]
	remove *fetching.Mutation[domain.Sale]
}

func NewPage(backend Backend, notifier notifying.Notifier) *Page {
	p := &Page{
		backend:  backend,
		notifier: notifier,
		query:    domain.SaleQuery{PageRequest: domain.PageRequest{Page: domain.DefaultPage, Limit: PageLimit}},
		create: fetching.NewMutation[domain.Sale](notifier, fetching.Messages{
			Success: "Venda cadastrada com sucesso!",
			Error:   "Erro ao cadastrar venda",
		}),
		update: fetching.NewMutation[domain.Sale](notifier, fetching.Messages{
			Success: "Venda atualizada com sucesso!",
			Error:   "Erro ao atualizar venda",
		}),
		remove: fetching.NewMutation[domain.Sale](notifier, fetching.Messages{
			Success: "Venda excluída com sucesso!",
			Error:   "Erro ao excluir venda",
		}),
	}
	p.list = fetching.NewQuery(Resource, p.fetch, notifier, "Erro ao buscar vendas")

	return p
}

func (p *Page) fetch(ctx context.Context, query domain.SaleQuery) (fetching.Page[domain.SaleView], error) {
	result, err := p.backend.ListSales(ctx, query)
	if err != nil {
		return fetching.Page[domain.SaleView]{}, err
	}

	views := make([]domain.SaleView, 0, len(result.Items))
	for _, s := range result.Items {
		views = append(views, domain.NewSaleView(s))
	}

	return fetching.Page[domain.SaleView]{Items: views, Pagination: result.Pagination}, nil
}

func (p *Page) Load(ctx context.Context, query domain.SaleQuery) State {
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

func (p *Page) Query() domain.SaleQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

func (p *Page) State() State {
	return p.list.Snapshot()
}

// Preview soma as formas de pagamento sem chamar o backend
func (p *Page) Preview(input domain.SaleInput) Preview {
	total := input.Total()
	return Preview{Total: total, Formatted: money.Format(total)}
}

func (p *Page) Create(ctx context.Context, input domain.SaleInput) Outcome {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return fetching.Reject[domain.Sale, domain.SaleView](ctx, p.notifier, err)
	}

	result, err := p.create.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.Sale], error) {
		return p.backend.CreateSale(ctx, input)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

func (p *Page) Update(ctx context.Context, id int, input domain.SaleInput) Outcome {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return fetching.Reject[domain.Sale, domain.SaleView](ctx, p.notifier, err)
	}

	result, err := p.update.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.Sale], error) {
		return p.backend.UpdateSale(ctx, id, input)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

func (p *Page) Delete(ctx context.Context, id int) Outcome {
	result, err := p.remove.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.Sale], error) {
		return p.backend.DeleteSale(ctx, id)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}
