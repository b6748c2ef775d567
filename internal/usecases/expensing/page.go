package expensing

import (
	"context"
	"sync"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/fetching"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
)

const (
	Resource  = "despesas"
	PageLimit = 50
)

// Backend são os endpoints de despesas do backend
type Backend interface {
	ListExpenses(ctx context.Context, query domain.ExpenseQuery) (casaalves.ListResult[domain.Expense], error)
	CreateExpense(ctx context.Context, input domain.ExpenseInput) (casaalves.MutationResult[domain.Expense], error)
	UpdateExpense(ctx context.Context, id int, input domain.ExpenseInput) (casaalves.MutationResult[domain.Expense], error)
	DeleteExpense(ctx context.Context, id int) (casaalves.MutationResult[domain.Expense], error)
	ExportExpenses(ctx context.Context, filters domain.ExpenseFilters) ([]byte, error)
}

type (
	State   = fetching.State[domain.ExpenseView]
	Outcome = fetching.Outcome[domain.Expense, domain.ExpenseView]
)

// Page é a tela de despesas de um usuário: guarda filtros e paginação e
// recarrega a listagem após cada mutação.
type Page struct {
	backend  Backend
	notifier notifying.Notifier

	mu    sync.Mutex
	query domain.ExpenseQuery

	list   *fetching.Query[domain.ExpenseQuery, domain.ExpenseView]
	create *fetching.Mutation[domain.Expense]
	update *fetching.Mutation[domain.Expense]
	remove *fetching.Mutation[domain.Expense]
	export *fetching.Export
}

func NewPage(backend Backend, notifier notifying.Notifier, clock fetching.Clock) *Page {
	p := &Page{
		backend:  backend,
		notifier: notifier,
		query:    domain.ExpenseQuery{PageRequest: domain.PageRequest{Page: domain.DefaultPage, Limit: PageLimit}},
		create: fetching.NewMutation[domain.Expense](notifier, fetching.Messages{
			Success: "Despesa cadastrada com sucesso!",
			Error:   "Erro ao cadastrar despesa",
		}),
		update: fetching.NewMutation[domain.Expense](notifier, fetching.Messages{
			Success: "Despesa atualizada com sucesso!",
			Error:   "Erro ao atualizar despesa",
		}),
		remove: fetching.NewMutation[domain.Expense](notifier, fetching.Messages{
			Success: "Despesa excluída com sucesso!",
			Error:   "Erro ao excluir despesa",
		}),
		export: fetching.NewExport(Resource, notifier, fetching.Messages{
			Success: "Despesas exportadas com sucesso!",
			Error:   "Erro ao exportar despesas",
		}, clock),
	}
	p.list = fetching.NewQuery(Resource, p.fetch, notifier, "Erro ao buscar despesas")

	return p
}

func (p *Page) fetch(ctx context.Context, query domain.ExpenseQuery) (fetching.Page[domain.ExpenseView], error) {
	result, err := p.backend.ListExpenses(ctx, query)
	if err != nil {
		return fetching.Page[domain.ExpenseView]{}, err
	}

	views := make([]domain.ExpenseView, 0, len(result.Items))
	for _, e := range result.Items {
		views = append(views, domain.NewExpenseView(e))
	}

	return fetching.Page[domain.ExpenseView]{Items: views, Pagination: result.Pagination}, nil
}

// Load aplica os filtros e a página informados e busca a listagem
func (p *Page) Load(ctx context.Context, query domain.ExpenseQuery) State {
	query.PageRequest = query.PageRequest.WithDefaults(PageLimit)

	p.mu.Lock()
	p.query = query
	p.mu.Unlock()

	state, _ := p.list.Fetch(ctx, query)
	return state
}

// Refresh busca novamente com os filtros atuais
func (p *Page) Refresh(ctx context.Context) State {
	state, _ := p.list.Fetch(ctx, p.Query())
	return state
}

func (p *Page) Query() domain.ExpenseQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

func (p *Page) State() State {
	return p.list.Snapshot()
}

func (p *Page) Create(ctx context.Context, input domain.ExpenseInput) Outcome {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return fetching.Reject[domain.Expense, domain.ExpenseView](ctx, p.notifier, err)
	}

	result, err := p.create.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.Expense], error) {
		return p.backend.CreateExpense(ctx, input)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

func (p *Page) Update(ctx context.Context, id int, input domain.ExpenseInput) Outcome {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return fetching.Reject[domain.Expense, domain.ExpenseView](ctx, p.notifier, err)
	}

	result, err := p.update.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.Expense], error) {
		return p.backend.UpdateExpense(ctx, id, input)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

func (p *Page) Delete(ctx context.Context, id int) Outcome {
	result, err := p.remove.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.Expense], error) {
		return p.backend.DeleteExpense(ctx, id)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

// Export exporta as despesas com os filtros informados
func (p *Page) Export(ctx context.Context, filters domain.ExpenseFilters) (*domain.Download, error) {
	return p.export.Run(ctx, func(ctx context.Context) ([]byte, error) {
		return p.backend.ExportExpenses(ctx, filters)
	})
}
