package administering

import (
	"context"
	"sync"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/fetching"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
)

const (
	Resource  = "usuarios"
	PageLimit = domain.DefaultLimit
)

type Backend interface {
	ListUsers(ctx context.Context, query domain.UserQuery) (casaalves.ListResult[domain.User], error)
	RegisterUser(ctx context.Context, input domain.UserInput) (casaalves.MutationResult[domain.User], error)
	UpdateUser(ctx context.Context, id int, input domain.UserInput) (casaalves.MutationResult[domain.User], error)
	DeleteUser(ctx context.Context, id int) (casaalves.MutationResult[domain.User], error)
}

type (
	State   = fetching.State[domain.UserView]
	Outcome = fetching.Outcome[domain.User, domain.UserView]
)

// Page é a administração de usuários, restrita a administradores
type Page struct {
	backend  Backend
	notifier notifying.Notifier

	mu    sync.Mutex
	query domain.UserQuery

	list   *fetching.Query[domain.UserQuery, domain.UserView]
	create *fetching.Mutation[domain.User]
	update *fetching.Mutation[domain.User]
	remove *fetching.Mutation[domain.User]
}

func NewPage(backend Backend, notifier notifying.Notifier) *Page {
	p := &Page{
		backend:  backend,
		notifier: notifier,
		query:    domain.UserQuery{PageRequest: domain.PageRequest{Page: domain.DefaultPage, Limit: PageLimit}},
		create: fetching.NewMutation[domain.User](notifier, fetching.Messages{
			Success:       "Usuário criado com sucesso!",
			Error:         "Erro ao criar usuário",
			ServerSuccess: true,
		}),
		update: fetching.NewMutation[domain.User](notifier, fetching.Messages{
			Success:       "Usuário atualizado com sucesso!",
			Error:         "Erro ao atualizar usuário",
			ServerSuccess: true,
		}),
		remove: fetching.NewMutation[domain.User](notifier, fetching.Messages{
			Success:       "Usuário excluído com sucesso!",
			Error:         "Erro ao excluir usuário",
			ServerSuccess: true,
		}),
	}
	p.list = fetching.NewQuery(Resource, p.fetch, notifier, "Erro ao buscar usuários")

	return p
}

func (p *Page) fetch(ctx context.Context, query domain.UserQuery) (fetching.Page[domain.UserView], error) {
	result, err := p.backend.ListUsers(ctx, query)
	if err != nil {
		return fetching.Page[domain.UserView]{}, err
	}

	views := make([]domain.UserView, 0, len(result.Items))
	for _, u := range result.Items {
		views = append(views, domain.NewUserView(u))
	}

	return fetching.Page[domain.UserView]{Items: views, Pagination: result.Pagination}, nil
}

func (p *Page) Load(ctx context.Context, query domain.UserQuery) State {
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

func (p *Page) Query() domain.UserQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

func (p *Page) State() State {
	return p.list.Snapshot()
}

func (p *Page) Create(ctx context.Context, input domain.UserInput) Outcome {
	input.Normalize()
	if err := input.Validate(true); err != nil {
		return fetching.Reject[domain.User, domain.UserView](ctx, p.notifier, err)
	}

	result, err := p.create.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.User], error) {
		return p.backend.RegisterUser(ctx, input)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

// Update mantém a senha atual quando nenhuma nova é informada
func (p *Page) Update(ctx context.Context, id int, input domain.UserInput) Outcome {
	input.Normalize()
	if err := input.Validate(false); err != nil {
		return fetching.Reject[domain.User, domain.UserView](ctx, p.notifier, err)
	}

	result, err := p.update.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.User], error) {
		return p.backend.UpdateUser(ctx, id, input)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}

func (p *Page) Delete(ctx context.Context, id int) Outcome {
	result, err := p.remove.Run(ctx, func(ctx context.Context) (casaalves.MutationResult[domain.User], error) {
		return p.backend.DeleteUser(ctx, id)
	})

	return fetching.Complete(result, err, func() State { return p.Refresh(ctx) })
}
