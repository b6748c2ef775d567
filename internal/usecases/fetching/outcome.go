package fetching

import (
	"context"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
)

// Outcome é o resultado de uma mutação conduzida por uma página. Falhas não
// interrompem a página: o usuário já foi notificado e Err apenas informa o
// chamador, que decide o status da resposta.
type Outcome[T, V any] struct {
	Data *T        `json:"data,omitempty"`
	List *State[V] `json:"list,omitempty"`
	Err  error     `json:"-"`
}

func (o Outcome[T, V]) Failed() bool {
	return o.Err != nil
}

// Complete recarrega a listagem após uma mutação bem sucedida
func Complete[T, V any](result casaalves.MutationResult[T], err error, refresh func() State[V]) Outcome[T, V] {
	if err != nil {
		return Outcome[T, V]{Err: err}
	}

	list := refresh()
	return Outcome[T, V]{Data: result.Data, List: &list}
}

// Reject notifica um payload recusado antes de chegar ao backend
func Reject[T, V any](ctx context.Context, notifier notifying.Notifier, err error) Outcome[T, V] {
	notifier.Error(ctx, err.Error())
	return Outcome[T, V]{Err: err}
}
