package fetching

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
	"github.com/casaalves/backoffice-api/pkg/log"
)

// Page é uma página de resultados devolvida pela função de busca
type Page[T any] struct {
	Items      []T
	Pagination domain.Pagination
}

type FetchFunc[P, T any] func(ctx context.Context, params P) (Page[T], error)

// State é o estado observável de uma listagem
type State[T any] struct {
	Items      []T               `json:"items"`
	Loading    bool              `json:"loading"`
	Pagination domain.Pagination `json:"pagination"`
	Err        string            `json:"error,omitempty"`
	// Superseded marca a resposta de uma busca descartada por outra mais nova
	Superseded bool `json:"superseded,omitempty"`
}

func defaultState[T any]() State[T] {
	return State[T]{
		Items:      []T{},
		Pagination: domain.DefaultPagination(),
	}
}

// Query mantém o estado de uma listagem paginada. Cada Fetch recebe um token
// sequencial e só o resultado do token mais recente é aplicado.
type Query[P, T any] struct {
	resource     string
	fetch        FetchFunc[P, T]
	notifier     notifying.Notifier
	errorMessage string

	seq atomic.Uint64

	mu    sync.Mutex
	state State[T]
}

func NewQuery[P, T any](resource string, fetch FetchFunc[P, T], notifier notifying.Notifier, errorMessage string) *Query[P, T] {
	return &Query[P, T]{
		resource:     resource,
		fetch:        fetch,
		notifier:     notifier,
		errorMessage: errorMessage,
		state:        defaultState[T](),
	}
}

// Fetch executa uma única busca. Devolve o estado após a conclusão e se o
// resultado foi aplicado; resultados de buscas superadas são descartados.
func (q *Query[P, T]) Fetch(ctx context.Context, params P) (State[T], bool) {
	token := q.seq.Add(1)

	q.mu.Lock()
	q.state.Loading = true
	q.mu.Unlock()

	page, err := q.fetch(ctx, params)

	q.mu.Lock()
	defer q.mu.Unlock()

	if latest := q.seq.Load(); token != latest {
		log.ForContext(ctx).WithFields(log.Fields{
			"resource": q.resource,
			"token":    token,
			"latest":   latest,
		}).Debug("Resultado de busca superada descartado")
		state := q.snapshotLocked()
		state.Superseded = true
		return state, false
	}

	q.state.Loading = false
	if err != nil {
		message := MessageOr(err, q.errorMessage)
		q.notifier.Error(ctx, message)
		q.state.Items = []T{}
		q.state.Pagination = domain.DefaultPagination()
		q.state.Err = message
		return q.snapshotLocked(), true
	}

	q.state.Items = page.Items
	if q.state.Items == nil {
		q.state.Items = []T{}
	}
	q.state.Pagination = page.Pagination
	q.state.Err = ""

	return q.snapshotLocked(), true
}

func (q *Query[P, T]) Snapshot() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// Reset restaura o estado inicial e invalida buscas em andamento
func (q *Query[P, T]) Reset() {
	q.seq.Add(1)

	q.mu.Lock()
	defer q.mu.Unlock()
	q.state = defaultState[T]()
}

func (q *Query[P, T]) snapshotLocked() State[T] {
	s := q.state
	s.Items = append([]T(nil), q.state.Items...)
	if s.Items == nil {
		s.Items = []T{}
	}
	return s
}

// serverMessager é implementado por erros que carregam a mensagem do backend
type serverMessager interface {
	ServerMessage() string
}

// MessageOr devolve a mensagem enviada pelo servidor ou o fallback
func MessageOr(err error, fallback string) string {
	var sm serverMessager
	if errors.As(err, &sm) {
		if msg := strings.TrimSpace(sm.ServerMessage()); msg != "" {
			return msg
		}
	}
	return fallback
}
