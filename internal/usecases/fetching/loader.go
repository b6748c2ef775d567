package fetching

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
	"github.com/casaalves/backoffice-api/pkg/log"
)

type LoadFunc[P, T any] func(ctx context.Context, params P) (*T, error)

// ValueState é o estado de um recurso de valor único, como o dashboard
type ValueState[T any] struct {
	Data    *T     `json:"data"`
	Loading bool   `json:"loading"`
	Err     string `json:"error,omitempty"`

	Superseded bool `json:"superseded,omitempty"`
}

// Loader segue as mesmas regras de Query para um único valor: falhas zeram o
// valor e resultados superados são descartados.
type Loader[P, T any] struct {
	resource     string
	load         LoadFunc[P, T]
	notifier     notifying.Notifier
	errorMessage string

	seq atomic.Uint64

	mu    sync.Mutex
	state ValueState[T]
}

func NewLoader[P, T any](resource string, load LoadFunc[P, T], notifier notifying.Notifier, errorMessage string) *Loader[P, T] {
	return &Loader[P, T]{
		resource:     resource,
		load:         load,
		notifier:     notifier,
		errorMessage: errorMessage,
	}
}

func (l *Loader[P, T]) Load(ctx context.Context, params P) (ValueState[T], bool) {
	token := l.seq.Add(1)

	l.mu.Lock()
	l.state.Loading = true
	l.mu.Unlock()

	value, err := l.load(ctx, params)

	l.mu.Lock()
	defer l.mu.Unlock()

	if latest := l.seq.Load(); token != latest {
		log.ForContext(ctx).WithFields(log.Fields{
			"resource": l.resource,
			"token":    token,
			"latest":   latest,
		}).Debug("Resultado de carga superada descartado")
		state := l.state
		state.Superseded = true
		return state, false
	}

	l.state.Loading = false
	if err != nil {
		message := MessageOr(err, l.errorMessage)
		l.notifier.Error(ctx, message)
		l.state.Data = nil
		l.state.Err = message
		return l.state, true
	}

	l.state.Data = value
	l.state.Err = ""
	return l.state, true
}

func (l *Loader[P, T]) Snapshot() ValueState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loader[P, T]) Reset() {
	l.seq.Add(1)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = ValueState[T]{}
}
