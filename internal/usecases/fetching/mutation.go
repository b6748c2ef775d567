package fetching

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
)

type MutationFunc[T any] func(ctx context.Context) (casaalves.MutationResult[T], error)

// Messages são as mensagens padrão de uma operação. Com ServerSuccess a
// mensagem de sucesso enviada pelo backend tem precedência sobre Success.
type Messages struct {
	Success       string
	Error         string
	ServerSuccess bool
}

// Mutation executa uma chamada de criação, edição ou exclusão e notifica o resultado
type Mutation[T any] struct {
	notifier notifying.Notifier
	messages Messages
	pending  atomic.Int32
}

func NewMutation[T any](notifier notifying.Notifier, messages Messages) *Mutation[T] {
	return &Mutation[T]{
		notifier: notifier,
		messages: messages,
	}
}

// Run executa fn uma única vez; em caso de falha notifica e devolve o erro ao chamador
func (m *Mutation[T]) Run(ctx context.Context, fn MutationFunc[T]) (casaalves.MutationResult[T], error) {
	m.pending.Add(1)
	defer m.pending.Add(-1)

	result, err := fn(ctx)
	if err != nil {
		m.notifier.Error(ctx, MessageOr(err, m.messages.Error))
		return result, err
	}

	message := m.messages.Success
	if m.messages.ServerSuccess && result.Message != "" {
		message = result.Message
	}
	m.notifier.Success(ctx, message)

	return result, nil
}

func (m *Mutation[T]) Loading() bool {
	return m.pending.Load() > 0
}

type ExportFunc func(ctx context.Context) ([]byte, error)

// Clock permite fixar a data usada no nome dos arquivos exportados
type Clock func() time.Time

// Export baixa um CSV do backend e monta o arquivo "<recurso>_<AAAA-MM-DD>.csv"
type Export struct {
	resource string
	notifier notifying.Notifier
	messages Messages
	now      Clock
	pending  atomic.Int32
}

func NewExport(resource string, notifier notifying.Notifier, messages Messages, now Clock) *Export {
	if now == nil {
		now = time.Now
	}
	return &Export{
		resource: resource,
		notifier: notifier,
		messages: messages,
		now:      now,
	}
}

func (e *Export) Run(ctx context.Context, fn ExportFunc) (*domain.Download, error) {
	e.pending.Add(1)
	defer e.pending.Add(-1)

	body, err := fn(ctx)
	if err != nil {
		e.notifier.Error(ctx, MessageOr(err, e.messages.Error))
		return nil, err
	}

	e.notifier.Success(ctx, e.messages.Success)

	return &domain.Download{
		Filename:    e.Filename(),
		ContentType: domain.CSVContentType,
		Body:        body,
	}, nil
}

// Filename usa a data em UTC
func (e *Export) Filename() string {
	return e.resource + "_" + e.now().UTC().Format(time.DateOnly) + ".csv"
}

func (e *Export) Loading() bool {
	return e.pending.Load() > 0
}
