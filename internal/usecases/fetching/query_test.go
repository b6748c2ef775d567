package fetching

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
)

type recordedNotification struct {
	kind    string
	message string
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []recordedNotification
}

func (f *fakeNotifier) Success(_ context.Context, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedNotification{kind: "success", message: message})
}

func (f *fakeNotifier) Error(_ context.Context, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedNotification{kind: "error", message: message})
}

func (f *fakeNotifier) all() []recordedNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedNotification(nil), f.calls...)
}

var _ notifying.Notifier = (*fakeNotifier)(nil)

func TestQuery_Fetch(t *testing.T) {
	pagination := domain.Pagination{Page: 2, Limit: 10, Total: 12, TotalPages: 2}

	tests := []struct {
		name              string
		fetch             FetchFunc[int, string]
		wantItems         []string
		wantPagination    domain.Pagination
		wantErr           string
		wantNotifications []recordedNotification
	}{
		{
			name: "Deve substituir itens e paginação no sucesso",
			fetch: func(ctx context.Context, page int) (Page[string], error) {
				return Page[string]{Items: []string{"a", "b"}, Pagination: pagination}, nil
			},
			wantItems:      []string{"a", "b"},
			wantPagination: pagination,
		},
		{
			name: "Deve usar a mensagem do servidor na falha",
			fetch: func(ctx context.Context, page int) (Page[string], error) {
				return Page[string]{}, &casaalves.Error{Status: 403, Message: "Acesso negado"}
			},
			wantItems:         []string{},
			wantPagination:    domain.DefaultPagination(),
			wantErr:           "Acesso negado",
			wantNotifications: []recordedNotification{{kind: "error", message: "Acesso negado"}},
		},
		{
			name: "Deve usar a mensagem genérica em falhas de transporte",
			fetch: func(ctx context.Context, page int) (Page[string], error) {
				return Page[string]{}, errors.New("connection refused")
			},
			wantItems:         []string{},
			wantPagination:    domain.DefaultPagination(),
			wantErr:           "Erro ao buscar despesas",
			wantNotifications: []recordedNotification{{kind: "error", message: "Erro ao buscar despesas"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			q := NewQuery("despesas", tt.fetch, notifier, "Erro ao buscar despesas")

			state, applied := q.Fetch(context.Background(), 1)

			assert.True(t, applied)
			assert.False(t, state.Loading)
			assert.Equal(t, tt.wantItems, state.Items)
			assert.Equal(t, tt.wantPagination, state.Pagination)
			assert.Equal(t, tt.wantErr, state.Err)
			assert.Equal(t, tt.wantNotifications, notifier.all())
			assert.Equal(t, state, q.Snapshot())
		})
	}
}

func TestQuery_FalhaAposSucessoReiniciaEstado(t *testing.T) {
	fail := false
	q := NewQuery("duplicatas", func(ctx context.Context, _ struct{}) (Page[int], error) {
		if fail {
			return Page[int]{}, errors.New("timeout")
		}
		return Page[int]{Items: []int{1, 2, 3}, Pagination: domain.Pagination{Page: 1, Limit: 10, Total: 3, TotalPages: 1}}, nil
	}, &fakeNotifier{}, "Erro ao buscar duplicatas")

	q.Fetch(context.Background(), struct{}{})
	fail = true
	state, _ := q.Fetch(context.Background(), struct{}{})

	assert.Empty(t, state.Items)
	assert.Equal(t, domain.DefaultPagination(), state.Pagination)
}

// Duas buscas sobrepostas: a primeira termina depois da segunda e seu
// resultado não pode sobrescrever o da busca mais recente.
func TestQuery_DescartaResultadoSuperado(t *testing.T) {
	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})

	notifier := &fakeNotifier{}
	q := NewQuery("despesas", func(ctx context.Context, month int) (Page[int], error) {
		if month == 1 {
			close(firstStarted)
			<-releaseFirst
			return Page[int]{}, errors.New("falha tardia")
		}
		return Page[int]{Items: []int{month}, Pagination: domain.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1}}, nil
	}, notifier, "Erro ao buscar despesas")

	type result struct {
		state   State[int]
		applied bool
	}
	firstDone := make(chan result)
	go func() {
		state, applied := q.Fetch(context.Background(), 1)
		firstDone <- result{state, applied}
	}()

	<-firstStarted
	assert.True(t, q.Snapshot().Loading)

	second, secondApplied := q.Fetch(context.Background(), 2)
	require.True(t, secondApplied)
	assert.Equal(t, []int{2}, second.Items)
	assert.False(t, second.Loading)

	close(releaseFirst)
	var first result
	select {
	case first = <-firstDone:
	case <-time.After(time.Second):
		t.Fatal("busca antiga não terminou")
	}

	assert.False(t, first.applied)
	assert.True(t, first.state.Superseded)
	assert.Equal(t, []int{2}, first.state.Items)
	assert.False(t, second.Superseded)

	final := q.Snapshot()
	assert.False(t, final.Superseded)
	assert.Equal(t, []int{2}, final.Items)
	assert.Equal(t, 1, final.Pagination.Total)
	assert.Empty(t, final.Err)
	assert.Empty(t, notifier.all())
}

func TestQuery_Reset(t *testing.T) {
	q := NewQuery("logs", func(ctx context.Context, _ int) (Page[string], error) {
		return Page[string]{Items: []string{"login"}, Pagination: domain.Pagination{Page: 3, Limit: 10, Total: 30, TotalPages: 3}}, nil
	}, &fakeNotifier{}, "Erro ao buscar logs")

	q.Fetch(context.Background(), 3)
	q.Reset()

	assert.Equal(t, State[string]{Items: []string{}, Pagination: domain.DefaultPagination()}, q.Snapshot())
}

func TestQuery_SnapshotIsolado(t *testing.T) {
	q := NewQuery("vendas", func(ctx context.Context, _ int) (Page[string], error) {
		return Page[string]{Items: []string{"a"}}, nil
	}, &fakeNotifier{}, "Erro ao buscar vendas")

	state, _ := q.Fetch(context.Background(), 1)
	state.Items[0] = "alterado"

	assert.Equal(t, []string{"a"}, q.Snapshot().Items)
}

func TestLoader_Load(t *testing.T) {
	notifier := &fakeNotifier{}
	calls := 0
	l := NewLoader("dashboard", func(ctx context.Context, month int) (*domain.Dashboard, error) {
		calls++
		if calls == 2 {
			return nil, &casaalves.Error{Status: 500, Message: "Falha ao calcular"}
		}
		return &domain.Dashboard{Month: month}, nil
	}, notifier, "Erro ao buscar dados do dashboard")

	state, applied := l.Load(context.Background(), 3)
	require.True(t, applied)
	require.NotNil(t, state.Data)
	assert.Equal(t, 3, state.Data.Month)

	state, _ = l.Load(context.Background(), 4)
	assert.Nil(t, state.Data)
	assert.Equal(t, "Falha ao calcular", state.Err)
	assert.False(t, state.Loading)
	assert.Equal(t, []recordedNotification{{kind: "error", message: "Falha ao calcular"}}, notifier.all())
}

func TestMessageOr(t *testing.T) {
	assert.Equal(t, "Login já existe", MessageOr(&casaalves.Error{Status: 400, Message: "Login já existe"}, "padrão"))
	assert.Equal(t, "padrão", MessageOr(&casaalves.Error{Status: 400, Message: "  "}, "padrão"))
	assert.Equal(t, "padrão", MessageOr(errors.New("qualquer"), "padrão"))
	assert.Equal(t, "padrão", MessageOr(nil, "padrão"))
}

func TestLoader_DescartaCargaSuperada(t *testing.T) {
	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})

	l := NewLoader("dashboard", func(ctx context.Context, month int) (*domain.Dashboard, error) {
		if month == 1 {
			close(firstStarted)
			<-releaseFirst
		}
		return &domain.Dashboard{Month: month}, nil
	}, &fakeNotifier{}, "Erro ao buscar dados do dashboard")

	firstDone := make(chan ValueState[domain.Dashboard])
	go func() {
		state, _ := l.Load(context.Background(), 1)
		firstDone <- state
	}()

	<-firstStarted
	second, applied := l.Load(context.Background(), 2)
	require.True(t, applied)
	assert.False(t, second.Superseded)

	close(releaseFirst)
	var first ValueState[domain.Dashboard]
	select {
	case first = <-firstDone:
	case <-time.After(time.Second):
		t.Fatal("carga antiga não terminou")
	}

	assert.True(t, first.Superseded)
	require.NotNil(t, first.Data)
	assert.Equal(t, 2, first.Data.Month)
	assert.False(t, l.Snapshot().Superseded)
}

// A busca antiga termina enquanto a mais nova ainda está em andamento: ela é
// marcada como superada em vez de devolver um estado pela metade como válido.
func TestQuery_BuscaAntigaTerminaAntesDaNova(t *testing.T) {
	secondStarted := make(chan struct{})
	releaseSecond := make(chan struct{})
	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})

	q := NewQuery("despesas", func(ctx context.Context, month int) (Page[int], error) {
		if month == 1 {
			close(firstStarted)
			<-releaseFirst
		} else {
			close(secondStarted)
			<-releaseSecond
		}
		return Page[int]{Items: []int{month}}, nil
	}, &fakeNotifier{}, "Erro ao buscar despesas")

	firstDone := make(chan State[int])
	go func() {
		state, _ := q.Fetch(context.Background(), 1)
		firstDone <- state
	}()
	<-firstStarted

	secondDone := make(chan State[int])
	go func() {
		state, _ := q.Fetch(context.Background(), 2)
		secondDone <- state
	}()
	<-secondStarted

	close(releaseFirst)
	first := <-firstDone
	assert.True(t, first.Superseded)
	assert.True(t, first.Loading)
	assert.Empty(t, first.Items)

	close(releaseSecond)
	second := <-secondDone
	assert.False(t, second.Superseded)
	assert.Equal(t, []int{2}, second.Items)
}
