package administering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves/mocks"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
)

func newTestPage(t *testing.T) (*Page, *mocks.MockClient, context.Context, *notifying.Recorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	backend := mocks.NewMockClient(ctrl)
	ctx, rec := notifying.WithRecorder(context.Background())

	return NewPage(backend, notifying.ContextNotifier{}), backend, ctx, rec
}

func TestPage_CreateUsaMensagemDoServidor(t *testing.T) {
	page, backend, ctx, rec := newTestPage(t)
	user := domain.User{ID: 5, Name: "Maria", Login: "maria", AccessLevel: domain.AccessLevelManager}

	gomock.InOrder(
		backend.EXPECT().
			RegisterUser(gomock.Any(), domain.UserInput{Name: "Maria", Login: "maria", Password: "segredo1", AccessLevel: domain.AccessLevelManager}).
			Return(casaalves.MutationResult[domain.User]{Message: "Usuário registrado com sucesso", Data: &user}, nil),
		backend.EXPECT().
			ListUsers(gomock.Any(), domain.UserQuery{PageRequest: domain.PageRequest{Page: 1, Limit: PageLimit}}).
			Return(casaalves.ListResult[domain.User]{Items: []domain.User{user}, Pagination: domain.DefaultPagination()}, nil),
	)

	outcome := page.Create(ctx, domain.UserInput{Name: " Maria ", Login: "maria ", Password: "segredo1", AccessLevel: domain.AccessLevelManager})

	require.False(t, outcome.Failed())
	require.Len(t, outcome.List.Items, 1)
	assert.Equal(t, "Gerente", outcome.List.Items[0].AccessLevelLabel)
	assert.Equal(t, []domain.Notification{
		{Kind: domain.NotificationSuccess, Message: "Usuário registrado com sucesso"},
	}, rec.Notifications())
}

func TestPage_Validacao(t *testing.T) {
	tests := []struct {
		name       string
		run        func(p *Page, ctx context.Context) Outcome
		wantFields []string
	}{
		{
			name: "Deve exigir senha no cadastro",
			run: func(p *Page, ctx context.Context) Outcome {
				return p.Create(ctx, domain.UserInput{Name: "João", Login: "joao", AccessLevel: domain.AccessLevelUser})
			},
			wantFields: []string{"senha"},
		},
		{
			name: "Deve recusar senha curta na edição",
			run: func(p *Page, ctx context.Context) Outcome {
				return p.Update(ctx, 1, domain.UserInput{Name: "João", Login: "joao", Password: "123", AccessLevel: domain.AccessLevelUser})
			},
			wantFields: []string{"senha"},
		},
		{
			name: "Deve recusar nível de acesso desconhecido",
			run: func(p *Page, ctx context.Context) Outcome {
				return p.Update(ctx, 1, domain.UserInput{Name: "João", Login: "joao", AccessLevel: 9})
			},
			wantFields: []string{"nivelAcesso"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, _, ctx, rec := newTestPage(t)

			outcome := tt.run(page, ctx)

			var verr *domain.ValidationError
			require.True(t, errors.As(outcome.Err, &verr))
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.Len(t, rec.Notifications(), 1)
		})
	}
}

func TestPage_UpdateSemSenhaMantemAtual(t *testing.T) {
	page, backend, ctx, rec := newTestPage(t)

	backend.EXPECT().
		UpdateUser(gomock.Any(), 3, domain.UserInput{Name: "Ana", Login: "ana", AccessLevel: domain.AccessLevelAdmin}).
		Return(casaalves.MutationResult[domain.User]{}, nil)
	backend.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(casaalves.ListResult[domain.User]{Pagination: domain.DefaultPagination()}, nil)

	outcome := page.Update(ctx, 3, domain.UserInput{Name: "Ana", Login: "ana", AccessLevel: domain.AccessLevelAdmin})

	assert.False(t, outcome.Failed())
	assert.Equal(t, []domain.Notification{
		{Kind: domain.NotificationSuccess, Message: "Usuário atualizado com sucesso!"},
	}, rec.Notifications())
}

func TestPage_LoadComFiltros(t *testing.T) {
	page, backend, ctx, rec := newTestPage(t)
	filters := domain.UserFilters{Name: "ana", AccessLevel: 3}

	backend.EXPECT().
		ListUsers(gomock.Any(), domain.UserQuery{UserFilters: filters, PageRequest: domain.PageRequest{Page: 1, Limit: PageLimit}}).
		Return(casaalves.ListResult[domain.User]{}, &casaalves.Error{Status: 403, Message: "Acesso negado"})

	state := page.Load(ctx, domain.UserQuery{UserFilters: filters})

	assert.Empty(t, state.Items)
	assert.Equal(t, []domain.Notification{
		{Kind: domain.NotificationError, Message: "Acesso negado"},
	}, rec.Notifications())
}

func TestPage_Delete(t *testing.T) {
	page, backend, ctx, rec := newTestPage(t)

	backend.EXPECT().DeleteUser(gomock.Any(), 8).Return(casaalves.MutationResult[domain.User]{}, errors.New("EOF"))

	outcome := page.Delete(ctx, 8)

	assert.True(t, outcome.Failed())
	assert.Equal(t, []domain.Notification{
		{Kind: domain.NotificationError, Message: "Erro ao excluir usuário"},
	}, rec.Notifications())
}
