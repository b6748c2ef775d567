package selling

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

func TestPage_Preview(t *testing.T) {
	tests := []struct {
		name          string
		input         domain.SaleInput
		wantTotal     float64
		wantFormatted string
	}{
		{
			name:          "Deve somar as quatro formas de pagamento",
			input:         domain.SaleInput{CardTotal: 1000.1, PixTotal: 250.2, CashTotal: 80, OtherTotal: 0.3},
			wantTotal:     1330.6,
			wantFormatted: "R$ 1.330,60",
		},
		{
			name:          "Deve retornar zero para o formulário vazio",
			input:         domain.SaleInput{},
			wantTotal:     0,
			wantFormatted: "R$ 0,00",
		},
	}

	page, _, _, _ := newTestPage(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preview := page.Preview(tt.input)

			assert.InDelta(t, tt.wantTotal, preview.Total, 0.001)
			assert.Equal(t, tt.wantFormatted, preview.Formatted)
		})
	}
}

func TestPage_CreateRecarregaListagem(t *testing.T) {
	page, backend, ctx, rec := newTestPage(t)
	input := domain.SaleInput{Date: "2025-03-10T03:00:00.000Z", CardTotal: 500, PixTotal: 200}
	sale := domain.Sale{ID: 1, Date: "2025-03-10", CardTotal: 500, PixTotal: 200, DailyTotal: 700}

	gomock.InOrder(
		backend.EXPECT().
			CreateSale(gomock.Any(), domain.SaleInput{Date: "2025-03-10", CardTotal: 500, PixTotal: 200}).
			Return(casaalves.MutationResult[domain.Sale]{Data: &sale}, nil),
		backend.EXPECT().
			ListSales(gomock.Any(), domain.SaleQuery{PageRequest: domain.PageRequest{Page: 1, Limit: PageLimit}}).
			Return(casaalves.ListResult[domain.Sale]{Items: []domain.Sale{sale}, Pagination: domain.DefaultPagination()}, nil),
	)

	outcome := page.Create(ctx, input)

	require.False(t, outcome.Failed())
	require.Len(t, outcome.List.Items, 1)
	assert.Equal(t, "R$ 700,00", outcome.List.Items[0].DailyTotalFormatted)
	assert.Equal(t, "10/03/2025", outcome.List.Items[0].DateFormatted)
	assert.Equal(t, []domain.Notification{
		{Kind: domain.NotificationSuccess, Message: "Venda cadastrada com sucesso!"},
	}, rec.Notifications())
}

func TestPage_UpdateRecusaTotalNegativo(t *testing.T) {
	page, _, ctx, rec := newTestPage(t)

	outcome := page.Update(ctx, 1, domain.SaleInput{Date: "2025-03-10", CashTotal: -5})

	assert.ErrorIs(t, outcome.Err, domain.ErrValidation)
	assert.Len(t, rec.Notifications(), 1)
}

func TestPage_DeleteErroDoServidor(t *testing.T) {
	page, backend, ctx, rec := newTestPage(t)

	backend.EXPECT().
		DeleteSale(gomock.Any(), 2).
		Return(casaalves.MutationResult[domain.Sale]{}, &casaalves.Error{Status: 404, Message: "Venda não encontrada"})

	outcome := page.Delete(ctx, 2)

	var backendErr *casaalves.Error
	require.True(t, errors.As(outcome.Err, &backendErr))
	assert.Equal(t, 404, backendErr.Status)
	assert.Equal(t, []domain.Notification{
		{Kind: domain.NotificationError, Message: "Venda não encontrada"},
	}, rec.Notifications())
}
