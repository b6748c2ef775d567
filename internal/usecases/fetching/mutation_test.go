package fetching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	"github.com/casaalves/backoffice-api/internal/domain"
)

func TestMutation_Run(t *testing.T) {
	messages := Messages{Success: "Usuário criado com sucesso!", Error: "Erro ao criar usuário", ServerSuccess: true}
	backendErr := &casaalves.Error{Status: 409, Message: "Login já cadastrado"}

	tests := []struct {
		name             string
		fn               MutationFunc[domain.User]
		wantErr          error
		wantNotification recordedNotification
	}{
		{
			name: "Deve notificar a mensagem padrão quando o servidor não envia mensagem",
			fn: func(ctx context.Context) (casaalves.MutationResult[domain.User], error) {
				return casaalves.MutationResult[domain.User]{Data: &domain.User{ID: 1}}, nil
			},
			wantNotification: recordedNotification{kind: "success", message: "Usuário criado com sucesso!"},
		},
		{
			name: "Deve preferir a mensagem de sucesso do servidor",
			fn: func(ctx context.Context) (casaalves.MutationResult[domain.User], error) {
				return casaalves.MutationResult[domain.User]{Message: "Usuário registrado"}, nil
			},
			wantNotification: recordedNotification{kind: "success", message: "Usuário registrado"},
		},
		{
			name: "Deve notificar e devolver o erro do servidor",
			fn: func(ctx context.Context) (casaalves.MutationResult[domain.User], error) {
				return casaalves.MutationResult[domain.User]{}, backendErr
			},
			wantErr:          backendErr,
			wantNotification: recordedNotification{kind: "error", message: "Login já cadastrado"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			m := NewMutation[domain.User](notifier, messages)

			_, err := m.Run(context.Background(), tt.fn)

			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, []recordedNotification{tt.wantNotification}, notifier.all())
			assert.False(t, m.Loading())
		})
	}
}

func TestMutation_MensagemFixa(t *testing.T) {
	notifier := &fakeNotifier{}
	m := NewMutation[domain.Expense](notifier, Messages{Success: "Despesa cadastrada com sucesso!"})

	_, err := m.Run(context.Background(), func(ctx context.Context) (casaalves.MutationResult[domain.Expense], error) {
		return casaalves.MutationResult[domain.Expense]{Message: "Created"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []recordedNotification{{kind: "success", message: "Despesa cadastrada com sucesso!"}}, notifier.all())
}

func TestMutation_LoadingDuranteExecucao(t *testing.T) {
	m := NewMutation[domain.Expense](&fakeNotifier{}, Messages{})

	_, _ = m.Run(context.Background(), func(ctx context.Context) (casaalves.MutationResult[domain.Expense], error) {
		assert.True(t, m.Loading())
		return casaalves.MutationResult[domain.Expense]{}, nil
	})

	assert.False(t, m.Loading())
}

func TestExport_Run(t *testing.T) {
	now := func() time.Time { return time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC) }
	messages := Messages{Success: "Despesas exportadas com sucesso!", Error: "Erro ao exportar despesas"}

	t.Run("Deve montar o arquivo com a data atual", func(t *testing.T) {
		notifier := &fakeNotifier{}
		export := NewExport("despesas", notifier, messages, now)

		download, err := export.Run(context.Background(), func(ctx context.Context) ([]byte, error) {
			return []byte("data;valor\n"), nil
		})

		require.NoError(t, err)
		assert.Equal(t, "despesas_2025-03-10.csv", download.Filename)
		assert.Equal(t, domain.CSVContentType, download.ContentType)
		assert.Equal(t, []byte("data;valor\n"), download.Body)
		assert.Equal(t, []recordedNotification{{kind: "success", message: "Despesas exportadas com sucesso!"}}, notifier.all())
	})

	t.Run("Deve notificar a falha e devolver o erro", func(t *testing.T) {
		notifier := &fakeNotifier{}
		export := NewExport("despesas", notifier, messages, now)
		transportErr := errors.New("timeout")

		download, err := export.Run(context.Background(), func(ctx context.Context) ([]byte, error) {
			return nil, transportErr
		})

		assert.Nil(t, download)
		assert.ErrorIs(t, err, transportErr)
		assert.Equal(t, []recordedNotification{{kind: "error", message: "Erro ao exportar despesas"}}, notifier.all())
	})
}

func TestExport_FilenameEmUTC(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	export := NewExport("logs", &fakeNotifier{}, Messages{}, func() time.Time {
		return time.Date(2025, 3, 10, 22, 0, 0, 0, brt)
	})

	assert.Equal(t, "logs_2025-03-11.csv", export.Filename())
}
