package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves"
	casaalvesmocks "github.com/casaalves/backoffice-api/infrastructure/integrator/casaalves/mocks"
	repomocks "github.com/casaalves/backoffice-api/infrastructure/repository/mocks"
	"github.com/casaalves/backoffice-api/internal/api/handler"
	"github.com/casaalves/backoffice-api/internal/config"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/authenticating"
	authmocks "github.com/casaalves/backoffice-api/internal/usecases/authenticating/mocks"
	"github.com/casaalves/backoffice-api/internal/usecases/notifying"
	"github.com/casaalves/backoffice-api/internal/usecases/reporting"
	"github.com/casaalves/backoffice-api/internal/usecases/workspace"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
)

type exportStore struct {
	*repomocks.MockExportRecordRepository
}

type fakeCron struct {
	triggered int
}

func (f *fakeCron) TriggerManualSync(context.Context) { f.triggered++ }

func (f *fakeCron) GetStatus() map[string]any {
	return map[string]any{"triggered": f.triggered}
}

type testServer struct {
	handler  http.Handler
	backend  *casaalvesmocks.MockClient
	snapshot *repomocks.MockDashboardSnapshotRepository
	exports  *repomocks.MockExportRecordRepository
	archive  *fakeCron
	sweep    *fakeCron
}

func fixedClock() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (*domain.Claims, error) {
		levels := map[string]domain.AccessLevel{
			"usuario": domain.AccessLevelUser,
			"gerente": domain.AccessLevelManager,
			"admin":   domain.AccessLevelAdmin,
		}
		level, ok := levels[token]
		if !ok {
			return nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "")
		}
		return &domain.Claims{UserID: int(level), UserName: token, UserLogin: token, AccessLevel: level}, nil
	}).AnyTimes()

	ts := &testServer{
		backend:  casaalvesmocks.NewMockClient(ctrl),
		snapshot: repomocks.NewMockDashboardSnapshotRepository(ctrl),
		exports:  repomocks.NewMockExportRecordRepository(ctrl),
		archive:  &fakeCron{},
		sweep:    &fakeCron{},
	}

	cfg := &config.Config{Server: config.Server{CorsAllowedOrigins: []string{"http://localhost:5173"}}}
	ts.handler = NewHandler(cfg, Dependencies{
		Authenticator: auth,
		Workspaces:    workspace.NewRegistry(ts.backend, notifying.ContextNotifier{}, fixedClock),
		Archive:       reporting.NewArchive(ts.snapshot),
		Exports:       exportStore{ts.exports},
		CronJobs: handler.CronJobServices{
			DashboardArchive: ts.archive,
			WorkspaceSweep:   ts.sweep,
		},
	})

	return ts
}

func (ts *testServer) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Code          string                `json:"code"`
	Message       string                `json:"message"`
	Data          jsoniter.RawMessage   `json:"data"`
	Details       jsoniter.RawMessage   `json:"details"`
	Notifications []domain.Notification `json:"notifications"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestServer_Healthcheck(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/healthcheck", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RotaDesconhecida(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/v1/nao-existe", "admin", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decode(t, rec).Code)
}

func TestServer_Autorizacao(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
		wantCode   string
	}{
		{"Sem token", http.MethodGet, "/v1/expenses", "", http.StatusUnauthorized, apiErrors.ErrMissingToken},
		{"Token inválido", http.MethodGet, "/v1/expenses", "desconhecido", http.StatusUnauthorized, apiErrors.ErrInvalidToken},
		{"Usuário não cria despesa", http.MethodPost, "/v1/expenses", "usuario", http.StatusForbidden, apiErrors.ErrInsufficientPrivilege},
		{"Usuário não exporta duplicatas", http.MethodGet, "/v1/invoices/export", "usuario", http.StatusForbidden, apiErrors.ErrInsufficientPrivilege},
		{"Gerente não lista usuários", http.MethodGet, "/v1/users", "gerente", http.StatusForbidden, apiErrors.ErrInsufficientPrivilege},
		{"Gerente não lê logs", http.MethodGet, "/v1/logs", "gerente", http.StatusForbidden, apiErrors.ErrInsufficientPrivilege},
		{"Gerente não executa cron", http.MethodPost, "/v1/cron/all/run", "gerente", http.StatusForbidden, apiErrors.ErrInsufficientPrivilege},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			rec := ts.do(tt.method, tt.path, tt.token, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec).Code)
		})
	}
}

func TestServer_Me(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/v1/me", "gerente", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var me domain.Me
	require.NoError(t, jsoniter.Unmarshal(decode(t, rec).Data, &me))
	assert.Equal(t, "Gerente", me.AccessLevel.Label)
	assert.True(t, me.CanModify)
	assert.False(t, me.IsAdmin)
}

func TestServer_CriarDespesa(t *testing.T) {
	ts := newTestServer(t)
	created := domain.Expense{ID: 1, Date: "2025-03-10", Type: domain.ExpenseTypeElectricity, Category: domain.CategoryServices, Amount: 150}

	gomock.InOrder(
		ts.backend.EXPECT().CreateExpense(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, input domain.ExpenseInput) (casaalves.MutationResult[domain.Expense], error) {
				assert.Equal(t, "gerente", casaalves.TokenFromContext(ctx))
				assert.Equal(t, "Serviços", input.Category)
				assert.InDelta(t, 150.0, input.Amount.Float64(), 0.001)
				return casaalves.MutationResult[domain.Expense]{Data: &created}, nil
			}),
		ts.backend.EXPECT().ListExpenses(gomock.Any(), gomock.Any()).
			Return(casaalves.ListResult[domain.Expense]{
				Items:      []domain.Expense{created},
				Pagination: domain.Pagination{Page: 1, Limit: 50, Total: 1, TotalPages: 1},
			}, nil),
	)

	rec := ts.do(http.MethodPost, "/v1/expenses", "gerente",
		`{"data":"2025-03-10T00:00:00.000Z","tipo":"Energia Elétrica","descricao":"Conta de luz","valor":"150,00"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Equal(t, []domain.Notification{
		{Kind: domain.NotificationSuccess, Message: "Despesa cadastrada com sucesso!"},
	}, env.Notifications)
	assert.Contains(t, string(env.Data), `"valorFormatado":"R$ 150,00"`)
}

func TestServer_CriarDespesaInvalida(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/v1/expenses", "admin", `{"tipo":"Energia Elétrica","valor":"0"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, apiErrors.ErrValidation, env.Code)
	require.Len(t, env.Notifications, 1)
	assert.Equal(t, domain.NotificationError, env.Notifications[0].Kind)
}

func TestServer_CorpoMalformado(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/v1/sales", "admin", `{"data":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decode(t, rec).Code)
}

func TestServer_ListagemRepassaFiltros(t *testing.T) {
	ts := newTestServer(t)

	ts.backend.EXPECT().
		ListInvoices(gomock.Any(), domain.InvoiceQuery{
			InvoiceFilters: domain.InvoiceFilters{Month: 4, Year: 2025, Status: "pendente"},
			PageRequest:    domain.PageRequest{Page: 2, Limit: 50},
		}).
		Return(casaalves.ListResult[domain.Invoice]{Pagination: domain.Pagination{Page: 2, Limit: 50, Total: 60, TotalPages: 2}}, nil)

	rec := ts.do(http.MethodGet, "/v1/invoices?mes=4&ano=2025&status=pendente&page=2", "usuario", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(decode(t, rec).Data), `"totalPages":2`)
}

func TestServer_ListagemComFalha(t *testing.T) {
	ts := newTestServer(t)

	ts.backend.EXPECT().ListExpenses(gomock.Any(), gomock.Any()).
		Return(casaalves.ListResult[domain.Expense]{}, &casaalves.Error{Err: errors.New("connection refused")})

	rec := ts.do(http.MethodGet, "/v1/expenses", "usuario", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, apiErrors.ErrBackendRejected, env.Code)
	require.Len(t, env.Notifications, 1)
	assert.Equal(t, domain.NotificationError, env.Notifications[0].Kind)
}

// Duas listagens sobrepostas do mesmo usuário: a mais antiga termina depois
// e precisa responder 409 em vez de 200 com um estado que não é o dela.
func TestServer_ListagemSuperadaResponde409(t *testing.T) {
	ts := newTestServer(t)

	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})

	ts.backend.EXPECT().ListExpenses(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query domain.ExpenseQuery) (casaalves.ListResult[domain.Expense], error) {
			if query.Month == 1 {
				close(firstStarted)
				<-releaseFirst
				return casaalves.ListResult[domain.Expense]{Items: []domain.Expense{{ID: 1}}, Pagination: domain.DefaultPagination()}, nil
			}
			return casaalves.ListResult[domain.Expense]{
				Items:      []domain.Expense{{ID: 2, Amount: 10}},
				Pagination: domain.Pagination{Page: 1, Limit: 50, Total: 1, TotalPages: 1},
			}, nil
		}).
		Times(2)

	firstDone := make(chan *httptest.ResponseRecorder)
	go func() {
		firstDone <- ts.do(http.MethodGet, "/v1/expenses?mes=1&ano=2025", "usuario", "")
	}()

	<-firstStarted
	second := ts.do(http.MethodGet, "/v1/expenses?mes=2&ano=2025", "usuario", "")
	require.Equal(t, http.StatusOK, second.Code, second.Body.String())
	assert.NotContains(t, string(decode(t, second).Data), `"superseded"`)

	close(releaseFirst)
	var first *httptest.ResponseRecorder
	select {
	case first = <-firstDone:
	case <-time.After(time.Second):
		t.Fatal("listagem antiga não terminou")
	}

	require.Equal(t, http.StatusConflict, first.Code, first.Body.String())
	env := decode(t, first)
	assert.Equal(t, apiErrors.ErrSuperseded, env.Code)
	assert.Contains(t, string(env.Details), `"superseded":true`)
	assert.Contains(t, string(env.Details), `"idDespesa":2`)
	assert.NotContains(t, string(env.Details), `"idDespesa":1`)
}

func TestServer_ExclusaoRecusadaPeloBackend(t *testing.T) {
	ts := newTestServer(t)

	ts.backend.EXPECT().DeleteInvoice(gomock.Any(), 9).
		Return(casaalves.MutationResult[domain.Invoice]{}, &casaalves.Error{Status: http.StatusNotFound, Message: "Duplicata não encontrada"})

	rec := ts.do(http.MethodDelete, "/v1/invoices/9", "gerente", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, apiErrors.ErrNotFound, env.Code)
	assert.Equal(t, []domain.Notification{
		{Kind: domain.NotificationError, Message: "Duplicata não encontrada"},
	}, env.Notifications)
}

func TestServer_RespostaMalformadaDoBackendNaoEIndisponibilidade(t *testing.T) {
	ts := newTestServer(t)

	ts.backend.EXPECT().DeleteExpense(gomock.Any(), 9).
		Return(casaalves.MutationResult[domain.Expense]{}, &casaalves.Error{Status: http.StatusBadGateway, Err: errors.New("erro ao decodificar a resposta")})

	rec := ts.do(http.MethodDelete, "/v1/expenses/9", "gerente", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, apiErrors.ErrBackendRejected, decode(t, rec).Code)
}

func TestServer_IDInvalido(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodDelete, "/v1/expenses/abc", "gerente", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decode(t, rec).Code)
}

func TestServer_ExportarDashboard(t *testing.T) {
	ts := newTestServer(t)

	ts.backend.EXPECT().
		GetDashboard(gomock.Any(), domain.DashboardFilters{Month: 3, Year: 2025}).
		Return(&domain.Dashboard{
			Month: 3,
			Year:  2025,
			Daily: []domain.DailyRecord{
				{Date: "2025-03-02", Weekday: "Domingo", SalesTotal: 50, NetRevenue: 50},
				{Date: "2025-03-01", Weekday: "Sábado", SalesTotal: 100, ExpensesTotal: 30, NetRevenue: 70},
			},
		}, nil)
	ts.exports.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.ExportRecord) error {
			assert.Equal(t, reporting.Resource, record.Resource)
			assert.Equal(t, "dashboard_2025-03-10.csv", record.Filename)
			assert.Equal(t, int(domain.AccessLevelManager), record.UserID)
			assert.Positive(t, record.SizeBytes)
			return nil
		})

	rec := ts.do(http.MethodGet, "/v1/dashboard/export", "gerente", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, `attachment; filename="dashboard_2025-03-10.csv"`, rec.Header().Get("Content-Disposition"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "2025-03-01,"))
}

func TestServer_ExportacaoSegueMesmoSemHistorico(t *testing.T) {
	ts := newTestServer(t)

	ts.backend.EXPECT().ExportLogs(gomock.Any(), domain.LogFilters{Action: "LOGIN"}).Return([]byte("acao\nLOGIN\n"), nil)
	ts.exports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("banco indisponível"))

	rec := ts.do(http.MethodGet, "/v1/logs/export?acao=LOGIN", "admin", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "acao\nLOGIN\n", rec.Body.String())
}

func TestServer_ArquivoDeDashboard(t *testing.T) {
	t.Run("Período inválido", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/v1/dashboard/archive/2025-13", "usuario", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decode(t, rec).Code)
	})

	t.Run("Lista os períodos", func(t *testing.T) {
		ts := newTestServer(t)
		ts.snapshot.EXPECT().ListPeriods(gomock.Any()).Return([]string{"2025-03", "2025-02"}, nil)

		rec := ts.do(http.MethodGet, "/v1/dashboard/archive", "usuario", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `["2025-03","2025-02"]`, string(decode(t, rec).Data))
	})
}

func TestServer_HistoricoDeExportacoes(t *testing.T) {
	ts := newTestServer(t)

	ts.exports.EXPECT().ListRecent(gomock.Any(), 100).Return(nil, nil)

	rec := ts.do(http.MethodGet, "/v1/exports?limit=500", "admin", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestServer_Cron(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/v1/cron/all/run", "admin", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, ts.archive.triggered)
	assert.Equal(t, 1, ts.sweep.triggered)

	rec = ts.do(http.MethodPost, "/v1/cron/workspace-sweep/run", "admin", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, ts.sweep.triggered)

	rec = ts.do(http.MethodPost, "/v1/cron/desconhecido/run", "admin", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodGet, "/v1/cron/status", "admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"workspace-sweep":{"triggered":2}`)
}

func TestServer_PreviewDeVenda(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/v1/sales/preview", "usuario",
		`{"data":"2025-03-10","totalCartao":"100,50","totalPix":"20","totalEspecie":"0","totalOutro":"0"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(decode(t, rec).Data), `"totalDiaFormatado":"R$ 120,50"`)
}
