package casaalves

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/casaalves/backoffice-api/internal/config"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

// Client expõe todos os endpoints do backend Casa Alves
type Client interface {
	GetDashboard(ctx context.Context, filters domain.DashboardFilters) (*domain.Dashboard, error)

	ListExpenses(ctx context.Context, query domain.ExpenseQuery) (ListResult[domain.Expense], error)
	CreateExpense(ctx context.Context, input domain.ExpenseInput) (MutationResult[domain.Expense], error)
	UpdateExpense(ctx context.Context, id int, input domain.ExpenseInput) (MutationResult[domain.Expense], error)
	DeleteExpense(ctx context.Context, id int) (MutationResult[domain.Expense], error)
	ExportExpenses(ctx context.Context, filters domain.ExpenseFilters) ([]byte, error)

	ListInvoices(ctx context.Context, query domain.InvoiceQuery) (ListResult[domain.Invoice], error)
	CreateInvoice(ctx context.Context, input domain.InvoiceInput) (MutationResult[domain.Invoice], error)
	UpdateInvoice(ctx context.Context, id int, input domain.InvoiceInput) (MutationResult[domain.Invoice], error)
	DeleteInvoice(ctx context.Context, id int) (MutationResult[domain.Invoice], error)
	ExportInvoices(ctx context.Context, filters domain.InvoiceFilters) ([]byte, error)

	ListSales(ctx context.Context, query domain.SaleQuery) (ListResult[domain.Sale], error)
	CreateSale(ctx context.Context, input domain.SaleInput) (MutationResult[domain.Sale], error)
	UpdateSale(ctx context.Context, id int, input domain.SaleInput) (MutationResult[domain.Sale], error)
	DeleteSale(ctx context.Context, id int) (MutationResult[domain.Sale], error)

	ListUsers(ctx context.Context, query domain.UserQuery) (ListResult[domain.User], error)
	RegisterUser(ctx context.Context, input domain.UserInput) (MutationResult[domain.User], error)
	UpdateUser(ctx context.Context, id int, input domain.UserInput) (MutationResult[domain.User], error)
	DeleteUser(ctx context.Context, id int) (MutationResult[domain.User], error)

	ListLogs(ctx context.Context, query domain.LogQuery) (ListResult[domain.LogEntry], error)
	ExportLogs(ctx context.Context, filters domain.LogFilters) ([]byte, error)
}

var _ Client = (*CasaAlvesClient)(nil)

type CasaAlvesClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.CasaAlves) *CasaAlvesClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &CasaAlvesClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.URL,
	}
}

// request descreve uma chamada ao backend; errorField indica o campo da mensagem de erro
type request struct {
	method     string
	endpoint   string
	query      url.Values
	body       any
	errorField string
}

// do executa a requisição e devolve o corpo de respostas 2xx
func (c *CasaAlvesClient) do(ctx context.Context, r request) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, r.endpoint)
	if len(r.query) > 0 {
		endpoint.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warnf("Falha de comunicação com o backend: %s %s", r.method, r.endpoint)
		return nil, &Error{Err: errors.Wrap(err, "erro ao executar a requisição")}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Err: errors.Wrap(err, "erro ao ler a resposta")}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Status:  resp.StatusCode,
			Message: extractMessage(data, r.errorField),
			Err:     errors.Errorf("requisição falhou com status: %s", resp.Status),
		}
	}

	return data, nil
}

func (c *CasaAlvesClient) getBytes(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	return c.do(ctx, request{method: http.MethodGet, endpoint: endpoint, query: query, errorField: "message"})
}

func list[T any](ctx context.Context, c *CasaAlvesClient, endpoint string, query url.Values) (ListResult[T], error) {
	data, err := c.getBytes(ctx, endpoint, query)
	if err != nil {
		return ListResult[T]{}, err
	}

	var envelope listEnvelope[T]
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ListResult[T]{}, malformed(err, "erro ao decodificar a resposta")
	}
	if !envelope.succeeded() {
		return ListResult[T]{}, &Error{Status: http.StatusOK, Message: envelope.Message}
	}

	result := ListResult[T]{
		Items:      envelope.Data,
		Pagination: domain.DefaultPagination(),
	}
	if result.Items == nil {
		result.Items = []T{}
	}
	if envelope.Pagination != nil {
		result.Pagination = *envelope.Pagination
	}

	return result, nil
}

func mutate[T any](ctx context.Context, c *CasaAlvesClient, method, endpoint string, body any) (MutationResult[T], error) {
	data, err := c.do(ctx, request{method: method, endpoint: endpoint, body: body, errorField: "message"})
	if err != nil {
		return MutationResult[T]{}, err
	}

	var envelope mutationEnvelope[T]
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &envelope); err != nil {
			return MutationResult[T]{}, malformed(err, "erro ao decodificar a resposta")
		}
	}
	if !envelope.succeeded() {
		return MutationResult[T]{}, &Error{Status: http.StatusOK, Message: envelope.Message}
	}

	return MutationResult[T]{Message: envelope.Message, Data: envelope.Data}, nil
}

// malformed marca um corpo 2xx que não pôde ser lido. O backend respondeu, então
// não é falha de transporte: o status 502 leva a resposta para SRV_005.
func malformed(err error, message string) *Error {
	return &Error{Status: http.StatusBadGateway, Err: errors.Wrap(err, message)}
}

func idPath(prefix string, id int) string {
	return prefix + "/" + strconv.Itoa(id)
}
