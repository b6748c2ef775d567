package casaalves

import (
	"context"
	"net/http"

	"github.com/casaalves/backoffice-api/internal/domain"
)

const (
	dashboardEndpoint = "/dashboard/getDashboard"

	expensesListEndpoint   = "/expenses/getAllExpenses"
	expensesCreateEndpoint = "/expenses/createExpense"
	expensesUpdateEndpoint = "/expenses/updateExpense"
	expensesDeleteEndpoint = "/expenses/deleteExpense"
	expensesExportEndpoint = "/expenses/exportExpenses"

	invoicesListEndpoint   = "/invoices/getAllInvoices"
	invoicesCreateEndpoint = "/invoices/createInvoice"
	invoicesUpdateEndpoint = "/invoices/updateInvoice"
	invoicesDeleteEndpoint = "/invoices/deleteInvoice"
	invoicesExportEndpoint = "/invoices/exportInvoices"

	salesListEndpoint   = "/sales/getAllSales"
	salesCreateEndpoint = "/sales/createSale"
	salesUpdateEndpoint = "/sales/updateSale"
	salesDeleteEndpoint = "/sales/deleteSale"

	usersListEndpoint     = "/auth/getAllUsers"
	usersRegisterEndpoint = "/auth/register"
	usersUpdateEndpoint   = "/auth/updateUser"
	usersDeleteEndpoint   = "/auth/deleteUser"

	logsListEndpoint   = "/logs/getAllLogs"
	logsExportEndpoint = "/logs/exportLogs"
)

// GetDashboard devolve o snapshot do mês; este endpoint não usa envelope e reporta erros no campo "error"
func (c *CasaAlvesClient) GetDashboard(ctx context.Context, filters domain.DashboardFilters) (*domain.Dashboard, error) {
	data, err := c.do(ctx, request{
		method:     http.MethodGet,
		endpoint:   dashboardEndpoint,
		query:      dashboardParams(filters).values(),
		errorField: "error",
	})
	if err != nil {
		return nil, err
	}

	var dashboard domain.Dashboard
	if err := json.Unmarshal(data, &dashboard); err != nil {
		return nil, malformed(err, "erro ao decodificar o dashboard")
	}

	return &dashboard, nil
}

func (c *CasaAlvesClient) ListExpenses(ctx context.Context, query domain.ExpenseQuery) (ListResult[domain.Expense], error) {
	return list[domain.Expense](ctx, c, expensesListEndpoint, expenseParams(query.ExpenseFilters).page(query.PageRequest).values())
}

func (c *CasaAlvesClient) CreateExpense(ctx context.Context, input domain.ExpenseInput) (MutationResult[domain.Expense], error) {
	return mutate[domain.Expense](ctx, c, http.MethodPost, expensesCreateEndpoint, input)
}

func (c *CasaAlvesClient) UpdateExpense(ctx context.Context, id int, input domain.ExpenseInput) (MutationResult[domain.Expense], error) {
	return mutate[domain.Expense](ctx, c, http.MethodPatch, idPath(expensesUpdateEndpoint, id), input)
}

func (c *CasaAlvesClient) DeleteExpense(ctx context.Context, id int) (MutationResult[domain.Expense], error) {
	return mutate[domain.Expense](ctx, c, http.MethodDelete, idPath(expensesDeleteEndpoint, id), nil)
}

func (c *CasaAlvesClient) ExportExpenses(ctx context.Context, filters domain.ExpenseFilters) ([]byte, error) {
	return c.getBytes(ctx, expensesExportEndpoint, expenseParams(filters).values())
}

func (c *CasaAlvesClient) ListInvoices(ctx context.Context, query domain.InvoiceQuery) (ListResult[domain.Invoice], error) {
	result, err := list[domain.Invoice](ctx, c, invoicesListEndpoint, invoiceParams(query.InvoiceFilters).page(query.PageRequest).values())
	if err != nil {
		return result, err
	}

	// duplicatas sem o campo status são tratadas como pendentes
	for i := range result.Items {
		if result.Items[i].Status == "" {
			result.Items[i].Status = domain.InvoiceStatusPending
		}
	}

	return result, nil
}

func (c *CasaAlvesClient) CreateInvoice(ctx context.Context, input domain.InvoiceInput) (MutationResult[domain.Invoice], error) {
	return mutate[domain.Invoice](ctx, c, http.MethodPost, invoicesCreateEndpoint, input)
}

func (c *CasaAlvesClient) UpdateInvoice(ctx context.Context, id int, input domain.InvoiceInput) (MutationResult[domain.Invoice], error) {
	return mutate[domain.Invoice](ctx, c, http.MethodPatch, idPath(invoicesUpdateEndpoint, id), input)
}

func (c *CasaAlvesClient) DeleteInvoice(ctx context.Context, id int) (MutationResult[domain.Invoice], error) {
	return mutate[domain.Invoice](ctx, c, http.MethodDelete, idPath(invoicesDeleteEndpoint, id), nil)
}

func (c *CasaAlvesClient) ExportInvoices(ctx context.Context, filters domain.InvoiceFilters) ([]byte, error) {
	return c.getBytes(ctx, invoicesExportEndpoint, invoiceParams(filters).values())
}

func (c *CasaAlvesClient) ListSales(ctx context.Context, query domain.SaleQuery) (ListResult[domain.Sale], error) {
	return list[domain.Sale](ctx, c, salesListEndpoint, saleParams(query.SaleFilters).page(query.PageRequest).values())
}

func (c *CasaAlvesClient) CreateSale(ctx context.Context, input domain.SaleInput) (MutationResult[domain.Sale], error) {
	return mutate[domain.Sale](ctx, c, http.MethodPost, salesCreateEndpoint, input)
}

func (c *CasaAlvesClient) UpdateSale(ctx context.Context, id int, input domain.SaleInput) (MutationResult[domain.Sale], error) {
	return mutate[domain.Sale](ctx, c, http.MethodPatch, idPath(salesUpdateEndpoint, id), input)
}

func (c *CasaAlvesClient) DeleteSale(ctx context.Context, id int) (MutationResult[domain.Sale], error) {
	return mutate[domain.Sale](ctx, c, http.MethodDelete, idPath(salesDeleteEndpoint, id), nil)
}

func (c *CasaAlvesClient) ListUsers(ctx context.Context, query domain.UserQuery) (ListResult[domain.User], error) {
	return list[domain.User](ctx, c, usersListEndpoint, userParams(query.UserFilters).page(query.PageRequest).values())
}

func (c *CasaAlvesClient) RegisterUser(ctx context.Context, input domain.UserInput) (MutationResult[domain.User], error) {
	return mutate[domain.User](ctx, c, http.MethodPost, usersRegisterEndpoint, input)
}

func (c *CasaAlvesClient) UpdateUser(ctx context.Context, id int, input domain.UserInput) (MutationResult[domain.User], error) {
	return mutate[domain.User](ctx, c, http.MethodPatch, idPath(usersUpdateEndpoint, id), input)
}

func (c *CasaAlvesClient) DeleteUser(ctx context.Context, id int) (MutationResult[domain.User], error) {
	return mutate[domain.User](ctx, c, http.MethodDelete, idPath(usersDeleteEndpoint, id), nil)
}

func (c *CasaAlvesClient) ListLogs(ctx context.Context, query domain.LogQuery) (ListResult[domain.LogEntry], error) {
	return list[domain.LogEntry](ctx, c, logsListEndpoint, logParams(query.LogFilters).page(query.PageRequest).values())
}

func (c *CasaAlvesClient) ExportLogs(ctx context.Context, filters domain.LogFilters) ([]byte, error) {
	return c.getBytes(ctx, logsExportEndpoint, logParams(filters).values())
}
