package handler

import (
	"net/http"

	"github.com/casaalves/backoffice-api/internal/api/handler/router"
	"github.com/casaalves/backoffice-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Session() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: middlewares{middleware.AllLevels()},
		},
		{
			Path:        "/v1/access-levels",
			Method:      http.MethodGet,
			Handler:     ListAccessLevels(),
			Middlewares: middlewares{middleware.AllLevels()},
		},
		{
			Path:        "/v1/expense-types",
			Method:      http.MethodGet,
			Handler:     ListExpenseTypes(),
			Middlewares: middlewares{middleware.AllLevels()},
		},
	}
}

func Dashboard(workspaces Workspaces, archive ArchiveReader, recorder ExportRecorder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(workspaces),
			Middlewares: middlewares{middleware.AllLevels()},
		},
		{
			Path:        "/v1/dashboard/export",
			Method:      http.MethodGet,
			Handler:     ExportDashboard(workspaces, recorder),
			Middlewares: middlewares{middleware.CanModify()},
		},
		{
			Path:        "/v1/dashboard/archive",
			Method:      http.MethodGet,
			Handler:     ListArchivedPeriods(archive),
			Middlewares: middlewares{middleware.AllLevels()},
		},
		{
			Path:        "/v1/dashboard/archive/:period",
			Method:      http.MethodGet,
			Handler:     GetArchivedDashboard(archive),
			Middlewares: middlewares{middleware.AllLevels()},
		},
	}
}

func Expenses(workspaces Workspaces, recorder ExportRecorder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/expenses",
			Method:      http.MethodGet,
			Handler:     ListExpenses(workspaces),
			Middlewares: middlewares{middleware.AllLevels()},
		},
		{
			Path:        "/v1/expenses",
			Method:      http.MethodPost,
			Handler:     CreateExpense(workspaces),
			Middlewares: middlewares{middleware.CanModify()},
		},
		{
			Path:        "/v1/expenses/export",
			Method:      http.MethodGet,
			Handler:     ExportExpenses(workspaces, recorder),
			Middlewares: middlewares{middleware.CanModify()},
		},
		{
			Path:        "/v1/expenses/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateExpense(workspaces),
			Middlewares: middlewares{middleware.CanModify()},
		},
		{
			Path:        "/v1/expenses/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteExpense(workspaces),
			Middlewares: middlewares{middleware.CanModify()},
		},
	}
}

func Invoices(workspaces Workspaces, recorder ExportRecorder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices",
			Method:      http.MethodGet,
			Handler:     ListInvoices(workspaces),
			Middlewares: middlewares{middleware.AllLevels()},
		},
		{
			Path:        "/v1/invoices",
			Method:      http.MethodPost,
			Handler:     CreateInvoice(workspaces),
			Middlewares: middlewares{middleware.CanModify()},
		},
		{
			Path:        "/v1/invoices/export",
			Method:      http.MethodGet,
			Handler:     ExportInvoices(workspaces, recorder),
			Middlewares: middlewares{middleware.CanModify()},
		},
		{
			Path:        "/v1/invoices/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateInvoice(workspaces),
			Middlewares: middlewares{middleware.CanModify()},
		},
		{
			Path:        "/v1/invoices/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInvoice(workspaces),
			Middlewares: middlewares{middleware.CanModify()},
		},
	}
}

func Sales(workspaces Workspaces) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(workspaces),
			Middlewares: middlewares{middleware.AllLevels()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(workspaces),
			Middlewares: middlewares{middleware.CanModify()},
		},
		{
			Path:        "/v1/sales/preview",
			Method:      http.MethodPost,
			Handler:     PreviewSale(workspaces),
			Middlewares: middlewares{middleware.AllLevels()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateSale(workspaces),
			Middlewares: middlewares{middleware.CanModify()},
		},
		{
			Path:        "/v1/sales/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSale(workspaces),
			Middlewares: middlewares{middleware.CanModify()},
		},
	}
}

func Users(workspaces Workspaces) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(workspaces),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(workspaces),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateUser(workspaces),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteUser(workspaces),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Logs(workspaces Workspaces, recorder ExportRecorder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/logs",
			Method:      http.MethodGet,
			Handler:     ListLogs(workspaces),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/logs/export",
			Method:      http.MethodGet,
			Handler:     ExportLogs(workspaces, recorder),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func Exports(history ExportHistory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/exports",
			Method:      http.MethodGet,
			Handler:     ListExports(history),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
