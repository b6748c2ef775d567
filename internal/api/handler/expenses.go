package handler

import (
	"net/http"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/expensing"
	"github.com/casaalves/backoffice-api/internal/usecases/workspace"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
)

func ListExpenses(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var query domain.ExpenseQuery
		if err := decodeQuery(r.URL.Query(), &query); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		state := ws.Expenses.Load(r.Context(), query)
		writeState(w, r, state, state.Err, state.Superseded)
	})
}

func CreateExpense(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var input domain.ExpenseInput
		if err := decodeBody(r, &input); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", err)
			return
		}

		writeOutcome(w, r, http.StatusCreated, ws.Expenses.Create(r.Context(), input))
	})
}

func UpdateExpense(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		id, err := paramID(r)
		if err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "ID da despesa inválido", err)
			return
		}

		var input domain.ExpenseInput
		if err := decodeBody(r, &input); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", err)
			return
		}

		writeOutcome(w, r, http.StatusOK, ws.Expenses.Update(r.Context(), id, input))
	})
}

func DeleteExpense(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		id, err := paramID(r)
		if err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "ID da despesa inválido", err)
			return
		}

		writeOutcome(w, r, http.StatusOK, ws.Expenses.Delete(r.Context(), id))
	})
}

func ExportExpenses(workspaces Workspaces, recorder ExportRecorder) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var filters domain.ExpenseFilters
		if err := decodeQuery(r.URL.Query(), &filters); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		download, err := ws.Expenses.Export(r.Context(), filters)
		deliverExport(w, r, recorder, expensing.Resource, download, err)
	})
}
