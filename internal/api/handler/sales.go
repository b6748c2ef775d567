package handler

import (
	"net/http"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/workspace"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
)

func ListSales(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var query domain.SaleQuery
		if err := decodeQuery(r.URL.Query(), &query); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		state := ws.Sales.Load(r.Context(), query)
		writeState(w, r, state, state.Err, state.Superseded)
	})
}

// PreviewSale calcula o total do dia exibido no formulário antes do envio
func PreviewSale(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var input domain.SaleInput
		if err := decodeBody(r, &input); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", err)
			return
		}

		writeJSON(w, r, http.StatusOK, ws.Sales.Preview(input))
	})
}

func CreateSale(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var input domain.SaleInput
		if err := decodeBody(r, &input); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", err)
			return
		}

		writeOutcome(w, r, http.StatusCreated, ws.Sales.Create(r.Context(), input))
	})
}

func UpdateSale(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		id, err := paramID(r)
		if err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "ID da venda inválido", err)
			return
		}

		var input domain.SaleInput
		if err := decodeBody(r, &input); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", err)
			return
		}

		writeOutcome(w, r, http.StatusOK, ws.Sales.Update(r.Context(), id, input))
	})
}

func DeleteSale(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		id, err := paramID(r)
		if err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "ID da venda inválido", err)
			return
		}

		writeOutcome(w, r, http.StatusOK, ws.Sales.Delete(r.Context(), id))
	})
}
