package handler

import (
	"net/http"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/invoicing"
	"github.com/casaalves/backoffice-api/internal/usecases/workspace"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
)

func ListInvoices(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var query domain.InvoiceQuery
		if err := decodeQuery(r.URL.Query(), &query); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		state := ws.Invoices.Load(r.Context(), query)
		writeState(w, r, state, state.Err, state.Superseded)
	})
}

func CreateInvoice(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var input domain.InvoiceInput
		if err := decodeBody(r, &input); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", err)
			return
		}

		writeOutcome(w, r, http.StatusCreated, ws.Invoices.Create(r.Context(), input))
	})
}

func UpdateInvoice(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		id, err := paramID(r)
		if err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "ID da duplicata inválido", err)
			return
		}

		var input domain.InvoiceInput
		if err := decodeBody(r, &input); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", err)
			return
		}

		writeOutcome(w, r, http.StatusOK, ws.Invoices.Update(r.Context(), id, input))
	})
}

func DeleteInvoice(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		id, err := paramID(r)
		if err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "ID da duplicata inválido", err)
			return
		}

		writeOutcome(w, r, http.StatusOK, ws.Invoices.Delete(r.Context(), id))
	})
}

func ExportInvoices(workspaces Workspaces, recorder ExportRecorder) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var filters domain.InvoiceFilters
		if err := decodeQuery(r.URL.Query(), &filters); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		download, err := ws.Invoices.Export(r.Context(), filters)
		deliverExport(w, r, recorder, invoicing.Resource, download, err)
	})
}
