package handler

import (
	"net/http"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/auditing"
	"github.com/casaalves/backoffice-api/internal/usecases/workspace"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
)

func ListLogs(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var query domain.LogQuery
		if err := decodeQuery(r.URL.Query(), &query); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		state := ws.Logs.Load(r.Context(), query)
		writeState(w, r, state, state.Err, state.Superseded)
	})
}

func ExportLogs(workspaces Workspaces, recorder ExportRecorder) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var filters domain.LogFilters
		if err := decodeQuery(r.URL.Query(), &filters); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		download, err := ws.Logs.Export(r.Context(), filters)
		deliverExport(w, r, recorder, auditing.Resource, download, err)
	})
}
