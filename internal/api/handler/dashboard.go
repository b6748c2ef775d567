package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/reporting"
	"github.com/casaalves/backoffice-api/internal/usecases/workspace"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
)

// ArchiveReader consulta os snapshots mensais arquivados
type ArchiveReader interface {
	Periods(ctx context.Context) ([]string, error)
	View(ctx context.Context, period string) (*reporting.ArchivedView, error)
}

// GetDashboard busca o dashboard do mês e devolve os dados já prontos para os gráficos
func GetDashboard(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var filters domain.DashboardFilters
		if err := decodeQuery(r.URL.Query(), &filters); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		state := ws.Dashboard.Load(r.Context(), filters)
		writeState(w, r, state, state.Err, state.Superseded)
	})
}

func ExportDashboard(workspaces Workspaces, recorder ExportRecorder) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var filters domain.DashboardFilters
		if err := decodeQuery(r.URL.Query(), &filters); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		download, err := ws.Dashboard.Export(r.Context(), filters)
		deliverExport(w, r, recorder, reporting.Resource, download, err)
	})
}

func ListArchivedPeriods(archive ArchiveReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		periods, err := archive.Periods(r.Context())
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, periods)
	}
}

func GetArchivedDashboard(archive ArchiveReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		view, err := archive.View(r.Context(), period)
		if err != nil {
			writeFailure(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	}
}
