package handler

import (
	"context"
	"net/http"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/fetching"
	"github.com/casaalves/backoffice-api/internal/usecases/workspace"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
	"github.com/casaalves/backoffice-api/pkg/log"
	"github.com/casaalves/backoffice-api/pkg/middleware"
)

// Workspaces devolve as telas do usuário autenticado
type Workspaces interface {
	Get(userID int) *workspace.Workspace
}

// ExportRecorder registra o histórico de exportações
type ExportRecorder interface {
	Create(ctx context.Context, record *domain.ExportRecord) error
}

// withWorkspace resolve o workspace do usuário do token antes de chamar fn
func withWorkspace(workspaces Workspaces, fn func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}
		fn(w, r, workspaces.Get(claims.UserID))
	}
}

func writeOutcome[T, V any](w http.ResponseWriter, r *http.Request, status int, outcome fetching.Outcome[T, V]) {
	if outcome.Failed() {
		writeFailure(w, r, outcome.Err)
		return
	}
	writeJSON(w, r, status, outcome)
}

// deliverExport grava o histórico e devolve o arquivo; falha no histórico não impede o download
func deliverExport(w http.ResponseWriter, r *http.Request, recorder ExportRecorder, resource string, download *domain.Download, err error) {
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	if recorder != nil {
		record := &domain.ExportRecord{
			Resource:  resource,
			Filename:  download.Filename,
			SizeBytes: len(download.Body),
		}
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			record.UserID = claims.UserID
		}
		if err := recorder.Create(r.Context(), record); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("resource", resource).Warn("Erro ao registrar exportação")
		}
	}

	writeDownload(w, download)
}
