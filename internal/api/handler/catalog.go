package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
	"github.com/casaalves/backoffice-api/pkg/log"
)

const maxExportHistory = 100

// ExportHistory lista as exportações registradas
type ExportHistory interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
}

// ListAccessLevels devolve os níveis de acesso com nome e cor do badge
func ListAccessLevels() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.AccessLevels())
	}
}

// ListExpenseTypes devolve os tipos de despesa e a categoria derivada de cada um
func ListExpenseTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.ExpenseTypeOptions())
	}
}

func ListExports(history ExportHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := domain.DefaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				badRequest(w, r, apiErrors.ErrInvalidFormat, "Limite inválido", err)
				return
			}
			limit = min(parsed, maxExportHistory)
		}

		records, err := history.ListRecent(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao listar exportações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar exportações", nil)
			return
		}
		if records == nil {
			records = []*domain.ExportRecord{}
		}

		writeJSON(w, r, http.StatusOK, records)
	}
}
