package handler

import (
	"net/http"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/internal/usecases/workspace"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
	"github.com/casaalves/backoffice-api/pkg/middleware"
)

// GetMe retorna os dados do token do usuário autenticado
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.NewMe(claims))
	}
}

func ListUsers(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var query domain.UserQuery
		if err := decodeQuery(r.URL.Query(), &query); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "Filtros inválidos", err)
			return
		}

		state := ws.Users.Load(r.Context(), query)
		writeState(w, r, state, state.Err, state.Superseded)
	})
}

func CreateUser(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		var input domain.UserInput
		if err := decodeBody(r, &input); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", err)
			return
		}

		writeOutcome(w, r, http.StatusCreated, ws.Users.Create(r.Context(), input))
	})
}

// UpdateUser atualiza um usuário; senha vazia mantém a atual
func UpdateUser(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		id, err := paramID(r)
		if err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "ID do usuário inválido", err)
			return
		}

		var input domain.UserInput
		if err := decodeBody(r, &input); err != nil {
			badRequest(w, r, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", err)
			return
		}

		writeOutcome(w, r, http.StatusOK, ws.Users.Update(r.Context(), id, input))
	})
}

func DeleteUser(workspaces Workspaces) http.HandlerFunc {
	return withWorkspace(workspaces, func(w http.ResponseWriter, r *http.Request, ws *workspace.Workspace) {
		id, err := paramID(r)
		if err != nil {
			badRequest(w, r, apiErrors.ErrInvalidFormat, "ID do usuário inválido", err)
			return
		}

		writeOutcome(w, r, http.StatusOK, ws.Users.Delete(r.Context(), id))
	})
}
