package middleware

import (
	"net/http"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
	"github.com/casaalves/backoffice-api/pkg/log"
)

// AccessMiddleware restringe o acesso conforme o nível do usuário autenticado
func AccessMiddleware(allowed func(domain.AccessLevel) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.L.Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !allowed(userClaims.AccessLevel) {
				log.L.WithFields(log.Fields{
					"user_id":           userClaims.UserID,
					"user_access_level": userClaims.AccessLevel,
					"path":              r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return AccessMiddleware(domain.AccessLevel.IsAdmin)
}

// CanModify permite acesso para gerentes e administradores
func CanModify() func(http.Handler) http.Handler {
	return AccessMiddleware(domain.AccessLevel.CanModify)
}

// AllLevels permite qualquer nível de acesso conhecido
func AllLevels() func(http.Handler) http.Handler {
	return AccessMiddleware(domain.AccessLevel.Valid)
}
