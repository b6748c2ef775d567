package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrMissingToken          = errors.New("token ausente")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
)

// clientMessages é o texto devolvido ao front; o motivo detalhado fica só no log
var clientMessages = map[error]string{
	ErrMissingToken:          "Faça login para continuar",
	ErrInvalidToken:          "Sessão inválida",
	ErrExpiredToken:          "Sessão expirada, faça login novamente",
	ErrInsufficientPrivilege: "Seu nível de acesso não permite esta operação",
}

// AuthError carrega o código da API que o middleware deve responder
type AuthError struct {
	Err    error
	Code   string
	UserID int
	Reason string
}

func (e *AuthError) Error() string {
	if e.Reason == "" {
		return e.Err.Error()
	}
	if e.UserID > 0 {
		return fmt.Sprintf("%s: %s (usuário %d)", e.Err, e.Reason, e.UserID)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ClientMessage é a mensagem segura para exibir ao usuário
func (e *AuthError) ClientMessage() string {
	if msg, ok := clientMessages[e.Err]; ok {
		return msg
	}
	return clientMessages[ErrInvalidToken]
}

func IsAuthorizationError(err error) bool {
	for base := range clientMessages {
		if errors.Is(err, base) {
			return true
		}
	}
	return false
}

func NewAuthError(baseErr error, code string, reason string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Reason: reason}
}

// NewUserAuthError é usado quando o token é válido mas o usuário não pode prosseguir
func NewUserAuthError(baseErr error, code string, userID int, reason string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, UserID: userID, Reason: reason}
}
