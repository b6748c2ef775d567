package casaalves

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/casaalves/backoffice-api/internal/domain"
)

// ListResult é o resultado de uma listagem paginada
type ListResult[T any] struct {
	Items      []T
	Pagination domain.Pagination
}

// MutationResult é o resultado de uma criação, edição ou exclusão
type MutationResult[T any] struct {
	Message string
	Data    *T
}

type listEnvelope[T any] struct {
	Success    *bool              `json:"success"`
	Message    string             `json:"message"`
	Data       []T                `json:"data"`
	Pagination *domain.Pagination `json:"pagination"`
}

// succeeded trata a ausência do campo success como sucesso
func (e listEnvelope[T]) succeeded() bool {
	return e.Success == nil || *e.Success
}

type mutationEnvelope[T any] struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

func (e mutationEnvelope[T]) succeeded() bool {
	return e.Success == nil || *e.Success
}

// Error é a falha de uma chamada ao backend; Status zero indica falha de transporte
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("casaalves: %s (%v)", e.Message, e.Err)
	case e.Message != "":
		return "casaalves: " + e.Message
	case e.Err != nil:
		return "casaalves: " + e.Err.Error()
	default:
		return fmt.Sprintf("casaalves: falha com status %d", e.Status)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ServerMessage é a mensagem enviada pelo backend, vazia em falhas de transporte
func (e *Error) ServerMessage() string {
	return strings.TrimSpace(e.Message)
}

// StatusOf devolve o status HTTP do backend contido em err, ou zero
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// extractMessage lê a mensagem de erro do campo informado; corpos não JSON são ignorados
func extractMessage(body []byte, field string) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	msg, _ := payload[field].(string)
	return msg
}

type tokenKey struct{}

// WithToken associa o token bearer do usuário ao contexto das chamadas
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
