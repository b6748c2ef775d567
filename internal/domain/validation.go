package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrValidation = errors.New("dados inválidos")

// FieldError descreve um campo rejeitado na validação
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todos os campos inválidos de um payload
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Err devolve nil quando nenhum campo foi rejeitado
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) requireDate(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "campo obrigatório")
		return
	}
	e.optionalDate(field, value)
}

func (e *ValidationError) optionalDate(field, value string) {
	if value == "" {
		return
	}
	if _, err := time.Parse(time.DateOnly, DateOnly(value)); err != nil {
		e.Add(field, "data inválida, use o formato AAAA-MM-DD")
	}
}

func (e *ValidationError) requireText(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "campo obrigatório")
	}
}

// DateOnly descarta a parte de horário de datas ISO vindas do backend
func DateOnly(value string) string {
	if i := strings.IndexByte(value, 'T'); i >= 0 {
		return value[:i]
	}
	return value
}
