package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod    = errors.New("período inválido")
	ErrSnapshotNotFound = errors.New("snapshot não encontrado")
	ErrEmptyDashboard   = errors.New("nenhum dado diário para exportar")
	ErrArchiveRead      = errors.New("erro ao ler o arquivo de snapshots")
)

// ReportError é um erro com contexto adicional para o dashboard
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Period  string // Período envolvido (quando aplicável)
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code, period, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Period:  period,
		Details: details,
	}
}
