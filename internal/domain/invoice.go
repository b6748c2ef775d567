package domain

import (
	"encoding/json"
	"strings"

	"github.com/casaalves/backoffice-api/pkg/document"
	"github.com/casaalves/backoffice-api/pkg/money"
)

// InvoiceStatus é o status normalizado da duplicata
type InvoiceStatus string

const (
	InvoiceStatusScheduled      InvoiceStatus = "agendado"
	InvoiceStatusPaid           InvoiceStatus = "pago"
	InvoiceStatusPending        InvoiceStatus = "pendente"
	InvoiceStatusAwaitingBillet InvoiceStatus = "aguardando boleto"
)

var invoiceStatusLabels = map[InvoiceStatus]string{
	InvoiceStatusScheduled:      "Agendado",
	InvoiceStatusPaid:           "Pago",
	InvoiceStatusPending:        "Pendente",
	InvoiceStatusAwaitingBillet: "Aguardando Boleto",
}

// ParseInvoiceStatus normaliza o texto recebido; valores desconhecidos viram "pendente"
func ParseInvoiceStatus(value string) InvoiceStatus {
	status := InvoiceStatus(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := invoiceStatusLabels[status]; ok {
		return status
	}
	return InvoiceStatusPending
}

func (s InvoiceStatus) Valid() bool {
	_, ok := invoiceStatusLabels[s]
	return ok
}

func (s InvoiceStatus) Label() string {
	if label, ok := invoiceStatusLabels[s]; ok {
		return label
	}
	return invoiceStatusLabels[InvoiceStatusPending]
}

// UnmarshalJSON aceita o formato legado booleano (true = pago) e o formato texto
func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = InvoiceStatusPending
		return nil
	}

	switch v := raw.(type) {
	case bool:
		if v {
			*s = InvoiceStatusPaid
		} else {
			*s = InvoiceStatusPending
		}
	case string:
		*s = ParseInvoiceStatus(v)
	default:
		*s = InvoiceStatusPending
	}

	return nil
}

type PaymentMethod string

const (
	PaymentMethodBillet    PaymentMethod = "Boleto"
	PaymentMethodPix       PaymentMethod = "PIX"
	PaymentMethodDDA       PaymentMethod = "DDA"
	PaymentMethodDebit     PaymentMethod = "Débito"
	PaymentMethodAutomatic PaymentMethod = "Automático"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodBillet,
	PaymentMethodPix,
	PaymentMethodDDA,
	PaymentMethodDebit,
	PaymentMethodAutomatic,
}

func (p PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if p == known {
			return true
		}
	}
	return false
}

type Invoice struct {
	ID               int           `json:"idDuplicata"`
	Date             string        `json:"data"`
	Month            int           `json:"mes"`
	Year             int           `json:"ano"`
	Weekday          string        `json:"diaSemana"`
	Amount           money.Amount  `json:"valor"`
	DueDate          string        `json:"dataVencimento"`
	PaymentDate      *string       `json:"dataPagamento"`
	Status           InvoiceStatus `json:"status"`
	PaymentMethod    *string       `json:"formaPagamento"`
	SupplierName     string        `json:"nomeFornecedor"`
	SupplierDocument string        `json:"documentoFornecedor"`
	Description      string        `json:"descricao"`
}

type InvoiceView struct {
	Invoice
	AmountFormatted           string `json:"valorFormatado"`
	StatusLabel               string `json:"statusLabel"`
	SupplierDocumentFormatted string `json:"documentoFornecedorFormatado"`
	DateFormatted             string `json:"dataFormatada"`
	DueDateFormatted          string `json:"dataVencimentoFormatada"`
	PaymentDateFormatted      string `json:"dataPagamentoFormatada"`
}

func NewInvoiceView(i Invoice) InvoiceView {
	paymentDate := ""
	if i.PaymentDate != nil {
		paymentDate = *i.PaymentDate
	}

	return InvoiceView{
		Invoice:                   i,
		AmountFormatted:           money.Format(i.Amount),
		StatusLabel:               i.Status.Label(),
		SupplierDocumentFormatted: document.FormatCpfCnpj(i.SupplierDocument),
		DateFormatted:             FormatDisplayDate(i.Date),
		DueDateFormatted:          FormatDisplayDate(i.DueDate),
		PaymentDateFormatted:      FormatDisplayDate(paymentDate),
	}
}

// InvoiceInput é o payload de criação/edição; campos opcionais vazios não são enviados
type InvoiceInput struct {
	Date             string        `json:"data"`
	Amount           *money.Amount `json:"valor,omitempty"`
	DueDate          string        `json:"dataVencimento"`
	PaymentDate      string        `json:"dataPagamento,omitempty"`
	Status           string        `json:"status,omitempty"`
	PaymentMethod    PaymentMethod `json:"formaPagamento,omitempty"`
	SupplierName     string        `json:"nomeFornecedor"`
	SupplierDocument string        `json:"documentoFornecedor"`
	Description      string        `json:"descricao"`
}

// Normalize remove a máscara do documento, corta horários e descarta valor não positivo
func (in *InvoiceInput) Normalize() {
	in.Date = DateOnly(in.Date)
	in.DueDate = DateOnly(in.DueDate)
	in.PaymentDate = DateOnly(in.PaymentDate)
	in.SupplierDocument = document.UnmaskCpfCnpj(in.SupplierDocument)
	in.SupplierName = strings.TrimSpace(in.SupplierName)
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))
	if in.Amount != nil && in.Amount.Float64() <= 0 {
		in.Amount = nil
	}
}

func (in InvoiceInput) Validate() error {
	verr := &ValidationError{}
	verr.requireDate("data", in.Date)
	verr.requireDate("dataVencimento", in.DueDate)
	verr.optionalDate("dataPagamento", in.PaymentDate)
	verr.requireText("nomeFornecedor", in.SupplierName)
	if in.SupplierDocument == "" {
		verr.Add("documentoFornecedor", "campo obrigatório")
	} else if document.KindOf(in.SupplierDocument) == document.KindUnknown {
		verr.Add("documentoFornecedor", "informe um CPF (11 dígitos) ou CNPJ (14 dígitos)")
	}
	if in.Status != "" && !InvoiceStatus(in.Status).Valid() {
		verr.Add("status", "status desconhecido")
	}
	if in.PaymentMethod != "" && !in.PaymentMethod.Valid() {
		verr.Add("formaPagamento", "forma de pagamento desconhecida")
	}
	return verr.Err()
}

type InvoiceFilters struct {
	Month            int    `json:"mes,omitempty"`
	Year             int    `json:"ano,omitempty"`
	Status           string `json:"status,omitempty"`
	SupplierName     string `json:"nomeFornecedor,omitempty"`
	SupplierDocument string `json:"documentoFornecedor,omitempty"`
	PaymentMethod    string `json:"formaPagamento,omitempty"`
	StartDate        string `json:"dataInicio,omitempty"`
	EndDate          string `json:"dataFim,omitempty"`
	DueStartDate     string `json:"dataVencimentoInicio,omitempty"`
	DueEndDate       string `json:"dataVencimentoFim,omitempty"`
	PaymentStartDate string `json:"dataPagamentoInicio,omitempty"`
	PaymentEndDate   string `json:"dataPagamentoFim,omitempty"`
}

type InvoiceQuery struct {
	InvoiceFilters
	PageRequest
}
