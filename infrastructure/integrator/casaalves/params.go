package casaalves

import (
	"net/url"
	"strconv"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/pkg/document"
)

// params monta a query string omitindo valores vazios, como o axios faz com undefined
type params url.Values

func (p params) str(key, value string) params {
	if value != "" {
		url.Values(p).Set(key, value)
	}
	return p
}

func (p params) num(key string, value int) params {
	if value != 0 {
		url.Values(p).Set(key, strconv.Itoa(value))
	}
	return p
}

func (p params) page(req domain.PageRequest) params {
	return p.num("page", req.Page).num("limit", req.Limit)
}

func (p params) values() url.Values {
	return url.Values(p)
}

func dashboardParams(f domain.DashboardFilters) params {
	return params{}.num("mes", f.Month).num("ano", f.Year).str("order", f.Order)
}

func expenseParams(f domain.ExpenseFilters) params {
	return params{}.
		num("mes", f.Month).
		num("ano", f.Year).
		str("tipo", f.Type).
		str("categoria", f.Category).
		str("dataInicio", f.StartDate).
		str("dataFim", f.EndDate)
}

// invoiceParams envia o documento do fornecedor sem máscara
func invoiceParams(f domain.InvoiceFilters) params {
	return params{}.
		num("mes", f.Month).
		num("ano", f.Year).
		str("status", f.Status).
		str("nomeFornecedor", f.SupplierName).
		str("documentoFornecedor", document.UnmaskCpfCnpj(f.SupplierDocument)).
		str("formaPagamento", f.PaymentMethod).
		str("dataInicio", f.StartDate).
		str("dataFim", f.EndDate).
		str("dataVencimentoInicio", f.DueStartDate).
		str("dataVencimentoFim", f.DueEndDate).
		str("dataPagamentoInicio", f.PaymentStartDate).
		str("dataPagamentoFim", f.PaymentEndDate)
}

func saleParams(f domain.SaleFilters) params {
	return params{}.
		num("mes", f.Month).
		num("ano", f.Year).
		str("dataInicio", f.StartDate).
		str("dataFim", f.EndDate)
}

func userParams(f domain.UserFilters) params {
	return params{}.str("nome", f.Name).num("nivelAcesso", f.AccessLevel)
}

func logParams(f domain.LogFilters) params {
	return params{}.
		num("idUsuario", f.UserID).
		str("acao", f.Action).
		str("dataInicio", f.StartDate).
		str("dataFim", f.EndDate)
}
