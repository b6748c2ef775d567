package domain

import "github.com/casaalves/backoffice-api/pkg/money"

// Sale é o fechamento diário de vendas por forma de pagamento
type Sale struct {
	ID         int          `json:"idVenda"`
	Date       string       `json:"data"`
	Month      int          `json:"mes"`
	Year       int          `json:"ano"`
	Weekday    string       `json:"diaSemana"`
	CardTotal  money.Amount `json:"totalCartao"`
	PixTotal   money.Amount `json:"totalPix"`
	CashTotal  money.Amount `json:"totalEspecie"`
	OtherTotal money.Amount `json:"totalOutro"`
	DailyTotal money.Amount `json:"totalDia"`
}

type SaleView struct {
	Sale
	CardTotalFormatted  string `json:"totalCartaoFormatado"`
	PixTotalFormatted   string `json:"totalPixFormatado"`
	CashTotalFormatted  string `json:"totalEspecieFormatado"`
	OtherTotalFormatted string `json:"totalOutroFormatado"`
	DailyTotalFormatted string `json:"totalDiaFormatado"`
	DateFormatted       string `json:"dataFormatada"`
}

func NewSaleView(s Sale) SaleView {
	return SaleView{
		Sale:                s,
		CardTotalFormatted:  money.Format(s.CardTotal),
		PixTotalFormatted:   money.Format(s.PixTotal),
		CashTotalFormatted:  money.Format(s.CashTotal),
		OtherTotalFormatted: money.Format(s.OtherTotal),
		DailyTotalFormatted: money.Format(s.DailyTotal),
		DateFormatted:       FormatDisplayDate(s.Date),
	}
}

type SaleInput struct {
	Date       string       `json:"data"`
	CardTotal  money.Amount `json:"totalCartao"`
	PixTotal   money.Amount `json:"totalPix"`
	CashTotal  money.Amount `json:"totalEspecie"`
	OtherTotal money.Amount `json:"totalOutro"`
}

// Total é a soma das formas de pagamento, usada na pré-visualização do formulário
func (in SaleInput) Total() float64 {
	return money.Round(in.CardTotal.Float64() + in.PixTotal.Float64() + in.CashTotal.Float64() + in.OtherTotal.Float64())
}

func (in *SaleInput) Normalize() {
	in.Date = DateOnly(in.Date)
}

func (in SaleInput) Validate() error {
	verr := &ValidationError{}
	verr.requireDate("data", in.Date)
	for field, v := range map[string]money.Amount{
		"totalCartao":  in.CardTotal,
		"totalPix":     in.PixTotal,
		"totalEspecie": in.CashTotal,
		"totalOutro":   in.OtherTotal,
	} {
		if v.Float64() < 0 {
			verr.Add(field, "não pode ser negativo")
		}
	}
	return verr.Err()
}

type SaleFilters struct {
	Month     int    `json:"mes,omitempty"`
	Year      int    `json:"ano,omitempty"`
	StartDate string `json:"dataInicio,omitempty"`
	EndDate   string `json:"dataFim,omitempty"`
}

type SaleQuery struct {
	SaleFilters
	PageRequest
}
