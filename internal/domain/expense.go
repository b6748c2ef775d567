package domain

import (
	"github.com/casaalves/backoffice-api/pkg/money"
)

type ExpenseType string

const (
	ExpenseTypeGoodsPurchase      ExpenseType = "Aquisição Mercadorias"
	ExpenseTypeSuppliesPurchase   ExpenseType = "Aquisição Suprimentos"
	ExpenseTypeWaterAndSewage     ExpenseType = "Água e Esgoto"
	ExpenseTypeElectricity        ExpenseType = "Energia Elétrica"
	ExpenseTypeGasAndFuel         ExpenseType = "Gás e Combustível"
	ExpenseTypeTaxesAndFees       ExpenseType = "Impostos e Taxas"
	ExpenseTypePartnerWithdrawal  ExpenseType = "Retirada de Sócios"
	ExpenseTypeSalaries           ExpenseType = "Salários e Proventos"
	ExpenseTypeMaintenanceService ExpenseType = "Serviços de Manutenção"
	ExpenseTypeOtherServices      ExpenseType = "Serviços Diversos"
	ExpenseTypeMobilePhone        ExpenseType = "Telefone Celular"
)

const (
	CategoryGoods       = "Mercadorias"
	CategoryMaintenance = "Manutenção"
	CategoryServices    = "Serviços"
	CategoryTaxes       = "Impostos"
	CategoryEarnings    = "Proventos"
	CategoryMiscellany  = "Diversas"
)

// ExpenseTypes em ordem alfabética, como exibidos no formulário
var ExpenseTypes = []ExpenseType{
	ExpenseTypeGoodsPurchase,
	ExpenseTypeSuppliesPurchase,
	ExpenseTypeWaterAndSewage,
	ExpenseTypeElectricity,
	ExpenseTypeGasAndFuel,
	ExpenseTypeTaxesAndFees,
	ExpenseTypePartnerWithdrawal,
	ExpenseTypeSalaries,
	ExpenseTypeMaintenanceService,
	ExpenseTypeOtherServices,
	ExpenseTypeMobilePhone,
}

// CategoryForType deriva a categoria a partir do tipo da despesa
func CategoryForType(tipo ExpenseType) string {
	switch tipo {
	case ExpenseTypeGoodsPurchase, ExpenseTypeSuppliesPurchase:
		return CategoryGoods
	case ExpenseTypeMaintenanceService:
		return CategoryMaintenance
	case ExpenseTypeWaterAndSewage, ExpenseTypeElectricity, ExpenseTypeGasAndFuel,
		ExpenseTypeMobilePhone, ExpenseTypeOtherServices:
		return CategoryServices
	case ExpenseTypeTaxesAndFees:
		return CategoryTaxes
	case ExpenseTypePartnerWithdrawal, ExpenseTypeSalaries:
		return CategoryEarnings
	default:
		return CategoryMiscellany
	}
}

func (t ExpenseType) Valid() bool {
	for _, known := range ExpenseTypes {
		if t == known {
			return true
		}
	}
	return false
}

type ExpenseTypeOption struct {
	Type     ExpenseType `json:"tipo"`
	Category string      `json:"categoria"`
}

func ExpenseTypeOptions() []ExpenseTypeOption {
	options := make([]ExpenseTypeOption, 0, len(ExpenseTypes))
	for _, t := range ExpenseTypes {
		options = append(options, ExpenseTypeOption{Type: t, Category: CategoryForType(t)})
	}
	return options
}

type Expense struct {
	ID          int          `json:"idDespesa"`
	Date        string       `json:"data"`
	Month       int          `json:"mes"`
	Year        int          `json:"ano"`
	Weekday     string       `json:"diaSemana"`
	Type        ExpenseType  `json:"tipo"`
	Category    string       `json:"categoria"`
	Description string       `json:"descricao"`
	Amount      money.Amount `json:"valor"`
}

// ExpenseView é a despesa pronta para exibição
type ExpenseView struct {
	Expense
	AmountFormatted string `json:"valorFormatado"`
	DateFormatted   string `json:"dataFormatada"`
}

func NewExpenseView(e Expense) ExpenseView {
	return ExpenseView{
		Expense:         e,
		AmountFormatted: money.Format(e.Amount),
		DateFormatted:   FormatDisplayDate(e.Date),
	}
}

// ExpenseInput é o payload de criação/edição de despesa
type ExpenseInput struct {
	Date        string       `json:"data"`
	Type        ExpenseType  `json:"tipo"`
	Category    string       `json:"categoria"`
	Description string       `json:"descricao"`
	Amount      money.Amount `json:"valor"`
}

// Normalize preenche a categoria a partir do tipo e corta o horário da data
func (in *ExpenseInput) Normalize() {
	in.Date = DateOnly(in.Date)
	if in.Type != "" {
		in.Category = CategoryForType(in.Type)
	}
}

func (in ExpenseInput) Validate() error {
	verr := &ValidationError{}
	verr.requireDate("data", in.Date)
	if in.Type == "" {
		verr.Add("tipo", "campo obrigatório")
	} else if !in.Type.Valid() {
		verr.Add("tipo", "tipo de despesa desconhecido")
	}
	verr.requireText("descricao", in.Description)
	if in.Amount.Float64() <= 0 {
		verr.Add("valor", "deve ser maior que zero")
	}
	return verr.Err()
}

type ExpenseFilters struct {
	Month     int    `json:"mes,omitempty"`
	Year      int    `json:"ano,omitempty"`
	Type      string `json:"tipo,omitempty"`
	Category  string `json:"categoria,omitempty"`
	StartDate string `json:"dataInicio,omitempty"`
	EndDate   string `json:"dataFim,omitempty"`
}

type ExpenseQuery struct {
	ExpenseFilters
	PageRequest
}
