package domain

import (
	"time"

	"github.com/casaalves/backoffice-api/pkg/money"
)

type SalesByMethod struct {
	Card  money.Amount `json:"totalCartao"`
	Pix   money.Amount `json:"totalPix"`
	Cash  money.Amount `json:"totalEspecie"`
	Other money.Amount `json:"totalOutro"`
	Total money.Amount `json:"totalGeral"`
}

type ExpensesByCategory struct {
	Goods         money.Amount `json:"mercadorias"`
	Services      money.Amount `json:"servicos"`
	Taxes         money.Amount `json:"impostos"`
	Miscellaneous money.Amount `json:"diversos"`
	Earnings      money.Amount `json:"proventos"`
	Total         money.Amount `json:"totalGeral"`
}

type InvoicesByStatus struct {
	Pending money.Amount `json:"pendente"`
	Paid    money.Amount `json:"pago"`
	Total   money.Amount `json:"totalGeral"`
}

type WeekdaySales struct {
	Weekday string       `json:"diaSemana"`
	Total   money.Amount `json:"total"`
}

type DailyRecord struct {
	Date          string       `json:"data"`
	Weekday       string       `json:"diaSemana"`
	SalesTotal    money.Amount `json:"totalVendas"`
	ExpensesTotal money.Amount `json:"totalDespesas"`
	InvoicesTotal money.Amount `json:"totalDuplicatas"`
	NetRevenue    money.Amount `json:"faturamentoLiquido"`
}

// Dashboard é o snapshot mensal calculado pelo backend
type Dashboard struct {
	Month                  int                `json:"mes"`
	Year                   int                `json:"ano"`
	SalesTotal             money.Amount       `json:"totalVendas"`
	ExpensesTotal          money.Amount       `json:"totalDespesas"`
	InvoicesTotal          money.Amount       `json:"totalDuplicatas"`
	OperationalExpenses    money.Amount       `json:"despesasOperacionais"`
	AdministrativeExpenses money.Amount       `json:"despesasAdministrativas"`
	PersonnelExpenses      money.Amount       `json:"despesasPessoais"`
	NetRevenue             money.Amount       `json:"faturamentoLiquido"`
	ProfitMargin           money.Amount       `json:"margemLucro"`
	DailySalesAverage      money.Amount       `json:"mediaDiariaVendas"`
	DailyExpensesAverage   money.Amount       `json:"mediaDiariaDespesas"`
	DaysInMonth            int                `json:"numeroDiasMes"`
	Sales                  SalesByMethod      `json:"vendas"`
	Expenses               ExpensesByCategory `json:"despesas"`
	Invoices               InvoicesByStatus   `json:"duplicatas"`
	SalesByWeekday         []WeekdaySales     `json:"vendasPorDiaSemana"`
	Daily                  []DailyRecord      `json:"dadosDiarios"`
}

type DashboardFilters struct {
	Month int    `json:"mes,omitempty"`
	Year  int    `json:"ano,omitempty"`
	Order string `json:"order,omitempty"`
}

// Period identifica o mês de referência no formato AAAA-MM
func (f DashboardFilters) Period() string {
	return FormatPeriod(f.Year, f.Month)
}

// ChartSlice é uma fatia de gráfico de pizza
type ChartSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DailyPoint é um ponto da série diária com os valores já numéricos
type DailyPoint struct {
	Date          string  `json:"data"`
	Weekday       string  `json:"diaSemana"`
	SalesTotal    float64 `json:"totalVendasNum"`
	ExpensesTotal float64 `json:"totalDespesasNum"`
	InvoicesTotal float64 `json:"totalDuplicatasNum"`
	Profit        float64 `json:"lucroNum"`
}

type WeekdayPoint struct {
	Weekday string  `json:"diaSemana"`
	Total   float64 `json:"totalNum"`
}

// SummaryCard é um cartão de totais do topo do dashboard
type SummaryCard struct {
	Key         string  `json:"key"`
	Title       string  `json:"title"`
	Value       float64 `json:"value"`
	Formatted   string  `json:"formatted"`
	Description string  `json:"description"`
	Negative    bool    `json:"negative"`
}

// DashboardView é o snapshot transformado em séries prontas para os gráficos
type DashboardView struct {
	Month             int            `json:"mes"`
	Year              int            `json:"ano"`
	DaysInMonth       int            `json:"numeroDiasMes"`
	ProfitMargin      float64        `json:"margemLucro"`
	SummaryCards      []SummaryCard  `json:"summaryCards"`
	Daily             []DailyPoint   `json:"daily"`
	Weekly            []WeekdayPoint `json:"weekly"`
	PaymentMethods    []ChartSlice   `json:"paymentMethods"`
	ExpenseCategories []ChartSlice   `json:"expenseCategories"`
	InvoiceStatuses   []ChartSlice   `json:"invoiceStatuses"`
}

// DashboardSnapshot é um snapshot arquivado localmente por período
type DashboardSnapshot struct {
	ID        int64     `json:"id"`
	Period    string    `json:"period"`
	Month     int       `json:"mes"`
	Year      int       `json:"ano"`
	Dashboard Dashboard `json:"dashboard"`
	FetchedAt time.Time `json:"fetchedAt"`
}
