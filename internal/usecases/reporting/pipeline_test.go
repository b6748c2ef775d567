package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaalves/backoffice-api/internal/domain"
)

func sampleDashboard() domain.Dashboard {
	return domain.Dashboard{
		Month:                3,
		Year:                 2025,
		SalesTotal:           15000,
		ExpensesTotal:        9000,
		InvoicesTotal:        2500,
		NetRevenue:           -500.25,
		ProfitMargin:         -3.5,
		DailySalesAverage:    500,
		DailyExpensesAverage: 300,
		DaysInMonth:          31,
		Sales:                domain.SalesByMethod{Card: 10000, Pix: 5000, Cash: 0, Other: 0, Total: 15000},
		Expenses:             domain.ExpensesByCategory{Goods: 6000, Services: 2000, Taxes: 1000, Miscellaneous: 0, Earnings: -10},
		Invoices:             domain.InvoicesByStatus{Pending: 2500, Paid: 0},
		SalesByWeekday: []domain.WeekdaySales{
			{Weekday: "Segunda", Total: 2000},
			{Weekday: "Terça", Total: 1500.5},
		},
		Daily: []domain.DailyRecord{
			{Date: "2025-03-03", Weekday: "Segunda", SalesTotal: 700, ExpensesTotal: 100, InvoicesTotal: 0, NetRevenue: 600},
			{Date: "2025-03-01T00:00:00.000Z", Weekday: "Sábado", SalesTotal: 500, ExpensesTotal: 900, InvoicesTotal: 50, NetRevenue: -400},
			{Date: "2025-03-02", Weekday: "Domingo", SalesTotal: 0, ExpensesTotal: 0, InvoicesTotal: 0, NetRevenue: 0},
		},
	}
}

func TestBuildView_SerieDiariaOrdenada(t *testing.T) {
	view := BuildView(sampleDashboard())

	require.Len(t, view.Daily, 3)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03"},
		[]string{view.Daily[0].Date, view.Daily[1].Date, view.Daily[2].Date})
	assert.Equal(t, domain.DailyPoint{
		Date:          "2025-03-01",
		Weekday:       "Sábado",
		SalesTotal:    500,
		ExpensesTotal: 900,
		InvoicesTotal: 50,
		Profit:        -400,
	}, view.Daily[0])
}

func TestBuildView_FatiasDePizza(t *testing.T) {
	tests := []struct {
		name string
		got  func(v domain.DashboardView) []domain.ChartSlice
		want []domain.ChartSlice
	}{
		{
			name: "Deve excluir formas de pagamento zeradas",
			got:  func(v domain.DashboardView) []domain.ChartSlice { return v.PaymentMethods },
			want: []domain.ChartSlice{{Name: "Cartão", Value: 10000}, {Name: "Pix", Value: 5000}},
		},
		{
			name: "Deve excluir categorias zeradas ou negativas",
			got:  func(v domain.DashboardView) []domain.ChartSlice { return v.ExpenseCategories },
			want: []domain.ChartSlice{{Name: "Mercadorias", Value: 6000}, {Name: "Serviços", Value: 2000}, {Name: "Impostos", Value: 1000}},
		},
		{
			name: "Deve manter apenas o status com valor",
			got:  func(v domain.DashboardView) []domain.ChartSlice { return v.InvoiceStatuses },
			want: []domain.ChartSlice{{Name: "Pendente", Value: 2500}},
		},
	}

	view := BuildView(sampleDashboard())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got(view))
		})
	}
}

func TestBuildView_SemDados(t *testing.T) {
	view := BuildView(domain.Dashboard{})

	assert.Empty(t, view.Daily)
	assert.NotNil(t, view.Daily)
	assert.Empty(t, view.PaymentMethods)
	assert.NotNil(t, view.PaymentMethods)
	assert.Len(t, view.SummaryCards, 4)
}

func TestBuildView_CartoesDeResumo(t *testing.T) {
	view := BuildView(sampleDashboard())

	require.Len(t, view.SummaryCards, 4)
	assert.Equal(t, domain.SummaryCard{
		Key:         "faturamentoBruto",
		Title:       "Faturamento Bruto",
		Value:       15000,
		Formatted:   "R$ 15.000,00",
		Description: "Média diária: R$ 500,00",
	}, view.SummaryCards[0])
	assert.Equal(t, domain.SummaryCard{
		Key:         "lucroLiquido",
		Title:       "Lucro Líquido",
		Value:       -500.25,
		Formatted:   "-R$ 500,25",
		Description: "Margem: -3,50%",
		Negative:    true,
	}, view.SummaryCards[3])
	assert.Equal(t, []domain.WeekdayPoint{{Weekday: "Segunda", Total: 2000}, {Weekday: "Terça", Total: 1500.5}}, view.Weekly)
}
