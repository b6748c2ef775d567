package reporting

import (
	"slices"
	"strings"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/pkg/money"
)

// BuildView transforma o snapshot do backend nas séries exibidas pelos gráficos
func BuildView(d domain.Dashboard) domain.DashboardView {
	return domain.DashboardView{
		Month:             d.Month,
		Year:              d.Year,
		DaysInMonth:       d.DaysInMonth,
		ProfitMargin:      d.ProfitMargin.Float64(),
		SummaryCards:      summaryCards(d),
		Daily:             dailySeries(d.Daily),
		Weekly:            weeklySeries(d.SalesByWeekday),
		PaymentMethods:    paymentMethods(d.Sales),
		ExpenseCategories: expenseCategories(d.Expenses),
		InvoiceStatuses:   invoiceStatuses(d.Invoices),
	}
}

// dailySeries ordena por data crescente
func dailySeries(records []domain.DailyRecord) []domain.DailyPoint {
	points := make([]domain.DailyPoint, 0, len(records))
	for _, r := range records {
		points = append(points, domain.DailyPoint{
			Date:          domain.DateOnly(r.Date),
			Weekday:       r.Weekday,
			SalesTotal:    money.Parse(r.SalesTotal),
			ExpensesTotal: money.Parse(r.ExpensesTotal),
			InvoicesTotal: money.Parse(r.InvoicesTotal),
			Profit:        money.Parse(r.NetRevenue),
		})
	}

	slices.SortStableFunc(points, func(a, b domain.DailyPoint) int {
		return strings.Compare(a.Date, b.Date)
	})

	return points
}

func weeklySeries(items []domain.WeekdaySales) []domain.WeekdayPoint {
	points := make([]domain.WeekdayPoint, 0, len(items))
	for _, item := range items {
		points = append(points, domain.WeekdayPoint{
			Weekday: item.Weekday,
			Total:   money.Parse(item.Total),
		})
	}
	return points
}

func paymentMethods(s domain.SalesByMethod) []domain.ChartSlice {
	return positiveSlices(
		domain.ChartSlice{Name: "Cartão", Value: money.Parse(s.Card)},
		domain.ChartSlice{Name: "Pix", Value: money.Parse(s.Pix)},
		domain.ChartSlice{Name: "Espécie", Value: money.Parse(s.Cash)},
		domain.ChartSlice{Name: "Outro", Value: money.Parse(s.Other)},
	)
}

func expenseCategories(e domain.ExpensesByCategory) []domain.ChartSlice {
	return positiveSlices(
		domain.ChartSlice{Name: "Mercadorias", Value: money.Parse(e.Goods)},
		domain.ChartSlice{Name: "Serviços", Value: money.Parse(e.Services)},
		domain.ChartSlice{Name: "Impostos", Value: money.Parse(e.Taxes)},
		domain.ChartSlice{Name: "Diversos", Value: money.Parse(e.Miscellaneous)},
		domain.ChartSlice{Name: "Proventos", Value: money.Parse(e.Earnings)},
	)
}

func invoiceStatuses(i domain.InvoicesByStatus) []domain.ChartSlice {
	return positiveSlices(
		domain.ChartSlice{Name: "Pendente", Value: money.Parse(i.Pending)},
		domain.ChartSlice{Name: "Pago", Value: money.Parse(i.Paid)},
	)
}

// positiveSlices remove fatias zeradas ou negativas do gráfico de pizza
func positiveSlices(items ...domain.ChartSlice) []domain.ChartSlice {
	out := make([]domain.ChartSlice, 0, len(items))
	for _, s := range items {
		if s.Value > 0 {
			out = append(out, s)
		}
	}
	return out
}

func summaryCards(d domain.Dashboard) []domain.SummaryCard {
	return []domain.SummaryCard{
		card("faturamentoBruto", "Faturamento Bruto", d.SalesTotal, "Média diária: "+money.Format(d.DailySalesAverage)),
		card("despesasTotais", "Despesas Totais", d.ExpensesTotal, "Média diária: "+money.Format(d.DailyExpensesAverage)),
		card("duplicatas", "Duplicatas", d.InvoicesTotal, "Total Pendente"),
		card("lucroLiquido", "Lucro Líquido", d.NetRevenue, "Margem: "+money.FormatPercent(d.ProfitMargin)),
	}
}

func card(key, title string, value money.Amount, description string) domain.SummaryCard {
	v := money.Parse(value)
	return domain.SummaryCard{
		Key:         key,
		Title:       title,
		Value:       v,
		Formatted:   money.Format(v),
		Description: description,
		Negative:    v < 0,
	}
}
