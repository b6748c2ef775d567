package reporting

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/casaalves/backoffice-api/internal/domain"
)

type dailyRow struct {
	Date     string `dataframe:"data"`
	Weekday  string `dataframe:"diaSemana"`
	Sales    string `dataframe:"totalVendas"`
	Expenses string `dataframe:"totalDespesas"`
	Invoices string `dataframe:"totalDuplicatas"`
	Profit   string `dataframe:"lucro"`
}

func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// DailyCSV escreve a série diária, já ordenada, em CSV com cabeçalho
func DailyCSV(points []domain.DailyPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrEmptyDashboard
	}

	rows := make([]dailyRow, 0, len(points))
	for _, p := range points {
		rows = append(rows, dailyRow{
			Date:     p.Date,
			Weekday:  p.Weekday,
			Sales:    decimal(p.SalesTotal),
			Expenses: decimal(p.ExpensesTotal),
			Invoices: decimal(p.InvoicesTotal),
			Profit:   decimal(p.Profit),
		})
	}

	df := dataframe.LoadStructs(rows, dataframe.DetectTypes(false))
	if df.Err != nil {
		return nil, fmt.Errorf("erro ao montar a série diária: %w", df.Err)
	}

	var buf bytes.Buffer
	if err := df.WriteCSV(&buf); err != nil {
		return nil, fmt.Errorf("erro ao escrever o csv: %w", err)
	}

	return buf.Bytes(), nil
}
