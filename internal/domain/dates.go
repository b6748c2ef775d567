package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormatDisplayDate converte "AAAA-MM-DD" (com ou sem horário) para "DD/MM/AAAA"; vazio vira "-"
func FormatDisplayDate(value string) string {
	if value == "" {
		return "-"
	}

	parts := strings.Split(DateOnly(value), "-")
	if len(parts) != 3 {
		return value
	}

	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// ParseDate interpreta datas do backend ignorando o horário
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, DateOnly(value))
}

// FormatPeriod monta o período "AAAA-MM"
func FormatPeriod(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParsePeriod interpreta um período "AAAA-MM"
func ParsePeriod(period string) (year, month int, err error) {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), int(t.Month()), nil
}
