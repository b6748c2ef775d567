package money

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	currencySymbol = "R$"
	zeroDisplay    = "R$ 0,00"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Parse converte qualquer representação de valor monetário recebida do backend
// (string no formato brasileiro, número, nil) para float64.
// Entradas inválidas viram 0, nunca um erro.
func Parse(v any) float64 {
	var n float64

	switch value := v.(type) {
	case nil:
		return 0
	case string:
		n = parseString(value)
	case *string:
		if value == nil {
			return 0
		}
		n = parseString(*value)
	case Amount:
		n = float64(value)
	case *Amount:
		if value == nil {
			return 0
		}
		n = float64(*value)
	case float64:
		n = value
	case float32:
		n = float64(value)
	case int:
		n = float64(value)
	case int32:
		n = float64(value)
	case int64:
		n = float64(value)
	case json.Number:
		n = parseString(value.String())
	default:
		return 0
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	return n
}

func parseString(s string) float64 {
	if strings.Contains(s, ",") || strings.Contains(s, currencySymbol) {
		s = strings.ReplaceAll(s, currencySymbol, "")
		s = stripSpaces(s)
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return n
}

// stripSpaces remove espaços comuns e o NBSP usado pelo Intl do navegador
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\u00a0' {
			return -1
		}
		return r
	}, s)
}

// Format exibe o valor como moeda brasileira: "R$ 1.234,56" ou "-R$ 50,00".
func Format(v any) string {
	n := math.Round(Parse(v)*100) / 100
	if n == 0 {
		return zeroDisplay
	}

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	return sign + currencySymbol + " " + printer.Sprintf("%.2f", n)
}

// Amount é um valor monetário que aceita string, número ou null no JSON
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*a = 0
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = 0
			return nil
		}
		*a = Amount(Parse(s))
		return nil
	}

	*a = Amount(Parse(json.Number(raw)))
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(Parse(a), 'f', -1, 64)), nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}

// String devolve o valor formatado em reais
func (a Amount) String() string {
	return Format(a)
}

// Round arredonda para centavos
func Round(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatPercent exibe um percentual com duas casas: "12,50%"
func FormatPercent(v any) string {
	return printer.Sprintf("%.2f", Round(Parse(v))) + "%"
}
