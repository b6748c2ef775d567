package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "Formato brasileiro com símbolo", input: "R$ 1.234,56", want: 1234.56},
		{name: "Formato brasileiro sem símbolo", input: "1.234,56", want: 1234.56},
		{name: "Decimal simples", input: "1234.56", want: 1234.56},
		{name: "Vírgula decimal sem milhar", input: "150,00", want: 150},
		{name: "Negativo com símbolo", input: "-R$ 50,00", want: -50},
		{name: "Espaço não separável", input: "R$\u00a01.000,10", want: 1000.10},
		{name: "Negativo com espaços internos", input: "- R$ 1.234,56", want: -1234.56},
		{name: "Negativo após o símbolo", input: "R$ -50,00", want: -50},
		{name: "Negativo com NBSP", input: "-R$\u00a050,00", want: -50},
		{name: "Tabulação entre símbolo e valor", input: "R$\t7,25", want: 7.25},
		{name: "Número float", input: 99.9, want: 99.9},
		{name: "Número inteiro", input: 42, want: 42},
		{name: "json.Number", input: json.Number("12.5"), want: 12.5},
		{name: "Ponteiro para string", input: strPtr("R$ 10,00"), want: 10},
		{name: "Ponteiro nulo", input: (*string)(nil), want: 0},
		{name: "Nil", input: nil, want: 0},
		{name: "String vazia", input: "", want: 0},
		{name: "Texto inválido", input: "abc", want: 0},
		{name: "NaN textual", input: "NaN", want: 0},
		{name: "Infinito textual", input: "Inf", want: 0},
		{name: "Tipo não suportado", input: struct{}{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Parse(tt.input), 0.000001)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "Milhar e centavos", input: "R$ 1.234,56", want: "R$ 1.234,56"},
		{name: "Decimal simples", input: "1234.56", want: "R$ 1.234,56"},
		{name: "Negativo", input: -50, want: "-R$ 50,00"},
		{name: "String vazia", input: "", want: "R$ 0,00"},
		{name: "Nil", input: nil, want: "R$ 0,00"},
		{name: "Inválido", input: "abc", want: "R$ 0,00"},
		{name: "Milhões", input: 1234567.8, want: "R$ 1.234.567,80"},
		{name: "Arredonda para centavos", input: 10.006, want: "R$ 10,01"},
		{name: "Negativo que arredonda para zero", input: -0.001, want: "R$ 0,00"},
		{name: "Vírgula decimal", input: "150,00", want: "R$ 150,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12,50%", FormatPercent(12.5))
	assert.Equal(t, "-3,33%", FormatPercent("-3,333"))
	assert.Equal(t, "0,00%", FormatPercent(nil))
}

func TestFormat_SignAndMagnitudeRoundTrip(t *testing.T) {
	for _, v := range []float64{-50, -1234.56, 0.01, 987654.32} {
		assert.InDelta(t, v, Parse(Format(v)), 0.000001)
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var payload struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
		D Amount `json:"d"`
	}

	err := json.Unmarshal([]byte(`{"a":"R$ 1.234,56","b":150.5,"c":null,"d":"abc"}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, 1234.56, payload.A.Float64())
	assert.Equal(t, 150.5, payload.B.Float64())
	assert.Equal(t, 0.0, payload.C.Float64())
	assert.Equal(t, 0.0, payload.D.Float64())
	assert.Equal(t, "R$ 1.234,56", payload.A.String())
}

func TestAmount_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Valor Amount `json:"valor"`
	}{Valor: Amount(150)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"valor":150}`, string(out))
}
