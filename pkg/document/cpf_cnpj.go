package document

import "strings"

const (
	cpfLength  = 11
	cnpjLength = 14
)

type Kind string

const (
	KindUnknown Kind = ""
	KindCPF     Kind = "CPF"
	KindCNPJ    Kind = "CNPJ"
)

// Digits remove tudo que não for dígito
func Digits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCpfCnpj aplica a máscara de CPF (até 11 dígitos) ou CNPJ (acima de 11).
// A máscara é progressiva, então funciona com entradas parciais.
//
//	CPF:  000.000.000-00
//	CNPJ: 00.000.000/0000-00
func FormatCpfCnpj(value string) string {
	numbers := Digits(value)
	if numbers == "" {
		return ""
	}

	if len(numbers) <= cpfLength {
		return formatCPF(numbers)
	}

	return formatCNPJ(numbers)
}

func formatCPF(d string) string {
	switch n := len(d); {
	case n <= 3:
		return d
	case n <= 6:
		return d[:3] + "." + d[3:]
	case n <= 9:
		return d[:3] + "." + d[3:6] + "." + d[6:]
	default:
		return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
	}
}

func formatCNPJ(d string) string {
	rest := d[8:]

	// o sufixo "-DD" só aparece com pelo menos 5 dígitos após a barra
	if k := min(len(rest), 6); k >= 5 {
		cut := len(rest) - k + 4
		rest = rest[:cut] + "-" + rest[cut:]
	}

	return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + rest
}

// MaskCpfCnpj é a variante usada durante a digitação: limita a 14 dígitos antes de formatar
func MaskCpfCnpj(value string) string {
	numbers := Digits(value)
	if len(numbers) > cnpjLength {
		numbers = numbers[:cnpjLength]
	}
	return FormatCpfCnpj(numbers)
}

// UnmaskCpfCnpj devolve apenas os dígitos, formato esperado pelo backend
func UnmaskCpfCnpj(value string) string {
	return Digits(value)
}

// KindOf identifica o tipo de documento pelo número de dígitos
func KindOf(value string) Kind {
	switch len(Digits(value)) {
	case cpfLength:
		return KindCPF
	case cnpjLength:
		return KindCNPJ
	default:
		return KindUnknown
	}
}
