package utils

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// decimalPrecision segue a precisão decimal128 (34 dígitos)
const decimalPrecision = 34

// Sum acumula valores float64 em aritmética decimal exata, de modo que a
// ordem das parcelas não altera o resultado.
type Sum struct {
	value apd.Decimal
}

func decimalContext() *apd.Context {
	return apd.BaseContext.WithPrecision(decimalPrecision)
}

// NewSum cria uma soma a partir de um único valor
func NewSum(f float64) Sum {
	return Sum{}.Add(f)
}

// Add retorna uma nova soma com f acrescentado. NaN e Inf são ignorados.
func (s Sum) Add(f float64) Sum {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}

	var operand apd.Decimal
	if _, err := operand.SetFloat64(f); err != nil {
		return s
	}

	var result apd.Decimal
	decimalContext().Add(&result, &s.value, &operand)
	return Sum{value: result}
}

// Plus retorna a soma de s e other
func (s Sum) Plus(other Sum) Sum {
	var result apd.Decimal
	decimalContext().Add(&result, &s.value, &other.value)
	return Sum{value: result}
}

// IsPositive indica se a soma é estritamente maior que zero
func (s Sum) IsPositive() bool {
	return s.value.Sign() > 0
}

// Cmp compara duas somas: -1 se s < other, 0 se iguais, 1 se s > other
func (s Sum) Cmp(other Sum) int {
	return s.value.Cmp(&other.value)
}

func (s Sum) Float64() float64 {
	f, err := s.value.Float64()
	if err != nil {
		return 0
	}
	return f
}

func (s Sum) String() string {
	return s.value.Text('f')
}

// Percentage calcula round(part/total*1000)/10 com arredondamento half-up
// sobre o valor por mil. Retorna 0 quando total não é positivo e limita o
// resultado a [0, 100] quando part é negativo ou maior que total.
func Percentage(part, total Sum) float64 {
	if !total.IsPositive() {
		return 0
	}

	ctx := decimalContext()
	ctx.Rounding = apd.RoundHalfUp

	var thousand, scaled, ratio, perMille apd.Decimal
	thousand.SetInt64(1000)
	ctx.Mul(&scaled, &part.value, &thousand)
	ctx.Quo(&ratio, &scaled, &total.value)
	ctx.Quantize(&perMille, &ratio, 0)

	n, err := perMille.Int64()
	if err != nil {
		return 0
	}

	return float64(min(max(n, 0), 1000)) / 10
}
