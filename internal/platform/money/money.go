package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// Cents es un monto en unidades menores de la moneda. Toda la aritmética de
// topes, totales y reembolsos se hace en enteros; decimal solo aparece en el borde JSON.
type Cents int64

var ErrInvalid = errors.New("amount must be a finite number with at most two decimals")

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
	hundred  = decimal.NewFromInt(100)
)

// FromFloat convierte un monto en unidad mayor (tal como llega en JSON) a centavos exactos.
// NewFromFloat usa la representación decimal más corta, así 0.1 es exactamente 10 centavos.
// Más de dos decimales es error, no se redondea.
func FromFloat(v float64) (Cents, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalid
	}
	d := decimal.NewFromFloat(v).Shift(2)
	if !d.IsInteger() || d.GreaterThan(maxCents) || d.LessThan(minCents) {
		return 0, ErrInvalid
	}
	return Cents(d.IntPart()), nil
}

// Decimal devuelve el monto en unidad mayor.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Float64 es para serializar: el float más cercano al valor exacto (30 -> 0.3).
func (c Cents) Float64() float64 {
	return c.Decimal().InexactFloat64()
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Percent es 100*part/whole acotado a [0, 100]; whole <= 0 da 0.
func Percent(part, whole Cents) float64 {
	if whole <= 0 || part <= 0 {
		return 0
	}
	if part >= whole {
		return 100
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole))).InexactFloat64()
}
