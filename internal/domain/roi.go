package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// CalculateROI calcula o ROI percentual de uma campanha.
// Gasto ausente, zero ou negativo, ou receita ausente, resultam em 0: campanha gratuita
// ou ainda não medida não contribui com sinal.
func CalculateROI(spent, earned decimal.NullDecimal) float64 {
	if !spent.Valid || !earned.Valid || !spent.Decimal.IsPositive() {
		return 0
	}

	s := spent.Decimal.InexactFloat64()
	e := earned.Decimal.InexactFloat64()
	if s <= 0 {
		return 0
	}

	roi := ((e - s) / s) * 100
	if math.IsInf(roi, 0) || math.IsNaN(roi) {
		return 0
	}

	return roi
}
