package analytics

import "github.com/shopspring/decimal"

// Puntajes fijos de proveedores y clientes hasta que existan analizadores propios.
const (
	DefaultSupplierScore = 85
	DefaultCustomerScore = 80
)

// Pesos del puntaje global; suman 1.0.
var (
	weightRevenue   = decimal.NewFromFloat(0.30)
	weightInventory = decimal.NewFromFloat(0.25)
	weightCashFlow  = decimal.NewFromFloat(0.25)
	weightSupplier  = decimal.NewFromFloat(0.10)
	weightCustomer  = decimal.NewFromFloat(0.10)
)

var (
	scoreFloor          = decimal.Zero
	scoreCeiling        = decimal.NewFromInt(100)
	revenueScoreBase    = decimal.NewFromInt(50)
	capitalBlockedPerPt = decimal.NewFromInt(10000)
)

var cashFlowScores = map[RiskLevel]int{
	RiskLow:    90,
	RiskMedium: 60,
	RiskHigh:   30,
}

// ScoreHealth combina los tres análisis en un puntaje 0–100.
//
//	revenue   = clamp(50 + crecimiento×2)
//	inventory = clamp(100 - capitalBlocked/10000)
//	cashFlow  = 90 / 60 / 30 según riesgo LOW / MEDIUM / HIGH
//	overall   = round(0.30·revenue + 0.25·inventory + 0.25·cashFlow + 0.10·supplier + 0.10·customer)
func ScoreHealth(rev RevenueInsights, inv InventoryInsights, cash CashFlowInsights) BusinessHealthScore {
	revenue := clampScore(revenueScoreBase.Add(rev.RevenueGrowth.Mul(two)))
	inventory := clampScore(scoreCeiling.Sub(inv.CapitalBlocked.Div(capitalBlockedPerPt)))
	cashFlow, ok := cashFlowScores[cash.CashRiskLevel]
	if !ok {
		cashFlow = cashFlowScores[RiskHigh]
	}

	overall := decimal.NewFromInt(int64(revenue)).Mul(weightRevenue).
		Add(decimal.NewFromInt(int64(inventory)).Mul(weightInventory)).
		Add(decimal.NewFromInt(int64(cashFlow)).Mul(weightCashFlow)).
		Add(decimal.NewFromInt(DefaultSupplierScore).Mul(weightSupplier)).
		Add(decimal.NewFromInt(DefaultCustomerScore).Mul(weightCustomer))

	return BusinessHealthScore{
		OverallScore:   clampScore(overall),
		RevenueScore:   revenue,
		InventoryScore: inventory,
		CashFlowScore:  cashFlow,
		SupplierScore:  DefaultSupplierScore,
		CustomerScore:  DefaultCustomerScore,
	}
}

// clampScore acota v a [0,100] y redondea al entero más cercano (mitades hacia arriba).
func clampScore(v decimal.Decimal) int {
	if v.LessThan(scoreFloor) {
		v = scoreFloor
	}
	if v.GreaterThan(scoreCeiling) {
		v = scoreCeiling
	}
	return int(v.Round(0).IntPart())
}
