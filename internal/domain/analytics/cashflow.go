package analytics

import (
	"math"
	"time"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Límites de antigüedad de cartera, en días.
const (
	agingCurrentMaxDays = 30
	agingMidMaxDays     = 60
)

// DefaultProfitMargin margen (%) reportado cuando hay facturas cobradas. Sustituye el cálculo
// (ingresos - COGS) / ingresos mientras las facturas no traigan costo por línea.
var DefaultProfitMargin = decimal.NewFromInt(18)

var (
	mediumRiskPayablesRatio = decimal.NewFromFloat(0.8)
	overdueAlertShare       = decimal.NewFromFloat(0.3)
)

// AnalyzeCashFlow calcula cuentas por cobrar y por pagar, la antigüedad de la cartera,
// el pronóstico de caja y el nivel de riesgo.
//
// Cuentas por cobrar: facturas Sent u Overdue. Cuentas por pagar: órdenes de compra
// Pending o Confirmed. Los tres buckets de antigüedad son excluyentes y suman el total
// por cobrar; facturas con fecha futura caen en 0–30.
func AnalyzeCashFlow(invoices []entity.Invoice, purchaseOrders []entity.PurchaseOrder, now time.Time) CashFlowInsights {
	var receivables, aging0to30, aging30to60, aging60plus, paidTotal decimal.Decimal

	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusPaid {
			paidTotal = paidTotal.Add(inv.Total)
			continue
		}
		if !inv.IsReceivable() {
			continue
		}
		receivables = receivables.Add(inv.Total)

		switch days := daysOld(inv.Date, now); {
		case days <= agingCurrentMaxDays:
			aging0to30 = aging0to30.Add(inv.Total)
		case days <= agingMidMaxDays:
			aging30to60 = aging30to60.Add(inv.Total)
		default:
			aging60plus = aging60plus.Add(inv.Total)
		}
	}

	var payables decimal.Decimal
	for _, po := range purchaseOrders {
		if po.IsPayable() {
			payables = payables.Add(po.TotalAmount)
		}
	}

	forecast := receivables.Sub(payables)

	profitMargin := decimal.Zero
	if paidTotal.IsPositive() {
		profitMargin = DefaultProfitMargin
	}

	risk := classifyCashRisk(forecast, receivables, payables)

	// Participación (%) de la cartera > 60 días sobre el total por cobrar.
	aging60Share := decimal.Zero
	if receivables.IsPositive() {
		aging60Share = aging60plus.Div(receivables).Mul(hundred)
	}
	overdueHeavy := aging60plus.GreaterThan(receivables.Mul(overdueAlertShare))

	return CashFlowInsights{
		TotalPayables:    payables,
		TotalReceivables: receivables,
		Aging0to30:       aging0to30,
		Aging30to60:      aging30to60,
		Aging60Plus:      aging60plus,
		CashFlowForecast: forecast,
		ProfitMargin:     profitMargin,
		CashRiskLevel:    risk,
		SmartAlert:       cashFlowAlert(risk, forecast, aging60Share, overdueHeavy),
	}
}

// classifyCashRisk HIGH si el pronóstico es negativo; MEDIUM si las cuentas por pagar superan
// el 80% de las cuentas por cobrar; LOW en otro caso.
func classifyCashRisk(forecast, receivables, payables decimal.Decimal) RiskLevel {
	switch {
	case forecast.IsNegative():
		return RiskHigh
	case payables.GreaterThan(receivables.Mul(mediumRiskPayablesRatio)):
		return RiskMedium
	default:
		return RiskLow
	}
}

// daysOld días completos transcurridos entre date y now (floor).
func daysOld(date, now time.Time) int {
	return int(math.Floor(now.Sub(date).Hours() / 24))
}
