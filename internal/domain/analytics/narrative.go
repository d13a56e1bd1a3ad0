package analytics

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formatea montos con separador de miles ("12,345.6").
var printer = message.NewPrinter(language.English)

var thousand = decimal.NewFromInt(1000)

func revenueInsight(growth decimal.Decimal) string {
	pct := growth.Abs().InexactFloat64()
	switch {
	case growth.GreaterThan(strongGrowthPct):
		return printer.Sprintf("Strong growth: revenue is up %.1f%% compared to last month. Keep investing in what is working.", pct)
	case growth.IsPositive():
		return printer.Sprintf("Steady growth: revenue is up %.1f%% compared to last month.", pct)
	case growth.LessThan(sharpDeclinePct):
		return printer.Sprintf("Revenue declined %.1f%% compared to last month. Review pricing and re-engage lapsed customers.", pct)
	default:
		return "Revenue is stable compared to last month."
	}
}

func inventoryInsight(capitalBlocked decimal.Decimal) string {
	if !capitalBlocked.IsPositive() {
		return "Inventory levels are well optimized."
	}
	k := capitalBlocked.Div(thousand).InexactFloat64()
	return printer.Sprintf("%.1fK of capital is blocked in slow-moving inventory. Consider promotions or bundles to release it.", k)
}

func cashFlowAlert(risk RiskLevel, forecast, aging60Share decimal.Decimal, overdueHeavy bool) string {
	switch {
	case risk == RiskHigh:
		return printer.Sprintf("Urgent: payables exceed receivables by %.2f. Accelerate collections and defer non-critical purchases.",
			forecast.Abs().InexactFloat64())
	case overdueHeavy:
		return printer.Sprintf("%.0f%% of receivables are more than 60 days old. Prioritize collection of overdue invoices.",
			aging60Share.InexactFloat64())
	default:
		return "Cash flow is healthy. Receivables comfortably cover outstanding payables."
	}
}
