package analytics

import "github.com/shopspring/decimal"

// Umbrales de las reglas de recomendación.
var (
	capitalBlockedThreshold = decimal.NewFromInt(50000)
	overdueAgingThreshold   = decimal.NewFromInt(10000)
)

// Rutas del frontend a las que apunta cada recomendación.
const (
	ActionURLRestock    = "/inventory/products?filter=low-stock"
	ActionURLSlowMoving = "/inventory/products?filter=slow-moving"
	ActionURLOverdue    = "/invoices?status=Overdue"
	ActionURLCashFlow   = "/analytics/cash-flow"
)

// Recommend evalúa las reglas de forma independiente y devuelve todas las que aplican,
// en orden de evaluación (0 a 4 recomendaciones).
func Recommend(inv InventoryInsights, cash CashFlowInsights) []ActionRecommendation {
	recs := make([]ActionRecommendation, 0, 4)

	if n := len(inv.FastMovingProducts); n > 0 {
		recs = append(recs, ActionRecommendation{
			Type:        RecommendationStock,
			Priority:    PriorityHigh,
			Title:       "Restock Fast-Moving Products",
			Description: printer.Sprintf("%d products are below their minimum stock level. Reorder them to avoid stockouts.", n),
			ActionURL:   ActionURLRestock,
		})
	}

	if inv.CapitalBlocked.GreaterThan(capitalBlockedThreshold) {
		recs = append(recs, ActionRecommendation{
			Type:     RecommendationStock,
			Priority: PriorityMedium,
			Title:    "Reduce Slow-Moving Inventory",
			Description: printer.Sprintf("%.2f is tied up in slow-moving products. Run clearance offers or pause reorders.",
				inv.CapitalBlocked.InexactFloat64()),
			ActionURL: ActionURLSlowMoving,
		})
	}

	if cash.Aging60Plus.GreaterThan(overdueAgingThreshold) {
		recs = append(recs, ActionRecommendation{
			Type:     RecommendationCashFlow,
			Priority: PriorityHigh,
			Title:    "Follow Up on Overdue Payments",
			Description: printer.Sprintf("%.2f in receivables is more than 60 days old. Contact these customers this week.",
				cash.Aging60Plus.InexactFloat64()),
			ActionURL: ActionURLOverdue,
		})
	}

	if cash.CashRiskLevel == RiskHigh {
		recs = append(recs, ActionRecommendation{
			Type:        RecommendationCashFlow,
			Priority:    PriorityHigh,
			Title:       "Cash Flow Alert",
			Description: "Projected payables exceed receivables. Speed up collections and renegotiate supplier terms.",
			ActionURL:   ActionURLCashFlow,
		})
	}

	return recs
}
