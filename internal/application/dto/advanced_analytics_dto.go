package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdvancedAnalyticsDTO respuesta de GET /api/analytics/advanced.
// Montos en la moneda base del tenant; porcentajes numéricos (50 = 50%).
type AdvancedAnalyticsDTO struct {
	TenantID        string                    `json:"tenant_id"`
	GeneratedAt     time.Time                 `json:"generated_at"` // "now" usado en el cálculo
	Period          PeriodDTO                 `json:"period"`       // ventana de pedidos analizada
	Revenue         RevenueInsightsDTO        `json:"revenue"`
	Inventory       InventoryInsightsDTO      `json:"inventory"`
	CashFlow        CashFlowInsightsDTO       `json:"cash_flow"`
	HealthScore     BusinessHealthScoreDTO    `json:"health_score"`
	Recommendations []ActionRecommendationDTO `json:"recommendations"`
	KPIs            KPIMetricsDTO             `json:"kpis"`
}

// ── Ingresos ──────────────────────────────────────────────────────────────────

// RevenueInsightsDTO análisis de ingresos mes contra mes.
type RevenueInsightsDTO struct {
	CurrentMonthRevenue decimal.Decimal     `json:"current_month_revenue"`
	LastMonthRevenue    decimal.Decimal     `json:"last_month_revenue"`
	RevenueGrowth       decimal.Decimal     `json:"revenue_growth"` // %
	AverageOrderValue   decimal.Decimal     `json:"average_order_value"`
	RevenueTrend        []MonthlyRevenueDTO `json:"revenue_trend"` // 6 meses, antiguo → actual
	SmartInsight        string              `json:"smart_insight"`
}

// MonthlyRevenueDTO punto de la tendencia mensual.
type MonthlyRevenueDTO struct {
	Month   string          `json:"month"` // "Mar 2026"
	Revenue decimal.Decimal `json:"revenue"`
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryInsightsDTO eficiencia de inventario.
type InventoryInsightsDTO struct {
	StockTurnoverRatio       decimal.Decimal    `json:"stock_turnover_ratio"`
	DaysInventoryOutstanding decimal.Decimal    `json:"days_inventory_outstanding"`
	DeadStock                []InventoryItemDTO `json:"dead_stock"`
	OverstockItems           []InventoryItemDTO `json:"overstock_items"`
	FastMovingProducts       []InventoryItemDTO `json:"fast_moving_products"`
	SlowMovingProducts       []InventoryItemDTO `json:"slow_moving_products"`
	CapitalBlocked           decimal.Decimal    `json:"capital_blocked"`
	SmartInsight             string             `json:"smart_insight"`
}

// InventoryItemDTO producto dentro de una clasificación de inventario.
type InventoryItemDTO struct {
	ProductID     string          `json:"product_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Stock         decimal.Decimal `json:"stock"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	StockValue    decimal.Decimal `json:"stock_value"` // stock × cost_price
}

// ── Flujo de caja ─────────────────────────────────────────────────────────────

// CashFlowInsightsDTO cartera, cuentas por pagar y riesgo de caja.
type CashFlowInsightsDTO struct {
	TotalPayables    decimal.Decimal `json:"total_payables"`
	TotalReceivables decimal.Decimal `json:"total_receivables"`
	Aging0to30       decimal.Decimal `json:"aging_0_to_30"`
	Aging30to60      decimal.Decimal `json:"aging_30_to_60"`
	Aging60Plus      decimal.Decimal `json:"aging_60_plus"`
	CashFlowForecast decimal.Decimal `json:"cash_flow_forecast"`
	ProfitMargin     decimal.Decimal `json:"profit_margin"`   // %
	CashRiskLevel    string          `json:"cash_risk_level"` // LOW|MEDIUM|HIGH
	SmartAlert       string          `json:"smart_alert"`
}

// ── Puntaje y recomendaciones ─────────────────────────────────────────────────

// BusinessHealthScoreDTO puntaje compuesto 0–100.
type BusinessHealthScoreDTO struct {
	OverallScore   int `json:"overall_score"`
	RevenueScore   int `json:"revenue_score"`
	InventoryScore int `json:"inventory_score"`
	CashFlowScore  int `json:"cash_flow_score"`
	SupplierScore  int `json:"supplier_score"`
	CustomerScore  int `json:"customer_score"`
}

// ActionRecommendationDTO acción sugerida.
type ActionRecommendationDTO struct {
	Type        string `json:"type"`     // STOCK|CASH_FLOW|CUSTOMER|SUPPLIER
	Priority    string `json:"priority"` // HIGH|MEDIUM|LOW
	Title       string `json:"title"`
	Description string `json:"description"`
	ActionURL   string `json:"action_url,omitempty"`
}

// KPIMetricsDTO resumen plano para las tarjetas del dashboard.
type KPIMetricsDTO struct {
	RevenueGrowth       decimal.Decimal `json:"revenue_growth"`
	ProfitMargin        decimal.Decimal `json:"profit_margin"`
	StockHealth         decimal.Decimal `json:"stock_health"` // stock_turnover_ratio × 20
	CashRisk            string          `json:"cash_risk"`
	SupplierReliability int             `json:"supplier_reliability"`
}
