// Package analytics contiene los componentes de cálculo del reporte de salud del negocio:
// analizadores de ingresos, inventario y flujo de caja, el puntaje compuesto y el motor
// de recomendaciones. Todas las funciones son puras: reciben los registros del tenant y un
// "now" explícito, y nunca modifican sus entradas.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// RiskLevel nivel de riesgo de caja.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// RecommendationType área de negocio a la que apunta una recomendación.
type RecommendationType string

const (
	RecommendationStock    RecommendationType = "STOCK"
	RecommendationCashFlow RecommendationType = "CASH_FLOW"
	RecommendationCustomer RecommendationType = "CUSTOMER"
	RecommendationSupplier RecommendationType = "SUPPLIER"
)

// Priority urgencia de una recomendación.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// MonthlyRevenue ingreso cobrado en un mes calendario.
type MonthlyRevenue struct {
	Month      string    // "Jan 2026"
	MonthStart time.Time // primer instante del mes
	Revenue    decimal.Decimal
}

// RevenueInsights resultado del analizador de ingresos.
type RevenueInsights struct {
	CurrentMonthRevenue decimal.Decimal
	LastMonthRevenue    decimal.Decimal
	RevenueGrowth       decimal.Decimal // %, 0 si el mes anterior no tuvo ingresos
	AverageOrderValue   decimal.Decimal
	RevenueTrend        []MonthlyRevenue // siempre 6 meses, del más antiguo al actual
	SmartInsight        string
}

// InventoryItem fotografía de un producto dentro de una clasificación de inventario.
type InventoryItem struct {
	ProductID     string
	SKU           string
	Name          string
	Stock         decimal.Decimal
	MinStockLevel decimal.Decimal
	CostPrice     decimal.Decimal
	StockValue    decimal.Decimal // Stock × CostPrice
}

// InventoryInsights resultado del analizador de inventario.
type InventoryInsights struct {
	StockTurnoverRatio       decimal.Decimal
	DaysInventoryOutstanding decimal.Decimal
	DeadStock                []InventoryItem
	OverstockItems           []InventoryItem
	FastMovingProducts       []InventoryItem
	SlowMovingProducts       []InventoryItem
	CapitalBlocked           decimal.Decimal
	SmartInsight             string
}

// CashFlowInsights resultado del analizador de flujo de caja.
type CashFlowInsights struct {
	TotalPayables    decimal.Decimal
	TotalReceivables decimal.Decimal
	Aging0to30       decimal.Decimal
	Aging30to60      decimal.Decimal
	Aging60Plus      decimal.Decimal
	CashFlowForecast decimal.Decimal // receivables - payables
	ProfitMargin     decimal.Decimal // %
	CashRiskLevel    RiskLevel
	SmartAlert       string
}

// BusinessHealthScore puntaje compuesto; todos los valores en [0,100].
type BusinessHealthScore struct {
	OverallScore   int
	RevenueScore   int
	InventoryScore int
	CashFlowScore  int
	SupplierScore  int
	CustomerScore  int
}

// ActionRecommendation acción sugerida al usuario.
type ActionRecommendation struct {
	Type        RecommendationType
	Priority    Priority
	Title       string
	Description string
	ActionURL   string
}
