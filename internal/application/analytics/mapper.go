package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/health-analytics-api/internal/application/dto"
	domanalytics "github.com/jhoicas/health-analytics-api/internal/domain/analytics"
)

// stockHealthFactor escala la rotación de inventario al rango 0–100 del KPI.
var stockHealthFactor = decimal.NewFromInt(20)

func buildKPIs(
	rev domanalytics.RevenueInsights,
	inv domanalytics.InventoryInsights,
	cash domanalytics.CashFlowInsights,
) dto.KPIMetricsDTO {
	return dto.KPIMetricsDTO{
		RevenueGrowth:       rev.RevenueGrowth,
		ProfitMargin:        cash.ProfitMargin,
		StockHealth:         inv.StockTurnoverRatio.Mul(stockHealthFactor),
		CashRisk:            string(cash.CashRiskLevel),
		SupplierReliability: SupplierReliability,
	}
}

func toRevenueDTO(r domanalytics.RevenueInsights) dto.RevenueInsightsDTO {
	trend := make([]dto.MonthlyRevenueDTO, 0, len(r.RevenueTrend))
	for _, m := range r.RevenueTrend {
		trend = append(trend, dto.MonthlyRevenueDTO{Month: m.Month, Revenue: m.Revenue.Round(2)})
	}
	return dto.RevenueInsightsDTO{
		CurrentMonthRevenue: r.CurrentMonthRevenue.Round(2),
		LastMonthRevenue:    r.LastMonthRevenue.Round(2),
		RevenueGrowth:       r.RevenueGrowth,
		AverageOrderValue:   r.AverageOrderValue,
		RevenueTrend:        trend,
		SmartInsight:        r.SmartInsight,
	}
}

func toInventoryDTO(i domanalytics.InventoryInsights) dto.InventoryInsightsDTO {
	return dto.InventoryInsightsDTO{
		StockTurnoverRatio:       i.StockTurnoverRatio,
		DaysInventoryOutstanding: i.DaysInventoryOutstanding,
		DeadStock:                toItemDTOs(i.DeadStock),
		OverstockItems:           toItemDTOs(i.OverstockItems),
		FastMovingProducts:       toItemDTOs(i.FastMovingProducts),
		SlowMovingProducts:       toItemDTOs(i.SlowMovingProducts),
		CapitalBlocked:           i.CapitalBlocked.Round(2),
		SmartInsight:             i.SmartInsight,
	}
}

func toItemDTOs(items []domanalytics.InventoryItem) []dto.InventoryItemDTO {
	out := make([]dto.InventoryItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InventoryItemDTO{
			ProductID:     it.ProductID,
			SKU:           it.SKU,
			Name:          it.Name,
			Stock:         it.Stock,
			MinStockLevel: it.MinStockLevel,
			CostPrice:     it.CostPrice,
			StockValue:    it.StockValue.Round(2),
		})
	}
	return out
}

func toCashFlowDTO(c domanalytics.CashFlowInsights) dto.CashFlowInsightsDTO {
	return dto.CashFlowInsightsDTO{
		TotalPayables:    c.TotalPayables.Round(2),
		TotalReceivables: c.TotalReceivables.Round(2),
		Aging0to30:       c.Aging0to30.Round(2),
		Aging30to60:      c.Aging30to60.Round(2),
		Aging60Plus:      c.Aging60Plus.Round(2),
		CashFlowForecast: c.CashFlowForecast.Round(2),
		ProfitMargin:     c.ProfitMargin,
		CashRiskLevel:    string(c.CashRiskLevel),
		SmartAlert:       c.SmartAlert,
	}
}

func toHealthScoreDTO(s domanalytics.BusinessHealthScore) dto.BusinessHealthScoreDTO {
	return dto.BusinessHealthScoreDTO{
		OverallScore:   s.OverallScore,
		RevenueScore:   s.RevenueScore,
		InventoryScore: s.InventoryScore,
		CashFlowScore:  s.CashFlowScore,
		SupplierScore:  s.SupplierScore,
		CustomerScore:  s.CustomerScore,
	}
}

func toRecommendationDTOs(recs []domanalytics.ActionRecommendation) []dto.ActionRecommendationDTO {
	out := make([]dto.ActionRecommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.ActionRecommendationDTO{
			Type:        string(r.Type),
			Priority:    string(r.Priority),
			Title:       r.Title,
			Description: r.Description,
			ActionURL:   r.ActionURL,
		})
	}
	return out
}
