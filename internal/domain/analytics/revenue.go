package analytics

import (
	"time"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RevenueWindowMonths meses de historial que consume el analizador de ingresos.
const RevenueWindowMonths = 6

var (
	hundred         = decimal.NewFromInt(100)
	strongGrowthPct = decimal.NewFromInt(10)
	sharpDeclinePct = decimal.NewFromInt(-10)
)

// RevenueWindowStart devuelve el inicio de la ventana de pedidos: now - 6 meses.
func RevenueWindowStart(now time.Time) time.Time {
	return now.AddDate(0, -RevenueWindowMonths, 0)
}

// AnalyzeRevenue calcula ingresos del mes actual y anterior, crecimiento, ticket promedio
// y la tendencia de los últimos 6 meses calendario. Solo cuentan los pedidos pagados.
func AnalyzeRevenue(orders []entity.Order, now time.Time) RevenueInsights {
	currentStart := monthStart(now)
	lastStart := currentStart.AddDate(0, -1, 0)
	nextStart := currentStart.AddDate(0, 1, 0)
	windowStart := RevenueWindowStart(now)

	// Tendencia: 6 meses terminando en el mes actual, del más antiguo al más reciente.
	trend := make([]MonthlyRevenue, RevenueWindowMonths)
	for i := range trend {
		start := currentStart.AddDate(0, i-(RevenueWindowMonths-1), 0)
		trend[i] = MonthlyRevenue{
			Month:      start.Format("Jan 2006"),
			MonthStart: start,
			Revenue:    decimal.Zero,
		}
	}
	trendStart := trend[0].MonthStart

	var (
		current, last, windowTotal decimal.Decimal
		windowCount                int64
	)
	for _, o := range orders {
		if !o.IsPaid() {
			continue
		}
		d := o.OrderDate
		switch {
		case inRange(d, currentStart, nextStart):
			current = current.Add(o.TotalAmount)
		case inRange(d, lastStart, currentStart):
			last = last.Add(o.TotalAmount)
		}
		if !d.Before(windowStart) && !d.After(now) {
			windowTotal = windowTotal.Add(o.TotalAmount)
			windowCount++
		}
		if inRange(d, trendStart, nextStart) {
			idx := monthsBetween(trendStart, d)
			trend[idx].Revenue = trend[idx].Revenue.Add(o.TotalAmount)
		}
	}

	growth := decimal.Zero
	if !last.IsZero() {
		growth = current.Sub(last).Div(last).Mul(hundred).Round(2)
	}

	aov := decimal.Zero
	if windowCount > 0 {
		aov = windowTotal.Div(decimal.NewFromInt(windowCount)).Round(2)
	}

	return RevenueInsights{
		CurrentMonthRevenue: current,
		LastMonthRevenue:    last,
		RevenueGrowth:       growth,
		AverageOrderValue:   aov,
		RevenueTrend:        trend,
		SmartInsight:        revenueInsight(growth),
	}
}

// monthStart devuelve el primer instante del mes de t, en su misma zona horaria.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// inRange reporta si t ∈ [from, to).
func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

// monthsBetween número de meses calendario entre el mes de from y el mes de t.
func monthsBetween(from, t time.Time) int {
	t = t.In(from.Location())
	return (t.Year()-from.Year())*12 + int(t.Month()) - int(from.Month())
}
