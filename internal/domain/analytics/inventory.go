package analytics

import (
	"sort"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MaxInventoryListItems tope de productos por clasificación.
const MaxInventoryListItems = 10

// Valores de referencia mientras no exista historial de ventas por SKU para calcular
// COGS / inventario promedio.
var (
	DefaultStockTurnoverRatio       = decimal.NewFromFloat(4.5)
	DefaultDaysInventoryOutstanding = decimal.NewFromInt(81)
)

var (
	two   = decimal.NewFromInt(2)
	three = decimal.NewFromInt(3)
)

// AnalyzeInventory clasifica los productos en stock muerto, sobre-stock, alta y baja rotación
// y calcula el capital inmovilizado en productos de baja rotación.
//
// Cada lista se ordena antes de recortarse a MaxInventoryListItems:
//   - deadStock, overstock y slowMoving: mayor capital en riesgo (stock × costo) primero.
//   - fastMoving: mayor faltante frente al stock mínimo primero.
//
// Empates por ProductID ascendente.
func AnalyzeInventory(products []entity.Product) InventoryInsights {
	var dead, overstock, fast, slow []InventoryItem

	for _, p := range products {
		stock := p.Inventory.Stock
		minLevel := p.Inventory.MinStockLevel
		item := toInventoryItem(p)

		if stock.IsPositive() && p.Inventory.Status == entity.ProductStatusActive {
			dead = append(dead, item)
		}
		if stock.GreaterThan(minLevel.Mul(three)) {
			overstock = append(overstock, item)
		}
		if stock.LessThan(minLevel) {
			fast = append(fast, item)
		}
		if stock.GreaterThan(minLevel.Mul(two)) {
			slow = append(slow, item)
		}
	}

	sortByStockValue(dead)
	sortByStockValue(overstock)
	sortByStockValue(slow)
	sortByShortfall(fast)

	dead = capItems(dead)
	overstock = capItems(overstock)
	fast = capItems(fast)
	slow = capItems(slow)

	capitalBlocked := decimal.Zero
	for _, it := range slow {
		capitalBlocked = capitalBlocked.Add(it.StockValue)
	}

	return InventoryInsights{
		StockTurnoverRatio:       DefaultStockTurnoverRatio,
		DaysInventoryOutstanding: DefaultDaysInventoryOutstanding,
		DeadStock:                dead,
		OverstockItems:           overstock,
		FastMovingProducts:       fast,
		SlowMovingProducts:       slow,
		CapitalBlocked:           capitalBlocked,
		SmartInsight:             inventoryInsight(capitalBlocked),
	}
}

func toInventoryItem(p entity.Product) InventoryItem {
	return InventoryItem{
		ProductID:     p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Stock:         p.Inventory.Stock,
		MinStockLevel: p.Inventory.MinStockLevel,
		CostPrice:     p.Pricing.CostPrice,
		StockValue:    p.StockValue(),
	}
}

func sortByStockValue(items []InventoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.StockValue.Equal(b.StockValue) {
			return a.StockValue.GreaterThan(b.StockValue)
		}
		return a.ProductID < b.ProductID
	})
}

func sortByShortfall(items []InventoryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		defA := a.MinStockLevel.Sub(a.Stock)
		defB := b.MinStockLevel.Sub(b.Stock)
		if !defA.Equal(defB) {
			return defA.GreaterThan(defB)
		}
		return a.ProductID < b.ProductID
	})
}

// capItems recorta la lista y garantiza un slice no-nil (JSON "[]" en vez de null).
func capItems(items []InventoryItem) []InventoryItem {
	if len(items) > MaxInventoryListItems {
		items = items[:MaxInventoryListItems]
	}
	if items == nil {
		return []InventoryItem{}
	}
	return items
}
