package entity

import "github.com/shopspring/decimal"

// Estados de inventario de un producto.
const (
	ProductStatusActive       = "ACTIVE"
	ProductStatusInactive     = "INACTIVE"
	ProductStatusDiscontinued = "DISCONTINUED"
)

// Product representa un producto o SKU con su situación de inventario y precios.
// Stock es el agregado de todas las bodegas.
type Product struct {
	ID        string
	CompanyID string
	SKU       string
	Name      string
	Inventory ProductInventory
	Pricing   ProductPricing
}

// ProductInventory existencias y umbral mínimo del producto.
type ProductInventory struct {
	Stock         decimal.Decimal
	MinStockLevel decimal.Decimal
	Status        string // ver constantes ProductStatus*
}

// ProductPricing precios del producto.
type ProductPricing struct {
	CostPrice     decimal.Decimal // costo unitario
	SellingPrice  decimal.Decimal // precio de venta
	TaxPercentage decimal.Decimal // IVA en %, ej: 19
}

// StockValue devuelve el capital invertido en el stock actual (stock × costo).
func (p Product) StockValue() decimal.Decimal {
	return p.Inventory.Stock.Mul(p.Pricing.CostPrice)
}
