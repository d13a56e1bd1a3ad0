package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
)

// now de referencia para todos los escenarios.
var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), fmt.Sprintf("want %s, got %s %v", want, got.String(), msgAndArgs))
}

func order(id string, date time.Time, amount, status string) entity.Order {
	return entity.Order{ID: id, CompanyID: "t-1", OrderDate: date, TotalAmount: dec(amount), PaymentStatus: status}
}

func invoice(id string, daysOld int, total, status string) entity.Invoice {
	return entity.Invoice{ID: id, CompanyID: "t-1", Date: now.AddDate(0, 0, -daysOld), Status: status, Total: dec(total)}
}

func purchaseOrder(id, total, status string) entity.PurchaseOrder {
	return entity.PurchaseOrder{ID: id, CompanyID: "t-1", Status: status, TotalAmount: dec(total)}
}

func product(id, stock, minLevel, cost string) entity.Product {
	return entity.Product{
		ID:        id,
		CompanyID: "t-1",
		SKU:       "SKU-" + id,
		Name:      "Producto " + id,
		Inventory: entity.ProductInventory{
			Stock:         dec(stock),
			MinStockLevel: dec(minLevel),
			Status:        entity.ProductStatusActive,
		},
		Pricing: entity.ProductPricing{CostPrice: dec(cost), SellingPrice: dec(cost).Mul(dec("1.5"))},
	}
}
