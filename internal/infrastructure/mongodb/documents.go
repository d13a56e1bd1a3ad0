package mongodb

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
)

// Documentos tal como se guardan en la base documental. Los campos opcionales son punteros:
// los valores por defecto se aplican una sola vez en los mapeos toEntity, nunca en el
// cálculo de analítica.

type orderDocument struct {
	ID            any        `bson:"_id"`
	TenantID      string     `bson:"tenantId"`
	OrderDate     *time.Time `bson:"orderDate,omitempty"`
	TotalAmount   *float64   `bson:"totalAmount,omitempty"`
	PaymentStatus *string    `bson:"paymentStatus,omitempty"`
}

type invoiceDocument struct {
	ID       any        `bson:"_id"`
	TenantID string     `bson:"tenantId"`
	Date     *time.Time `bson:"date,omitempty"`
	Status   *string    `bson:"status,omitempty"`
	Total    *float64   `bson:"total,omitempty"`
	Tax      *float64   `bson:"tax,omitempty"`
}

type purchaseOrderDocument struct {
	ID          any      `bson:"_id"`
	TenantID    string   `bson:"tenantId"`
	Status      *string  `bson:"status,omitempty"`
	TotalAmount *float64 `bson:"totalAmount,omitempty"`
}

type productDocument struct {
	ID        any                `bson:"_id"`
	TenantID  string             `bson:"tenantId"`
	SKU       *string            `bson:"sku,omitempty"`
	Name      *string            `bson:"name,omitempty"`
	Inventory *inventoryDocument `bson:"inventory,omitempty"`
	Pricing   *pricingDocument   `bson:"pricing,omitempty"`
}

type inventoryDocument struct {
	Stock         *float64 `bson:"stock,omitempty"`
	MinStockLevel *float64 `bson:"minStockLevel,omitempty"`
	Status        *string  `bson:"status,omitempty"`
}

type pricingDocument struct {
	CostPrice     *float64 `bson:"costPrice,omitempty"`
	SellingPrice  *float64 `bson:"sellingPrice,omitempty"`
	TaxPercentage *float64 `bson:"taxPercentage,omitempty"`
}

func (d orderDocument) toEntity() entity.Order {
	return entity.Order{
		ID:            idString(d.ID),
		CompanyID:     d.TenantID,
		OrderDate:     timeOrZero(d.OrderDate),
		TotalAmount:   decimalOrZero(d.TotalAmount),
		PaymentStatus: stringOr(d.PaymentStatus, entity.PaymentStatusPending),
	}
}

func (d invoiceDocument) toEntity() entity.Invoice {
	return entity.Invoice{
		ID:        idString(d.ID),
		CompanyID: d.TenantID,
		Date:      timeOrZero(d.Date),
		Status:    stringOr(d.Status, entity.InvoiceStatusDraft),
		Total:     decimalOrZero(d.Total),
		Tax:       decimalOrZero(d.Tax),
	}
}

func (d purchaseOrderDocument) toEntity() entity.PurchaseOrder {
	return entity.PurchaseOrder{
		ID:          idString(d.ID),
		CompanyID:   d.TenantID,
		Status:      stringOr(d.Status, entity.PurchaseOrderStatusDraft),
		TotalAmount: decimalOrZero(d.TotalAmount),
	}
}

// toEntity un producto sin bloque inventory queda con stock 0 e INACTIVE;
// sin bloque pricing, con costo y precio 0.
func (d productDocument) toEntity() entity.Product {
	p := entity.Product{
		ID:        idString(d.ID),
		CompanyID: d.TenantID,
		SKU:       stringOr(d.SKU, ""),
		Name:      stringOr(d.Name, ""),
		Inventory: entity.ProductInventory{
			Stock:         decimal.Zero,
			MinStockLevel: decimal.Zero,
			Status:        entity.ProductStatusInactive,
		},
		Pricing: entity.ProductPricing{
			CostPrice:     decimal.Zero,
			SellingPrice:  decimal.Zero,
			TaxPercentage: decimal.Zero,
		},
	}
	if inv := d.Inventory; inv != nil {
		p.Inventory.Stock = decimalOrZero(inv.Stock)
		p.Inventory.MinStockLevel = decimalOrZero(inv.MinStockLevel)
		p.Inventory.Status = stringOr(inv.Status, entity.ProductStatusInactive)
	}
	if pr := d.Pricing; pr != nil {
		p.Pricing.CostPrice = decimalOrZero(pr.CostPrice)
		p.Pricing.SellingPrice = decimalOrZero(pr.SellingPrice)
		p.Pricing.TaxPercentage = decimalOrZero(pr.TaxPercentage)
	}
	return p
}

func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func decimalOrZero(f *float64) decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*f)
}

func stringOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
