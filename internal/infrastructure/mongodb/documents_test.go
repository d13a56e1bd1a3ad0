package mongodb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func TestProductDocument_SinBloquesAnidadosUsaDefaults(t *testing.T) {
	p := productDocument{ID: "p-1", TenantID: "t-1"}.toEntity()

	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "t-1", p.CompanyID)
	assert.True(t, p.Inventory.Stock.IsZero())
	assert.True(t, p.Inventory.MinStockLevel.IsZero())
	assert.Equal(t, entity.ProductStatusInactive, p.Inventory.Status)
	assert.True(t, p.Pricing.CostPrice.IsZero())
	assert.True(t, p.StockValue().IsZero())
}

func TestProductDocument_CamposParciales(t *testing.T) {
	doc := productDocument{
		ID:       primitive.NewObjectID(),
		TenantID: "t-1",
		Name:     ptr("Café 500g"),
		Inventory: &inventoryDocument{
			Stock:  ptr(40.0),
			Status: ptr(entity.ProductStatusActive),
		},
		Pricing: &pricingDocument{CostPrice: ptr(12.5)},
	}
	p := doc.toEntity()

	assert.Len(t, p.ID, 24, "ObjectID debe convertirse a hex")
	assert.Equal(t, "Café 500g", p.Name)
	assert.True(t, p.Inventory.Stock.Equal(decimal.NewFromInt(40)))
	assert.True(t, p.Inventory.MinStockLevel.IsZero())
	assert.Equal(t, entity.ProductStatusActive, p.Inventory.Status)
	assert.True(t, p.Pricing.SellingPrice.IsZero())
	assert.True(t, p.StockValue().Equal(decimal.NewFromInt(500)))
}

func TestOrderDocument_DefaultsDeEstado(t *testing.T) {
	o := orderDocument{ID: "o-1", TenantID: "t-1", TotalAmount: ptr(99.9)}.toEntity()

	assert.Equal(t, entity.PaymentStatusPending, o.PaymentStatus)
	assert.True(t, o.OrderDate.IsZero())
	assert.False(t, o.IsPaid())
	assert.Equal(t, "99.9", o.TotalAmount.String())
}

func TestInvoiceDocument_DecodificaDesdeBSON(t *testing.T) {
	date := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	raw, err := bson.Marshal(bson.M{
		"_id":      "inv-1",
		"tenantId": "t-1",
		"date":     date,
		"status":   "Overdue",
		"total":    int32(5000),
	})
	assert.NoError(t, err)

	var doc invoiceDocument
	assert.NoError(t, bson.Unmarshal(raw, &doc))
	inv := doc.toEntity()

	assert.Equal(t, "inv-1", inv.ID)
	assert.True(t, inv.Date.Equal(date))
	assert.True(t, inv.IsReceivable())
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(5000)))
	assert.True(t, inv.Tax.IsZero())
}

func TestPurchaseOrderDocument_SinEstadoEsBorrador(t *testing.T) {
	po := purchaseOrderDocument{ID: 7, TenantID: "t-1", TotalAmount: ptr(100.0)}.toEntity()

	assert.Equal(t, "7", po.ID)
	assert.Equal(t, entity.PurchaseOrderStatusDraft, po.Status)
	assert.False(t, po.IsPayable())
}
