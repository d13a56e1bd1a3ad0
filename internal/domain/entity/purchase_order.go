package entity

import "github.com/shopspring/decimal"

// Estados de una orden de compra a proveedor.
const (
	PurchaseOrderStatusDraft     = "Draft"
	PurchaseOrderStatusPending   = "Pending"
	PurchaseOrderStatusConfirmed = "Confirmed"
	PurchaseOrderStatusReceived  = "Received"
	PurchaseOrderStatusCancelled = "Cancelled"
)

// PurchaseOrder orden de compra a proveedor.
type PurchaseOrder struct {
	ID          string
	CompanyID   string
	Status      string
	TotalAmount decimal.Decimal
}

// IsPayable indica si la orden representa una obligación de pago abierta.
func (p PurchaseOrder) IsPayable() bool {
	return p.Status == PurchaseOrderStatusPending || p.Status == PurchaseOrderStatusConfirmed
}
