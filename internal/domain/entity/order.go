package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pago de un pedido.
const (
	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusRefunded = "Refunded"
	PaymentStatusFailed   = "Failed"
)

// Order representa un pedido de venta de un tenant (solo lectura para analítica).
type Order struct {
	ID            string
	CompanyID     string
	OrderDate     time.Time
	TotalAmount   decimal.Decimal
	PaymentStatus string
}

// IsPaid indica si el pedido ya fue cobrado.
func (o Order) IsPaid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}
