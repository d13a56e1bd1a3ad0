package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cobro de una factura.
const (
	InvoiceStatusDraft     = "Draft"
	InvoiceStatusSent      = "Sent"
	InvoiceStatusPaid      = "Paid"
	InvoiceStatusOverdue   = "Overdue"
	InvoiceStatusCancelled = "Cancelled"
)

// Invoice representa la cabecera de una factura emitida a un cliente.
// Total incluye impuestos; Tax es el componente de IVA ya contenido en Total.
type Invoice struct {
	ID        string
	CompanyID string
	Date      time.Time
	Status    string
	Total     decimal.Decimal
	Tax       decimal.Decimal
}

// IsReceivable indica si la factura sigue pendiente de cobro (cuenta por cobrar).
func (i Invoice) IsReceivable() bool {
	return i.Status == InvoiceStatusSent || i.Status == InvoiceStatusOverdue
}
