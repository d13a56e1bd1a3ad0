package repository

import (
	"context"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de lectura de facturas (cuentas por cobrar).
type InvoiceRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]entity.Invoice, error)
}
