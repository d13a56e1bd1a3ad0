package repository

import (
	"context"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de lectura de órdenes de compra (cuentas por pagar).
type PurchaseOrderRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]entity.PurchaseOrder, error)
}
