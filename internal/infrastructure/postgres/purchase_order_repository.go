package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
	"github.com/jhoicas/health-analytics-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo lectura de órdenes de compra sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q       Querier
	timeout time.Duration
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier, timeout time.Duration) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q, timeout: timeout}
}

// ListByCompany devuelve las órdenes de compra de la empresa.
func (r *PurchaseOrderRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.PurchaseOrder, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `
	SELECT id, company_id,
	       COALESCE(status, 'Draft')     AS status,
	       COALESCE(total_amount, 0)     AS total_amount
	FROM purchase_orders
	WHERE company_id = $1
	ORDER BY id`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("purchase_orders.ListByCompany: %w", err)
	}
	defer rows.Close()

	results := []entity.PurchaseOrder{}
	for rows.Next() {
		var po entity.PurchaseOrder
		if err := rows.Scan(&po.ID, &po.CompanyID, &po.Status, &po.TotalAmount); err != nil {
			return nil, fmt.Errorf("purchase_orders.ListByCompany scan: %w", err)
		}
		results = append(results, po)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("purchase_orders.ListByCompany rows: %w", err)
	}
	return results, nil
}
