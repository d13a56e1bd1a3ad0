package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
	"github.com/jhoicas/health-analytics-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo lectura de pedidos sobre PostgreSQL.
type OrderRepo struct {
	q       Querier
	timeout time.Duration
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier, timeout time.Duration) *OrderRepo {
	return &OrderRepo{q: q, timeout: timeout}
}

// ListSince devuelve los pedidos de la empresa con order_date >= since, del más antiguo al más reciente.
func (r *OrderRepo) ListSince(ctx context.Context, companyID string, since time.Time) ([]entity.Order, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `
	SELECT id, company_id, order_date,
	       COALESCE(total_amount, 0)         AS total_amount,
	       COALESCE(payment_status, 'Pending') AS payment_status
	FROM orders
	WHERE company_id = $1
	  AND order_date >= $2
	ORDER BY order_date, id`

	rows, err := r.q.Query(ctx, query, companyID, since)
	if err != nil {
		return nil, fmt.Errorf("orders.ListSince: %w", err)
	}
	defer rows.Close()

	results := []entity.Order{}
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.OrderDate, &o.TotalAmount, &o.PaymentStatus); err != nil {
			return nil, fmt.Errorf("orders.ListSince scan: %w", err)
		}
		results = append(results, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders.ListSince rows: %w", err)
	}
	return results, nil
}
