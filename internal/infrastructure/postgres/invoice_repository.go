package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
	"github.com/jhoicas/health-analytics-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo lectura de facturas sobre PostgreSQL.
type InvoiceRepo struct {
	q       Querier
	timeout time.Duration
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier, timeout time.Duration) *InvoiceRepo {
	return &InvoiceRepo{q: q, timeout: timeout}
}

// ListByCompany devuelve todas las facturas de la empresa con su estado de cobro.
// Total = grand_total (incluye IVA); Tax = tax_total.
func (r *InvoiceRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.Invoice, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `
	SELECT id, company_id, date,
	       COALESCE(payment_status, 'Draft') AS payment_status,
	       COALESCE(grand_total, 0)          AS grand_total,
	       COALESCE(tax_total, 0)            AS tax_total
	FROM invoices
	WHERE company_id = $1
	ORDER BY date, id`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("invoices.ListByCompany: %w", err)
	}
	defer rows.Close()

	results := []entity.Invoice{}
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.Date, &inv.Status, &inv.Total, &inv.Tax); err != nil {
			return nil, fmt.Errorf("invoices.ListByCompany scan: %w", err)
		}
		results = append(results, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("invoices.ListByCompany rows: %w", err)
	}
	return results, nil
}
