package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
	"github.com/jhoicas/health-analytics-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura del catálogo con stock agregado de todas las bodegas.
type ProductRepo struct {
	q       Querier
	timeout time.Duration
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier, timeout time.Duration) *ProductRepo {
	return &ProductRepo{q: q, timeout: timeout}
}

// ListByCompany devuelve los productos de la empresa.
// Stock = SUM(stock.quantity) sobre todas las bodegas; MinStockLevel = reorder_point;
// TaxPercentage = tax_rate × 100 (la tabla guarda la fracción, ej. 0.19).
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.Product, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	const query = `
	SELECT
	    p.id,
	    p.company_id,
	    p.sku,
	    p.name,
	    COALESCE(SUM(s.quantity), 0)        AS stock,
	    COALESCE(p.reorder_point, 0)        AS min_stock_level,
	    COALESCE(p.status, 'ACTIVE')        AS status,
	    COALESCE(p.cost, 0)                 AS cost_price,
	    COALESCE(p.price, 0)                AS selling_price,
	    COALESCE(p.tax_rate, 0) * 100       AS tax_percentage
	FROM products p
	LEFT JOIN stock s ON s.product_id = p.id
	WHERE p.company_id = $1
	GROUP BY p.id, p.company_id, p.sku, p.name, p.reorder_point, p.status, p.cost, p.price, p.tax_rate
	ORDER BY p.id`

	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("products.ListByCompany: %w", err)
	}
	defer rows.Close()

	results := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID,
			&p.CompanyID,
			&p.SKU,
			&p.Name,
			&p.Inventory.Stock,
			&p.Inventory.MinStockLevel,
			&p.Inventory.Status,
			&p.Pricing.CostPrice,
			&p.Pricing.SellingPrice,
			&p.Pricing.TaxPercentage,
		); err != nil {
			return nil, fmt.Errorf("products.ListByCompany scan: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products.ListByCompany rows: %w", err)
	}
	return results, nil
}
