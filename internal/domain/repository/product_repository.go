package repository

import (
	"context"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura del catálogo con stock agregado.
type ProductRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]entity.Product, error)
}
