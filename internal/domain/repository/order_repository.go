package repository

import (
	"context"
	"time"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
)

// OrderRepository define el puerto de lectura de pedidos de venta.
type OrderRepository interface {
	// ListSince devuelve los pedidos del tenant con fecha de pedido >= since.
	// Sin pedidos devuelve un slice vacío, nunca error.
	ListSince(ctx context.Context, companyID string, since time.Time) ([]entity.Order, error)
}
