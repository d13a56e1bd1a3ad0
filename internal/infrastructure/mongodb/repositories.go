package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
	"github.com/jhoicas/health-analytics-api/internal/domain/repository"
)

var (
	_ repository.OrderRepository         = (*OrderRepo)(nil)
	_ repository.InvoiceRepository       = (*InvoiceRepo)(nil)
	_ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)
	_ repository.ProductRepository       = (*ProductRepo)(nil)
)

// OrderRepo lectura de pedidos desde la colección orders.
type OrderRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewOrderRepository construye el adaptador sobre la base indicada.
func NewOrderRepository(db *mongo.Database, timeout time.Duration) *OrderRepo {
	return &OrderRepo{coll: db.Collection(CollectionOrders), timeout: timeout}
}

// ListSince devuelve los pedidos del tenant con orderDate >= since.
func (r *OrderRepo) ListSince(ctx context.Context, companyID string, since time.Time) ([]entity.Order, error) {
	filter := bson.M{"tenantId": companyID, "orderDate": bson.M{"$gte": since}}
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: 1}, {Key: "_id", Value: 1}})

	var docs []orderDocument
	if err := findAll(ctx, r.coll, r.timeout, filter, opts, &docs); err != nil {
		return nil, fmt.Errorf("orders.ListSince: %w", err)
	}
	out := make([]entity.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// InvoiceRepo lectura de facturas desde la colección invoices.
type InvoiceRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewInvoiceRepository construye el adaptador sobre la base indicada.
func NewInvoiceRepository(db *mongo.Database, timeout time.Duration) *InvoiceRepo {
	return &InvoiceRepo{coll: db.Collection(CollectionInvoices), timeout: timeout}
}

// ListByCompany devuelve todas las facturas del tenant.
func (r *InvoiceRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.Invoice, error) {
	var docs []invoiceDocument
	if err := findAll(ctx, r.coll, r.timeout, bson.M{"tenantId": companyID}, byID(), &docs); err != nil {
		return nil, fmt.Errorf("invoices.ListByCompany: %w", err)
	}
	out := make([]entity.Invoice, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// PurchaseOrderRepo lectura de órdenes de compra desde la colección purchaseOrders.
type PurchaseOrderRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewPurchaseOrderRepository construye el adaptador sobre la base indicada.
func NewPurchaseOrderRepository(db *mongo.Database, timeout time.Duration) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{coll: db.Collection(CollectionPurchaseOrders), timeout: timeout}
}

// ListByCompany devuelve las órdenes de compra del tenant.
func (r *PurchaseOrderRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.PurchaseOrder, error) {
	var docs []purchaseOrderDocument
	if err := findAll(ctx, r.coll, r.timeout, bson.M{"tenantId": companyID}, byID(), &docs); err != nil {
		return nil, fmt.Errorf("purchase_orders.ListByCompany: %w", err)
	}
	out := make([]entity.PurchaseOrder, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// ProductRepo lectura del catálogo desde la colección products.
type ProductRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewProductRepository construye el adaptador sobre la base indicada.
func NewProductRepository(db *mongo.Database, timeout time.Duration) *ProductRepo {
	return &ProductRepo{coll: db.Collection(CollectionProducts), timeout: timeout}
}

// ListByCompany devuelve los productos del tenant.
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.Product, error) {
	var docs []productDocument
	if err := findAll(ctx, r.coll, r.timeout, bson.M{"tenantId": companyID}, byID(), &docs); err != nil {
		return nil, fmt.Errorf("products.ListByCompany: %w", err)
	}
	out := make([]entity.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toEntity())
	}
	return out, nil
}

func byID() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}

// findAll ejecuta Find con el timeout configurado y decodifica todo el cursor en out.
func findAll(ctx context.Context, coll *mongo.Collection, timeout time.Duration, filter any, opts *options.FindOptions, out any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}
