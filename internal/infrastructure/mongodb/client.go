// Package mongodb implementa los puertos de lectura del reporte avanzado sobre una base
// documental MongoDB (colecciones orders, invoices, purchaseOrders y products).
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jhoicas/health-analytics-api/pkg/config"
)

// Nombres de colecciones.
const (
	CollectionOrders         = "orders"
	CollectionInvoices       = "invoices"
	CollectionPurchaseOrders = "purchaseOrders"
	CollectionProducts       = "products"
)

// Connect abre el cliente MongoDB y verifica la conexión contra el primario.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongodb: MONGO_URI vacío")
	}
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(cfg.AppName).
		SetReadPreference(readpref.SecondaryPreferred()).
		SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}
	return client, nil
}
