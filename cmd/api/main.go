package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"
	"github.com/swaggo/swag"

	"github.com/jhoicas/health-analytics-api/docs"
	appanalytics "github.com/jhoicas/health-analytics-api/internal/application/analytics"
	"github.com/jhoicas/health-analytics-api/internal/application/ports"
	"github.com/jhoicas/health-analytics-api/internal/domain/repository"
	"github.com/jhoicas/health-analytics-api/internal/infrastructure/metrics"
	"github.com/jhoicas/health-analytics-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/health-analytics-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/health-analytics-api/internal/interfaces/http"
	"github.com/jhoicas/health-analytics-api/pkg/config"
	"github.com/jhoicas/health-analytics-api/pkg/logger"
)

// dataSources repositorios read-only del backend elegido por DATA_BACKEND.
type dataSources struct {
	orders         repository.OrderRepository
	invoices       repository.InvoiceRepository
	purchaseOrders repository.PurchaseOrderRepository
	products       repository.ProductRepository
	close          func()
}

// @title                       Health Analytics API
// @version                     1.0
// @description                 Reporte avanzado de salud del negocio: ingresos, inventario, flujo de caja y puntaje compuesto por tenant.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token> (claim company_id = tenant)
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_backend", cfg.DataBackend).
		Msg("iniciando aplicación")

	// Montos como números JSON en las respuestas.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	sources, err := openDataSources(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("data_backend", cfg.DataBackend).Msg("conexión a la base de datos")
	}
	defer sources.close()

	var (
		observer       ports.ReportObserver
		routerDeps     httpRouter.RouterDeps
		serviceMetrics *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		serviceMetrics = metrics.New()
		observer = serviceMetrics
		routerDeps.Observer = serviceMetrics
		routerDeps.MetricsHandler = serviceMetrics.Handler()
	}

	advancedUC := appanalytics.NewAdvancedAnalyticsUseCase(
		sources.orders, sources.invoices, sources.purchaseOrders, sources.products,
		observer, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	routerDeps.AdvancedAnalytics = advancedUC
	routerDeps.JWTSecret = cfg.JWT.Secret
	routerDeps.Logger = log
	httpRouter.Router(app, routerDeps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openDataSources conecta el backend configurado y construye los cuatro repositorios.
func openDataSources(ctx context.Context, cfg *config.Config) (*dataSources, error) {
	timeout := cfg.DB.QueryTimeout

	switch cfg.DataBackend {
	case config.BackendMongoDB:
		client, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.Mongo.Database)
		return &dataSources{
			orders:         mongodb.NewOrderRepository(db, timeout),
			invoices:       mongodb.NewInvoiceRepository(db, timeout),
			purchaseOrders: mongodb.NewPurchaseOrderRepository(db, timeout),
			products:       mongodb.NewProductRepository(db, timeout),
			close: func() {
				dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = client.Disconnect(dctx)
			},
		}, nil
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return &dataSources{
			orders:         postgres.NewOrderRepository(pool, timeout),
			invoices:       postgres.NewInvoiceRepository(pool, timeout),
			purchaseOrders: postgres.NewPurchaseOrderRepository(pool, timeout),
			products:       postgres.NewProductRepository(pool, timeout),
			close:          pool.Close,
		}, nil
	}
}
