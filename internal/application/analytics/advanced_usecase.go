// Package analytics contiene los casos de uso del reporte avanzado de salud del negocio.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/health-analytics-api/internal/application/dto"
	"github.com/jhoicas/health-analytics-api/internal/application/ports"
	"github.com/jhoicas/health-analytics-api/internal/domain"
	domanalytics "github.com/jhoicas/health-analytics-api/internal/domain/analytics"
	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
	"github.com/jhoicas/health-analytics-api/internal/domain/repository"
	"github.com/jhoicas/health-analytics-api/pkg/logger"
)

// SupplierReliability KPI fijo de confiabilidad de proveedores.
const SupplierReliability = 88

// AdvancedAnalyticsUseCase genera el reporte consolidado de salud del negocio de un tenant.
//
// Fuentes de datos: repositorios read-only de pedidos, facturas, órdenes de compra y
// productos. El reporte se calcula en cada llamada; no se persiste ni se cachea.
type AdvancedAnalyticsUseCase struct {
	orderRepo         repository.OrderRepository
	invoiceRepo       repository.InvoiceRepository
	purchaseOrderRepo repository.PurchaseOrderRepository
	productRepo       repository.ProductRepository
	observer          ports.ReportObserver
	log               *logger.Logger
}

// NewAdvancedAnalyticsUseCase construye el caso de uso. observer y log pueden ser nil.
func NewAdvancedAnalyticsUseCase(
	orderRepo repository.OrderRepository,
	invoiceRepo repository.InvoiceRepository,
	purchaseOrderRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	observer ports.ReportObserver,
	log *logger.Logger,
) *AdvancedAnalyticsUseCase {
	if observer == nil {
		observer = ports.NopReportObserver{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &AdvancedAnalyticsUseCase{
		orderRepo:         orderRepo,
		invoiceRepo:       invoiceRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		productRepo:       productRepo,
		observer:          observer,
		log:               log.Component("advanced_analytics"),
	}
}

// tenantData colecciones crudas del tenant; cada analizador recibe solo las suyas.
type tenantData struct {
	orders         []entity.Order
	invoices       []entity.Invoice
	purchaseOrders []entity.PurchaseOrder
	products       []entity.Product
}

// Generate construye el AdvancedAnalyticsDTO para el tenant con "now" explícito.
//
//  1. Cuatro lecturas en paralelo (errgroup): el primer fallo cancela las demás y
//     aborta el reporte con un *domain.DataFetchError.
//  2. Ingresos, inventario y caja se analizan en paralelo y se unen en una barrera.
//  3. Puntaje compuesto y recomendaciones sobre los tres resultados.
func (uc *AdvancedAnalyticsUseCase) Generate(
	ctx context.Context,
	companyID string,
	now time.Time,
) (*dto.AdvancedAnalyticsDTO, error) {
	if companyID == "" {
		return nil, fmt.Errorf("advanced analytics: company_id vacío: %w", domain.ErrInvalidInput)
	}
	started := time.Now()
	since := domanalytics.RevenueWindowStart(now)

	data, err := uc.fetch(ctx, companyID, since)
	if err != nil {
		var fetchErr *domain.DataFetchError
		if errors.As(err, &fetchErr) {
			uc.observer.ObserveFetchFailure(fetchErr.Source)
			uc.log.Error().Err(fetchErr.Err).
				Str("company_id", companyID).
				Str("source", fetchErr.Source).
				Msg("lectura de datos fallida, reporte abortado")
		}
		return nil, fmt.Errorf("advanced analytics: %w", err)
	}

	// ── Analizadores en paralelo (sin dependencias entre sí) ───────────────────
	revenueCh := make(chan domanalytics.RevenueInsights, 1)
	inventoryCh := make(chan domanalytics.InventoryInsights, 1)
	cashCh := make(chan domanalytics.CashFlowInsights, 1)

	go func() { revenueCh <- domanalytics.AnalyzeRevenue(data.orders, now) }()
	go func() { inventoryCh <- domanalytics.AnalyzeInventory(data.products) }()
	go func() { cashCh <- domanalytics.AnalyzeCashFlow(data.invoices, data.purchaseOrders, now) }()

	revenue := <-revenueCh
	inventory := <-inventoryCh
	cash := <-cashCh

	score := domanalytics.ScoreHealth(revenue, inventory, cash)
	recs := domanalytics.Recommend(inventory, cash)

	report := &dto.AdvancedAnalyticsDTO{
		TenantID:    companyID,
		GeneratedAt: now,
		Period: dto.PeriodDTO{
			StartDate: since.Format("2006-01-02"),
			EndDate:   now.Format("2006-01-02"),
		},
		Revenue:         toRevenueDTO(revenue),
		Inventory:       toInventoryDTO(inventory),
		CashFlow:        toCashFlowDTO(cash),
		HealthScore:     toHealthScoreDTO(score),
		Recommendations: toRecommendationDTOs(recs),
		KPIs:            buildKPIs(revenue, inventory, cash),
	}

	elapsed := time.Since(started)
	uc.observer.ObserveReport(elapsed, string(cash.CashRiskLevel), score.OverallScore)
	uc.log.Debug().
		Str("company_id", companyID).
		Dur("duration", elapsed).
		Int("orders", len(data.orders)).
		Int("invoices", len(data.invoices)).
		Int("purchase_orders", len(data.purchaseOrders)).
		Int("products", len(data.products)).
		Int("overall_score", score.OverallScore).
		Str("cash_risk", string(cash.CashRiskLevel)).
		Msg("reporte avanzado generado")

	return report, nil
}

// fetch lee las cuatro colecciones del tenant en paralelo. Sin reintentos: el timeout y
// la política de errores pertenecen a la capa de datos.
func (uc *AdvancedAnalyticsUseCase) fetch(ctx context.Context, companyID string, since time.Time) (*tenantData, error) {
	var data tenantData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := uc.orderRepo.ListSince(gctx, companyID, since)
		if err != nil {
			return domain.NewDataFetchError(domain.SourceOrders, err)
		}
		data.orders = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.invoiceRepo.ListByCompany(gctx, companyID)
		if err != nil {
			return domain.NewDataFetchError(domain.SourceInvoices, err)
		}
		data.invoices = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.purchaseOrderRepo.ListByCompany(gctx, companyID)
		if err != nil {
			return domain.NewDataFetchError(domain.SourcePurchaseOrders, err)
		}
		data.purchaseOrders = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.productRepo.ListByCompany(gctx, companyID)
		if err != nil {
			return domain.NewDataFetchError(domain.SourceProducts, err)
		}
		data.products = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
