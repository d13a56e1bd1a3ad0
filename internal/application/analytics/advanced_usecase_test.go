package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/health-analytics-api/internal/application/analytics"
	"github.com/jhoicas/health-analytics-api/internal/domain"
	"github.com/jhoicas/health-analytics-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de datos
// ──────────────────────────────────────────────────────────────────────────────

const tenant = "11111111-1111-1111-1111-111111111111"

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type fakeOrders struct {
	rows  []entity.Order
	err   error
	since time.Time
}

func (f *fakeOrders) ListSince(_ context.Context, companyID string, since time.Time) ([]entity.Order, error) {
	f.since = since
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Order
	for _, o := range f.rows {
		if o.CompanyID == companyID && !o.OrderDate.Before(since) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeInvoices struct {
	rows []entity.Invoice
	err  error
}

func (f *fakeInvoices) ListByCompany(_ context.Context, companyID string) ([]entity.Invoice, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Invoice
	for _, i := range f.rows {
		if i.CompanyID == companyID {
			out = append(out, i)
		}
	}
	return out, nil
}

type fakePurchaseOrders struct {
	rows []entity.PurchaseOrder
	err  error
}

func (f *fakePurchaseOrders) ListByCompany(_ context.Context, companyID string) ([]entity.PurchaseOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.PurchaseOrder
	for _, p := range f.rows {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeProducts struct {
	rows []entity.Product
	err  error
}

func (f *fakeProducts) ListByCompany(_ context.Context, companyID string) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Product
	for _, p := range f.rows {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

type recordingObserver struct {
	mu       sync.Mutex
	reports  []string
	scores   []int
	failures []string
}

func (o *recordingObserver) ObserveReport(_ time.Duration, risk string, score int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.reports = append(o.reports, risk)
	o.scores = append(o.scores, score)
}

func (o *recordingObserver) ObserveFetchFailure(source string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, source)
}

type fixture struct {
	orders         *fakeOrders
	invoices       *fakeInvoices
	purchaseOrders *fakePurchaseOrders
	products       *fakeProducts
	observer       *recordingObserver
}

func (f *fixture) useCase() *analytics.AdvancedAnalyticsUseCase {
	return analytics.NewAdvancedAnalyticsUseCase(f.orders, f.invoices, f.purchaseOrders, f.products, f.observer, nil)
}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// newFixture escenario base: crecimiento 50 %, una factura vencida a 75 días,
// tres productos bajo mínimo y datos de otro tenant que no deben mezclarse.
func newFixture() *fixture {
	paid := entity.PaymentStatusPaid
	orders := []entity.Order{
		{ID: "o1", CompanyID: tenant, OrderDate: now.AddDate(0, 0, -17), TotalAmount: d("5000"), PaymentStatus: paid},
		{ID: "o2", CompanyID: tenant, OrderDate: now.AddDate(0, 0, -10), TotalAmount: d("5000"), PaymentStatus: paid},
		{ID: "o3", CompanyID: tenant, OrderDate: now.AddDate(0, 0, -1), TotalAmount: d("5000"), PaymentStatus: paid},
		{ID: "o4", CompanyID: tenant, OrderDate: now.AddDate(0, -1, -5), TotalAmount: d("4000"), PaymentStatus: paid},
		{ID: "o5", CompanyID: tenant, OrderDate: now.AddDate(0, -1, 5), TotalAmount: d("6000"), PaymentStatus: paid},
		{ID: "x1", CompanyID: "otro", OrderDate: now.AddDate(0, 0, -2), TotalAmount: d("999999"), PaymentStatus: paid},
	}
	invoices := []entity.Invoice{
		{ID: "i1", CompanyID: tenant, Date: now.AddDate(0, 0, -75), Status: entity.InvoiceStatusOverdue, Total: d("5000")},
		{ID: "i2", CompanyID: tenant, Date: now.AddDate(0, 0, -20), Status: entity.InvoiceStatusPaid, Total: d("7000")},
		{ID: "x1", CompanyID: "otro", Date: now.AddDate(0, 0, -75), Status: entity.InvoiceStatusOverdue, Total: d("888888")},
	}
	pos := []entity.PurchaseOrder{
		{ID: "po1", CompanyID: tenant, Status: entity.PurchaseOrderStatusPending, TotalAmount: d("1000")},
	}
	var products []entity.Product
	for i, stock := range []string{"1", "2", "3", "10", "10", "10"} {
		products = append(products, entity.Product{
			ID:        string(rune('a' + i)),
			CompanyID: tenant,
			Inventory: entity.ProductInventory{Stock: d(stock), MinStockLevel: d("5"), Status: entity.ProductStatusActive},
			Pricing:   entity.ProductPricing{CostPrice: d("10")},
		})
	}
	return &fixture{
		orders:         &fakeOrders{rows: orders},
		invoices:       &fakeInvoices{rows: invoices},
		purchaseOrders: &fakePurchaseOrders{rows: pos},
		products:       &fakeProducts{rows: products},
		observer:       &recordingObserver{},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_ReporteCompleto(t *testing.T) {
	f := newFixture()

	report, err := f.useCase().Generate(context.Background(), tenant, now)
	require.NoError(t, err)

	assert.Equal(t, tenant, report.TenantID)
	assert.True(t, report.GeneratedAt.Equal(now))
	assert.Equal(t, "2026-04-19", report.Period.StartDate)
	assert.Equal(t, "2026-10-19", report.Period.EndDate)
	assert.True(t, f.orders.since.Equal(now.AddDate(0, -6, 0)))

	assert.Equal(t, "15000", report.Revenue.CurrentMonthRevenue.String())
	assert.Equal(t, "10000", report.Revenue.LastMonthRevenue.String())
	assert.Equal(t, "50", report.Revenue.RevenueGrowth.String())
	assert.Len(t, report.Revenue.RevenueTrend, 6)
	assert.Equal(t, "Oct 2026", report.Revenue.RevenueTrend[5].Month)

	assert.Len(t, report.Inventory.FastMovingProducts, 3)
	assert.Equal(t, "a", report.Inventory.FastMovingProducts[0].ProductID)
	assert.Empty(t, report.Inventory.SlowMovingProducts)

	assert.Equal(t, "5000", report.CashFlow.Aging60Plus.String())
	assert.Equal(t, "4000", report.CashFlow.CashFlowForecast.String())
	assert.Equal(t, "LOW", report.CashFlow.CashRiskLevel)
	assert.Equal(t, "18", report.CashFlow.ProfitMargin.String())

	// revenue 100, inventory 100, cash 90 → 30 + 25 + 22.5 + 8.5 + 8
	assert.Equal(t, 94, report.HealthScore.OverallScore)

	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, "STOCK", report.Recommendations[0].Type)

	assert.Equal(t, "90", report.KPIs.StockHealth.String())
	assert.Equal(t, "LOW", report.KPIs.CashRisk)
	assert.Equal(t, analytics.SupplierReliability, report.KPIs.SupplierReliability)

	assert.Equal(t, []string{"LOW"}, f.observer.reports)
	assert.Equal(t, []int{94}, f.observer.scores)
	assert.Empty(t, f.observer.failures)
}

func TestGenerate_Idempotente(t *testing.T) {
	uc := newFixture().useCase()

	first, err := uc.Generate(context.Background(), tenant, now)
	require.NoError(t, err)
	second, err := uc.Generate(context.Background(), tenant, now)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestGenerate_TenantSinDatos(t *testing.T) {
	report, err := newFixture().useCase().Generate(context.Background(), "vacío", now)
	require.NoError(t, err)

	assert.True(t, report.Revenue.RevenueGrowth.IsZero())
	assert.Equal(t, "LOW", report.CashFlow.CashRiskLevel)
	assert.NotNil(t, report.Recommendations)
	assert.Empty(t, report.Recommendations)
	assert.NotNil(t, report.Inventory.DeadStock)
	// revenue 50, inventory 100, cash 90
	assert.Equal(t, 79, report.HealthScore.OverallScore)
}

func TestGenerate_FalloDeDatosAbortaElReporte(t *testing.T) {
	cases := []struct {
		name   string
		fail   func(*fixture)
		source string
	}{
		{"pedidos", func(f *fixture) { f.orders.err = errors.New("conexión rechazada") }, domain.SourceOrders},
		{"facturas", func(f *fixture) { f.invoices.err = errors.New("timeout") }, domain.SourceInvoices},
		{"órdenes de compra", func(f *fixture) { f.purchaseOrders.err = context.DeadlineExceeded }, domain.SourcePurchaseOrders},
		{"productos", func(f *fixture) { f.products.err = errors.New("cursor cerrado") }, domain.SourceProducts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			tc.fail(f)

			report, err := f.useCase().Generate(context.Background(), tenant, now)

			require.Error(t, err)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, domain.ErrDataFetch)
			var fetchErr *domain.DataFetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, tc.source, fetchErr.Source)
			assert.Equal(t, []string{tc.source}, f.observer.failures)
			assert.Empty(t, f.observer.reports)
		})
	}
}

func TestGenerate_ConservaErrorOriginal(t *testing.T) {
	f := newFixture()
	f.purchaseOrders.err = context.DeadlineExceeded

	_, err := f.useCase().Generate(context.Background(), tenant, now)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerate_TenantVacio(t *testing.T) {
	_, err := newFixture().useCase().Generate(context.Background(), "", now)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
