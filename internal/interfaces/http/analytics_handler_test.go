package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/health-analytics-api/internal/application/dto"
	"github.com/jhoicas/health-analytics-api/internal/domain"
	"github.com/jhoicas/health-analytics-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/health-analytics-api/internal/interfaces/http"
)

var fixedNow = time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)

// fakeGenerator registra la última llamada y devuelve el resultado configurado.
type fakeGenerator struct {
	err       error
	companyID string
	now       time.Time
	calls     int
}

func (f *fakeGenerator) Generate(_ context.Context, companyID string, now time.Time) (*dto.AdvancedAnalyticsDTO, error) {
	f.calls++
	f.companyID = companyID
	f.now = now
	if f.err != nil {
		return nil, f.err
	}
	return &dto.AdvancedAnalyticsDTO{
		TenantID:    companyID,
		GeneratedAt: now,
		HealthScore: dto.BusinessHealthScoreDTO{OverallScore: 77},
	}, nil
}

func buildRouterApp(gen apphttp.AdvancedReportGenerator, m *metrics.Metrics) *fiber.App {
	app := fiber.New()
	deps := apphttp.RouterDeps{
		AdvancedAnalytics: gen,
		JWTSecret:         testJWTSecret,
		Now:               func() time.Time { return fixedNow },
	}
	if m != nil {
		deps.Observer = m
		deps.MetricsHandler = m.Handler()
	}
	apphttp.Router(app, deps)
	return app
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/analytics/advanced
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAdvanced_OK(t *testing.T) {
	gen := &fakeGenerator{}
	resp := doGet(t, buildRouterApp(gen, nil), "/api/analytics/advanced", bearer(t, testCompanyID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.AdvancedAnalyticsDTO
	require.NoError(t, json.Unmarshal(body, &out))

	assert.Equal(t, testCompanyID, out.TenantID)
	assert.Equal(t, 77, out.HealthScore.OverallScore)
	assert.Equal(t, testCompanyID, gen.companyID)
	assert.True(t, gen.now.Equal(fixedNow))
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestGetAdvanced_SinToken_Retorna401(t *testing.T) {
	gen := &fakeGenerator{}
	resp := doGet(t, buildRouterApp(gen, nil), "/api/analytics/advanced", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, gen.calls)
}

func TestGetAdvanced_TenantDistinto_Retorna403(t *testing.T) {
	gen := &fakeGenerator{}
	resp := doGet(t, buildRouterApp(gen, nil), "/api/analytics/advanced?tenant_id=otro", bearer(t, testCompanyID))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Code)
	assert.Zero(t, gen.calls)
}

func TestGetAdvanced_TenantIgual_OK(t *testing.T) {
	gen := &fakeGenerator{}
	resp := doGet(t, buildRouterApp(gen, nil), "/api/analytics/advanced?tenant_id="+testCompanyID, bearer(t, testCompanyID))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetAdvanced_AsOfFijaFinDelDia(t *testing.T) {
	gen := &fakeGenerator{}
	resp := doGet(t, buildRouterApp(gen, nil), "/api/analytics/advanced?as_of=2026-03-15", bearer(t, testCompanyID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.True(t, gen.now.Equal(time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)), "now=%s", gen.now)
}

func TestGetAdvanced_AsOfInvalido_Retorna400(t *testing.T) {
	gen := &fakeGenerator{}
	resp := doGet(t, buildRouterApp(gen, nil), "/api/analytics/advanced?as_of=15-03-2026", bearer(t, testCompanyID))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PARAMS", decodeError(t, resp).Code)
	assert.Zero(t, gen.calls)
}

func TestGetAdvanced_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "fallo de datos",
			err:    fmt.Errorf("advanced analytics: %w", domain.NewDataFetchError(domain.SourceInvoices, errors.New("timeout"))),
			status: fiber.StatusBadGateway,
			code:   "DATA_FETCH_FAILED",
		},
		{
			name:   "entrada inválida",
			err:    fmt.Errorf("advanced analytics: %w", domain.ErrInvalidInput),
			status: fiber.StatusBadRequest,
			code:   "BAD_REQUEST",
		},
		{
			name:   "contexto cancelado",
			err:    context.Canceled,
			status: fiber.StatusInternalServerError,
			code:   "INTERNAL",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{err: tc.err}
			resp := doGet(t, buildRouterApp(gen, nil), "/api/analytics/advanced", bearer(t, testCompanyID))
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decodeError(t, resp).Code)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// /health y /metrics
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	resp := doGet(t, buildRouterApp(&fakeGenerator{}, nil), "/health", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMetrics_CuentaPeticiones(t *testing.T) {
	app := buildRouterApp(&fakeGenerator{}, metrics.New())

	resp := doGet(t, app, "/api/analytics/advanced", bearer(t, testCompanyID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doGet(t, app, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(body),
		`health_analytics_http_requests_total{method="GET",route="/api/analytics/advanced",status="200"} 1`))
}

func TestMetrics_DeshabilitadoSinHandler(t *testing.T) {
	resp := doGet(t, buildRouterApp(&fakeGenerator{}, nil), "/metrics", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
