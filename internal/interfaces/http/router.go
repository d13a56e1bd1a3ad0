package http

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/health-analytics-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AdvancedAnalytics AdvancedReportGenerator
	JWTSecret         string
	Logger            *logger.Logger

	// Observer métricas HTTP; nil las desactiva.
	Observer HTTPObserver

	// MetricsHandler se monta en /metrics cuando no es nil.
	MetricsHandler http.Handler

	// Now reloj del reporte; nil usa time.Now.
	Now func() time.Time
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}
	app.Use(RequestLogger(log, deps.Observer))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	analytics := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AdvancedAnalytics, deps.Now, log)
	analytics.Get("/advanced", analyticsHandler.GetAdvanced)
}
