package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/health-analytics-api/pkg/logger"
)

// HeaderRequestID cabecera de correlación; se respeta si el cliente la envía.
const HeaderRequestID = "X-Request-ID"

// HTTPObserver registra peticiones respondidas (lo implementa el adaptador de métricas).
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

// RequestLogger asigna el request id, mide la petición y deja una línea de log por respuesta.
// Las respuestas 5xx se registran en nivel error. observer puede ser nil.
func RequestLogger(log *logger.Logger, observer HTTPObserver) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		started := time.Now()
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set(HeaderRequestID, reqID)

		chainErr := c.Next()
		if chainErr != nil {
			// El ErrorHandler de Fiber aún no corrió; se invoca aquí para conocer el status final.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		elapsed := time.Since(started)
		route := c.Route().Path
		if observer != nil {
			observer.ObserveHTTP(c.Method(), route, status, elapsed)
		}

		event := log.Debug()
		if status >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", elapsed).
			Msg("http request")
		return nil
	}
}
